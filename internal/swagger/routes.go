package swagger

import (
	"encoding/json"
	"fmt"
	"strings"

	"badgeofshame/internal/env"
	"badgeofshame/internal/swagger/docs"

	"github.com/gofiber/fiber/v3"
	"github.com/swaggo/swag"
)

const swaggerUIPath = "https://unpkg.com/swagger-ui-dist@5"

var uiTemplate = fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Badge Of Shame API Docs</title>
  <link rel="stylesheet" href="%s/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="%s/swagger-ui-bundle.js"></script>
  <script src="%s/swagger-ui-standalone-preset.js"></script>
  <script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '/_badge/docs/doc.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
      layout: 'StandaloneLayout',
      deepLinking: true,
      persistAuthorization: true,
      requestInterceptor: (req) => {
        const authHeader = req.headers && req.headers.Authorization;
        if (authHeader && !/^Bearer /i.test(authHeader)) {
          req.headers.Authorization = 'Bearer ' + authHeader;
        }
        return req;
      },
    });
  };
  </script>
</body>
</html>`, swaggerUIPath, swaggerUIPath, swaggerUIPath)

// Routes serves the swagger UI and the registered doc under /_badge/docs.
func Routes(app fiber.Router) {
	app.Get("/docs", func(c fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.SendString(uiTemplate)
	})

	app.Get("/docs/doc.json", func(c fiber.Ctx) error {
		data, err := loadDoc()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Failed to read swagger spec",
				"error":   err.Error(),
			})
		}

		c.Type("json", "utf-8")
		return c.Send(data)
	})
}

func loadDoc() ([]byte, error) {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return nil, err
	}

	return applyDocDefaults([]byte(doc)), nil
}

func applyDocDefaults(data []byte) []byte {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return data
	}

	info := ensureMap(doc, "info")
	if version := strings.TrimSpace(env.VERSION); version != "" {
		info["version"] = version
	}

	encoded, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return data
	}

	return append(encoded, '\n')
}

func ensureMap(root map[string]any, key string) map[string]any {
	if existing, ok := root[key].(map[string]any); ok {
		return existing
	}

	created := map[string]any{}
	root[key] = created
	return created
}
