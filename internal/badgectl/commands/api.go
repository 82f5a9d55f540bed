package commands

import (
	"fmt"
	"strings"
	"time"

	"badgeofshame/internal/upstream"

	"github.com/gofiber/fiber/v3/client"
	"github.com/pkg/errors"
)

const requestTimeout = 10 * time.Second

// api calls the /_badge routes of a running server.
type api struct {
	base string
	http *client.Client
}

func newAPI(host string) *api {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}

	cc := client.New()
	cc.SetTimeout(requestTimeout)

	return &api{base: host + "/_badge", http: cc}
}

func (a *api) url(path string) string {
	return a.base + path
}

// text performs a GET and returns the trimmed body of a 200 response.
func (a *api) text(path string) (string, error) {
	resp, err := a.http.Get(a.url(path))
	if err != nil {
		return "", errors.Wrapf(err, "GET %s", a.url(path))
	}
	defer resp.Close()

	if resp.StatusCode() != 200 {
		return "", &upstream.StatusError{Status: resp.StatusCode(), URL: a.url(path)}
	}

	return strings.TrimSpace(resp.String()), nil
}

func (a *api) login(username, password string) (string, error) {
	resp, err := a.http.Post(a.url("/operators/login"), client.Config{
		Body: map[string]string{"username": username, "password": password},
	})
	if err != nil {
		return "", errors.Wrap(err, "operator login")
	}
	defer resp.Close()

	var payload struct {
		Token   string `json:"token"`
		Message string `json:"message"`
	}

	if resp.StatusCode() != 200 {
		if err := resp.JSON(&payload); err != nil || payload.Message == "" {
			return "", &upstream.StatusError{Status: resp.StatusCode(), URL: a.url("/operators/login")}
		}
		return "", fmt.Errorf("login rejected (%d): %s", resp.StatusCode(), payload.Message)
	}

	if err := resp.JSON(&payload); err != nil {
		return "", errors.Wrap(upstream.ErrInvalidJSON, err.Error())
	}
	if payload.Token == "" {
		return "", upstream.ErrMissingData
	}

	return payload.Token, nil
}

func (a *api) purge(token, slug string) error {
	resp, err := a.http.Delete(a.url("/cache/"+slug), client.Config{
		Header: map[string]string{"Authorization": "Bearer " + token},
	})
	if err != nil {
		return errors.Wrapf(err, "purging %s", slug)
	}
	defer resp.Close()

	if resp.StatusCode() != 204 {
		return &upstream.StatusError{Status: resp.StatusCode(), URL: a.url("/cache/" + slug)}
	}

	return nil
}
