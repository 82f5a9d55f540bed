package commands

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"badgeofshame/internal/db"
	"badgeofshame/internal/env"
	"badgeofshame/internal/models"
)

// RunOperatorAdd handles `badgectl operator-add`. It writes straight to the
// operators collection configured by MONGO_URI.
func RunOperatorAdd(args []string) error {
	fs := flag.NewFlagSet("operator-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	envRoot := fs.String("env-root", "", "directory containing the .env file")
	username := fs.String("username", "", "operator username")
	password := fs.String("password", "", "operator password")

	if err := fs.Parse(args); err != nil {
		return err
	}

	name := strings.TrimSpace(*username)
	if name == "" || strings.TrimSpace(*password) == "" {
		return fmt.Errorf("operator-add: --username and --password are required")
	}

	cfg, err := env.Init(*envRoot, "")
	if err != nil {
		return err
	}
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("operator-add: MONGO_URI is not set")
	}

	if err := db.InitDB(cfg.Mongo); err != nil {
		return err
	}
	defer db.Close()

	hash, err := models.HashPassword(strings.TrimSpace(*password))
	if err != nil {
		return err
	}

	op := models.Operator{Username: name, Password: hash}
	if err := op.Save(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "operator %s saved\n", name)
	return nil
}
