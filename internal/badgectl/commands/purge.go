package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// RunPurge handles `badgectl purge owner/repo`: log in as an operator and
// drop the repository's cached badge.
func RunPurge(args []string) error {
	fs := flag.NewFlagSet("purge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "localhost:8080", "badge server host:port")
	username := fs.String("username", os.Getenv("BADGE_OPERATOR"), "operator username")
	password := fs.String("password", os.Getenv("BADGE_OPERATOR_PASSWORD"), "operator password")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("purge: expected exactly one owner/repo argument")
	}
	slug := strings.Trim(fs.Arg(0), "/")
	if strings.Count(slug, "/") != 1 {
		return fmt.Errorf("purge: %q is not an owner/repo slug", fs.Arg(0))
	}

	if *username == "" || *password == "" {
		return fmt.Errorf("purge: --username and --password are required")
	}

	client := newAPI(*host)

	token, err := client.login(*username, *password)
	if err != nil {
		return err
	}

	if err := client.purge(token, slug); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "purged %s\n", slug)
	return nil
}
