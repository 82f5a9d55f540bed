package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunPing handles the `badgectl ping` subcommand.
func RunPing(args []string) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "localhost:8080", "badge server host:port")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("ping: unexpected arguments")
	}

	body, err := newAPI(*host).text("/ping")
	if err != nil {
		return fmt.Errorf("badge server is not responding: %w", err)
	}

	fmt.Fprintln(stdout, body)
	return nil
}
