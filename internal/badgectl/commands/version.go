package commands

import (
	"flag"
	"fmt"
	"io"
)

// RunVersion handles the `badgectl version` subcommand.
func RunVersion(args []string) error {
	fs := flag.NewFlagSet("version", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	host := fs.String("host", "localhost:8080", "badge server host:port")

	if err := fs.Parse(args); err != nil {
		return err
	}

	version, err := newAPI(*host).text("/version")
	if err != nil || version == "" {
		fmt.Fprintln(stdout, "No version detected")
		return nil
	}

	fmt.Fprintln(stdout, version)
	return nil
}
