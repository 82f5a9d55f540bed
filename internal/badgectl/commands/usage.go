package commands

import (
	"fmt"
	"io"
	"os"
)

var stdout io.Writer = os.Stdout

func PrintUsage() {
	fmt.Fprintln(stdout, "Usage: badgectl <command> [options]")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Available commands:")
	fmt.Fprintln(stdout, "  ping          Check that the badge server answers")
	fmt.Fprintln(stdout, "  version       Show the running server version")
	fmt.Fprintln(stdout, "  operator-add  Create or reset an operator account in MongoDB")
	fmt.Fprintln(stdout, "  purge         Drop the cached badge of one repository")
	fmt.Fprintln(stdout, "  help          Show this help text")
}
