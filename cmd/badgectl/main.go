package main

import (
	"fmt"
	"os"

	"badgeofshame/internal/badgectl/commands"
)

func main() {
	if len(os.Args) < 2 {
		commands.PrintUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error

	switch cmd {
	case "help", "--help", "-h":
		commands.PrintUsage()
		return
	case "ping":
		err = commands.RunPing(args)
	case "version":
		err = commands.RunVersion(args)
	case "operator-add":
		err = commands.RunOperatorAdd(args)
	case "purge":
		err = commands.RunPurge(args)
	default:
		fmt.Fprintf(os.Stderr, "badgectl: unknown command %q\n", cmd)
		commands.PrintUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "badgectl %s: %v\n", cmd, err)
		os.Exit(1)
	}
}
