package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/reoring/dekoda/internal/cli"
)

// CLI defines the command-line interface.
var CLI struct {
	Input   string `help:"Path to the input document. If not specified, reads from stdin." short:"i" type:"path"`
	Path    string `help:"Dot-separated property path to navigate before decoding (e.g. user.address.city)." short:"p"`
	Type    string `help:"Leaf type to decode: string, number, int or bool." short:"t" default:"string"`
	YAML    bool   `help:"Treat the input as YAML instead of JSON."`
	Version bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("dekoda"),
		kong.Description("Navigate and decode JSON or YAML documents with precise failure messages."),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("dekoda version %s\n", version)
		return
	}

	in := os.Stdin
	if CLI.Input != "" {
		f, err := os.Open(CLI.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "dekoda: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	err := cli.Run(cli.Options{Path: CLI.Path, Type: CLI.Type, YAML: CLI.YAML}, in, os.Stdout)
	if err != nil {
		var df cli.ErrDecodeFailed
		if errors.As(err, &df) {
			fmt.Fprintln(os.Stderr, df.Message)
		} else {
			fmt.Fprintf(os.Stderr, "dekoda: %v\n", err)
		}
		os.Exit(1)
	}
}
