package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	utf8valid "github.com/biggeezerdevelopment/utf8valid-go"
)

// CLI defines the utf8valid command-line interface.
//
// Each named file (or stdin when none are given) is read fully and checked
// for UTF-8 well-formedness. The exit status is non-zero if any input is
// invalid or unreadable.
type CLI struct {
	Paths []string `arg:"" optional:"" type:"existingfile" help:"Files to check; reads stdin when empty"`
	Quiet bool     `short:"q" help:"Suppress per-file output, report through the exit status only"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("utf8valid"),
		kong.Description("Check files for UTF-8 well-formedness and report the first invalid byte."),
	)

	ok, err := run(&cli)
	ctx.FatalIfErrorf(err)
	if !ok {
		os.Exit(1)
	}
}

func run(cli *CLI) (bool, error) {
	if len(cli.Paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return false, fmt.Errorf("read stdin: %w", err)
		}
		return report(cli, "stdin", data), nil
	}

	allValid := true
	for _, path := range cli.Paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return false, fmt.Errorf("read %q: %w", path, err)
		}
		if !report(cli, path, data) {
			allValid = false
		}
	}
	return allValid, nil
}

func report(cli *CLI, name string, data []byte) bool {
	valid, errIndex := utf8valid.Validate(data)
	if cli.Quiet {
		return valid
	}
	if valid {
		fmt.Printf("%s: ok\n", name)
	} else {
		fmt.Printf("%s: invalid UTF-8 byte at offset %d\n", name, errIndex)
	}
	return valid
}
