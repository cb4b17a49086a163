package main

import (
	"fmt"
	"io"
	"os"

	"rill/interpreter-go/pkg/driver"
	"rill/interpreter-go/pkg/interpreter"
	"rill/interpreter-go/pkg/runtime"
)

const cliToolVersion = "rill 0.1.0"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 1 {
		switch args[0] {
		case "--help", "-h":
			printUsage(stderr)
			return 0
		case "--version", "-V":
			fmt.Fprintln(stdout, cliToolVersion)
			return 0
		}
	}
	if len(args) != 1 {
		printUsage(stderr)
		return 1
	}

	path := args[0]
	program, err := driver.LoadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 1
	}

	interp := interpreter.New()
	interp.SetInput(stdin)
	interp.SetOutput(stdout)

	result, err := interp.Run(program)
	if err != nil {
		fmt.Fprintf(stderr, "cannot execute %s: %v\n", path, err)
		return 1
	}
	if result.Kind() != runtime.KindEmpty {
		fmt.Fprintf(stderr, "cannot execute %s: program left a %s value on the stream\n", path, result.Kind())
		return 1
	}
	return 0
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: rill <file.rill>")
}
