// Released under an MIT license. See LICENSE.

// Command scheme-repl is the interpreter's driver. The interpreter core
// (internal/interp) is a pure Run(string) (string, error); this command
// wraps it in the three modes a complete Go CLI needs: one-shot -c,
// interactive line-editing, and piped stdin — the same split the
// teacher's own internal/system/options and internal/ui provide for oh's
// much larger shell grammar.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/Femistoclus/scheme-interpreter/internal/interp"
)

const version = "scheme-repl 0.1.0"

const usage = `scheme-repl

Usage:
  scheme-repl -c EXPRESSION
  scheme-repl
  scheme-repl -h
  scheme-repl -v

Options:
  -c, --command=EXPRESSION  Evaluate a single expression and print the result.
  -h, --help                Display this help.
  -v, --version             Print version.

With no arguments and a terminal on stdin, scheme-repl runs an interactive,
history-backed prompt, one expression per line. With no arguments and stdin
not a terminal, it evaluates each line of stdin in turn.
`

func main() {
	opts, err := docopt.ParseArgs(usage, os.Args[1:], version)
	if err != nil {
		panic(err.Error())
	}

	if v, _ := opts.Bool("--version"); v {
		fmt.Println(version)

		return
	}

	interpreter := interp.New()

	if command, _ := opts.String("--command"); command != "" {
		runOne(interpreter, command)

		return
	}

	if isatty.IsTerminal(os.Stdin.Fd()) {
		runInteractive(interpreter)

		return
	}

	runStdin(interpreter)
}

// runOne evaluates a single expression and prints its result or error to
// stdout/stderr, matching the -c one-shot mode.
func runOne(interpreter *interp.T, source string) {
	result, err := interpreter.Run(source)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	fmt.Println(result)
}

// runInteractive drives a liner-backed prompt. A per-line error is
// printed to stderr and the session continues — spec §7's "no error is
// recovered locally" scopes to a single Run, not to the process, so one
// bad expression must not end the REPL.
func runInteractive(interpreter *interp.T) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt("scheme> ")

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			return
		default:
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		result, rerr := interpreter.Run(line)
		if rerr != nil {
			fmt.Fprintln(os.Stderr, "error:", rerr)

			continue
		}

		fmt.Println(result)
	}
}

// runStdin evaluates stdin one newline-separated expression per line,
// for piped, non-interactive input.
func runStdin(interpreter *interp.T) {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		result, err := interpreter.Run(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)

			continue
		}

		fmt.Println(result)
	}
}
