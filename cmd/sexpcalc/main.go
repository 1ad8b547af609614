// Command sexpcalc evaluates prefix arithmetic expressions.
//
// One-shot:
//
//	sexpcalc -e '(+ 1 2)'
//	sexpcalc expr.sexp
//	echo '(+ 1 2)' | sexpcalc
//
// With no arguments and a terminal on stdin it starts a REPL.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sexpcalc/sexpcalc"
)

const (
	historyFile = ".sexpcalc_history"
	prompt      = "=> "
)

func main() {
	expr := flag.String("e", "", "evaluate `expression` and exit")
	flag.Parse()

	switch {
	case *expr != "":
		os.Exit(run(*expr))

	case flag.NArg() > 0:
		in, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(run(string(in)))

	default:
		fi, err := os.Stdin.Stat()
		if err == nil && fi.Mode()&os.ModeCharDevice == 0 {
			in, err := io.ReadAll(os.Stdin)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			os.Exit(run(string(in)))
		}
		repl()
	}
}

func run(src string) int {
	v, err := sexpcalc.EvalString(src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println(v)
	return 0
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

func repl() {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)

	if path := historyPath(); path != "" {
		if f, err := os.Open(path); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
	}

	for {
		in, err := line.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			continue
		}
		if err != nil {
			// io.EOF on Ctrl+D
			break
		}

		if strings.TrimSpace(in) == "" {
			continue
		}
		line.AppendHistory(in)

		v, err := sexpcalc.EvalString(in)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(v)
	}

	if path := historyPath(); path != "" {
		if f, err := os.Create(path); err == nil {
			line.WriteHistory(f)
			f.Close()
		}
	}
}
