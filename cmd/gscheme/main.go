// Command gscheme runs the interpreter either over a source file or as an
// interactive read-eval-print loop.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"

	"gscheme.dev/gscheme/sx"
	"gscheme.dev/gscheme/sxbuiltins"
	"gscheme.dev/gscheme/sxeval"
	"gscheme.dev/gscheme/sxreader"
)

const (
	prompt     = "scheme> "
	contPrompt = "......> "
)

func main() {
	ev := sxeval.NewEvaluator()
	if err := sxbuiltins.BindAll(ev); err != nil {
		fmt.Fprintf(os.Stderr, "Error: unable to load the standard library: %v\n", err)
		os.Exit(1)
	}

	if len(os.Args) > 1 {
		runFile(ev, os.Args[1])
		return
	}
	repl(ev)
}

// runFile loads and evaluates a single program. Nothing is printed on
// success; values only reach output via `display`.
func runFile(ev *sxeval.Evaluator, path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := ev.EvalProgram(string(src), ev.Global); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// repl drives an interactive session with line editing and history. Each
// line is appended to a pending buffer; a buffer that fails to parse
// because it was cut off mid-form (an unclosed list, string, or
// character literal) is held over and the continuation prompt is shown,
// matching how a shell would keep reading until parentheses balance.
func repl(ev *sxeval.Evaluator) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       ".gscheme-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	var pending string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if pending == "" {
				continue
			}
			pending = ""
			rl.SetPrompt(prompt)
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}

		pending += line + "\n"
		forms, rdErr := sxreader.NewReader(pending).ReadAll()
		if rdErr != nil {
			if sxreader.IsIncomplete(rdErr) {
				rl.SetPrompt(contPrompt)
				continue
			}
			fmt.Println(rdErr)
			pending = ""
			rl.SetPrompt(prompt)
			continue
		}

		pending = ""
		rl.SetPrompt(prompt)
		evalForms(ev, forms)
	}
}

func evalForms(ev *sxeval.Evaluator, forms []sx.Object) {
	for _, form := range forms {
		result, err := ev.Eval(form, ev.Global)
		if err != nil {
			fmt.Println(err)
			return
		}
		if sx.IsNil(result) {
			continue
		}
		fmt.Println(result)
	}
}
