package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rattle/internal/ast"
)

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	hintColor   = color.New(color.FgHiBlack)
	promptColor = color.New(color.FgGreen)
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive tokenize/parse/analyze REPL",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

// runRepl reads one statement (or brace-balanced block) at a time, runs
// it through the full lexer/parser/syntax pipeline, and prints the
// resulting AST or diagnostics — there is no runtime in this toolchain,
// so unlike a language REPL this one only reports what the front end saw.
func runRepl(cmd *cobra.Command, args []string) error {
	historyFile := ""
	if home, err := os.UserHomeDir(); err == nil {
		historyFile = filepath.Join(home, ".rattle_history")
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            promptColor.Sprint("rattle> "),
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s %s\n\n",
		bannerColor.Sprint("rattle REPL"), hintColor.Sprint("(type 'exit' or Ctrl+D to quit)"))

	var accumulated strings.Builder
	braceDepth := 0

	for {
		if braceDepth > 0 {
			rl.SetPrompt(hintColor.Sprint("...     "))
		} else {
			rl.SetPrompt(promptColor.Sprint("rattle> "))
		}

		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if braceDepth > 0 {
					accumulated.Reset()
					braceDepth = 0
					continue
				}
				fmt.Fprintf(rl.Stdout(), "%s\n", hintColor.Sprint("(use 'exit' or Ctrl+D to quit)"))
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			break
		}

		if braceDepth == 0 && strings.TrimSpace(line) == "exit" {
			break
		}

		braceDepth += strings.Count(line, "{") - strings.Count(line, "}")
		accumulated.WriteString(line)
		accumulated.WriteString("\n")
		if braceDepth > 0 {
			continue
		}
		braceDepth = 0

		source := accumulated.String()
		accumulated.Reset()
		if strings.TrimSpace(source) == "" {
			continue
		}

		result := runPipeline(source)
		if len(result.Diagnostics) > 0 {
			printDiagsColored(rl.Stderr(), result.Diagnostics)
			continue
		}
		for _, h := range result.Statements {
			printJSON(rl.Stdout(), ast.NodeToMap(result.Arena, result.Arena.Stmt(h)))
		}
	}
	return nil
}
