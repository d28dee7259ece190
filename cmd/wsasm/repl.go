package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

const (
	historyFile = ".wsasm_history"
	prompt      = "wsa> "
	banner      = "wsasm inspector — Ctrl+C to cancel input, Ctrl+D to exit. Type :help for commands."
	helpText    = `
Inspector commands:
  :help             Show this help
  :quit / :exit     Exit the inspector
  :dialect <name>   Switch dialect (burghard, censoredusername, palaiologos, voliva, wconrad, wsf)
  :load <file>      Parse a file and dump its tree
`
)

// runREPL reads lines, parses each in the selected dialect, and dumps
// the resulting tree.
func runREPL(dialect string) int {
	fmt.Println(banner)
	fmt.Printf("dialect: %s\n", dialect)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(prompt)
		if err != nil { // Ctrl+D or Ctrl+C
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, ":") {
			if done := handleCommand(&dialect, trimmed); done {
				break
			}
			ln.AppendHistory(line)
			continue
		}

		// Entered lines rarely carry their own terminator; parsing
		// expects one.
		src := line
		if !strings.HasSuffix(src, "\n") {
			src += "\n"
		}
		prog := dialects[dialect]([]byte(src))
		dumpProgram(os.Stdout, prog)
		ln.AppendHistory(line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

func handleCommand(dialect *string, line string) (exit bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":help":
		fmt.Print(helpText)

	case ":quit", ":exit":
		return true

	case ":dialect":
		if len(fields) < 2 {
			fmt.Printf("dialect: %s\n", *dialect)
			return false
		}
		name := strings.ToLower(fields[1])
		if _, ok := dialects[name]; !ok {
			fmt.Printf("unknown dialect %q (expected one of %s)\n", fields[1], dialectNames())
			return false
		}
		*dialect = name
		fmt.Printf("dialect: %s\n", name)

	case ":load":
		if len(fields) < 2 {
			fmt.Println("usage: :load <file>")
			return false
		}
		src, err := os.ReadFile(fields[1])
		if err != nil {
			fmt.Printf("cannot read %s: %v\n", fields[1], err)
			return false
		}
		dumpProgram(os.Stdout, dialects[*dialect](src))

	default:
		fmt.Println("unknown command. Type :help for help.")
	}
	return false
}
