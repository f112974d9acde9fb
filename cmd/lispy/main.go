package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	lispy "github.com/mmxw/sicp"
)

const (
	appName     = "lispy"
	historyFile = ".lispy_history"
	promptMain  = "lispy> "
	promptCont  = "  ...> "
)

var (
	banner   = fmt.Sprintf("Lispy %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.", lispy.Version)
	helpText = `
REPL commands:
  :help    Show this help
  :quit    Exit the REPL
`
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cmd := os.Args[1]
	switch cmd {
	case "run":
		os.Exit(cmdRun(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "demo":
		os.Exit(cmdDemo(os.Args[2:]))
	case "version":
		fmt.Println(lispy.Version)
		return
	case "-h", "--help", "help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Lispy %s (built %s)

Usage:
  %s run <file.scm>     Evaluate a file and print its top-level results.
  %s repl               Start the interactive REPL.
  %s demo               Walk through the built-in example tour.
  %s version            Print the compiled version.

`, lispy.Version, lispy.BuildDate, appName, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(args []string) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s run <file.scm>\n", appName)
		return 2
	}

	file := args[0]
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	forms, perr := lispy.ParseAll(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, red(lispy.WrapErrorWithName(perr, file, string(src)).Error()))
		return 1
	}

	env := lispy.StandardEnv()
	for _, form := range forms {
		v, err := lispy.Eval(form, env)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(lispy.WrapErrorWithName(err, file, string(src)).Error()))
			return 1
		}
		if v.Tag != lispy.VTNone {
			fmt.Println(lispy.Render(v))
		}
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) (ret int) {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	env := lispy.StandardEnv()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			break
		}

		if strings.HasPrefix(strings.TrimSpace(code), ":") {
			switch strings.TrimSpace(strings.ToLower(code)) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Printf("unknown command. Type :quit to exit.\n")
			}
			continue
		}

		if strings.TrimSpace(code) == "" {
			continue
		}

		forms, err := lispy.ParseAll(code)
		if err != nil {
			fmt.Fprintln(os.Stderr, red(lispy.WrapErrorWithSource(err, code).Error()))
			continue
		}
		for _, form := range forms {
			v, err := lispy.Eval(form, env)
			if err != nil {
				fmt.Fprintln(os.Stderr, red(lispy.WrapErrorWithSource(err, code).Error()))
				break
			}
			if v.Tag != lispy.VTNone {
				fmt.Println(blue(lispy.Render(v)))
			}
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	return 0
}

// readByParseProbe accumulates lines until they parse as complete forms.
// A syntax error that is merely incomplete (open paren, no close yet) asks
// for another line; any other outcome hands the buffer to the caller.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		_, perr := lispy.ParseAll(src)
		if perr == nil {
			return src, true
		}
		if lispy.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
