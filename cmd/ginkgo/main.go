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
	"golang.org/x/term"

	ginkgo "github.com/TheBB/Ginkgo"
)

const (
	appName     = "ginkgo"
	historyFile = ".ginkgo_history"
	prompt      = "==> "
)

var banner = fmt.Sprintf("Ginkgo %s REPL\nCtrl+C cancels input, Ctrl+D exits. Type :help for commands.", ginkgo.Version)

const helpText = `
REPL commands:
  :quit      Exit the REPL
  :help      Show this help
  :gc        Run a garbage collection
  :size      Print the heap size
  :history   Print the rooted history chain
  :drop      Release the history root (the next :gc sweeps it)

Anything else is read as the body of a text literal, unescaped, stored as
a text value on the rooted history chain, and printed back.
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	if len(os.Args) < 2 {
		// With a terminal attached, default to the REPL; piped input
		// gets the demo so `ginkgo | cat` stays scriptable.
		if term.IsTerminal(int(os.Stdin.Fd())) {
			os.Exit(cmdRepl(nil))
		}
		os.Exit(cmdDemo(nil))
	}

	switch cmd := os.Args[1]; cmd {
	case "demo":
		os.Exit(cmdDemo(os.Args[2:]))
	case "repl":
		os.Exit(cmdRepl(os.Args[2:]))
	case "version":
		fmt.Println(ginkgo.Version)
	case "-h", "--help", "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", appName, cmd)
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Printf(`Ginkgo %s

Usage:
  %s demo       Build a few sample values, print them, collect the heap.
  %s repl       Start the REPL (default on a terminal).
  %s version    Print the version.
`, ginkgo.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// demo
// -----------------------------------------------------------------------------

func cmdDemo(_ []string) int {
	vm := ginkgo.New()

	show := func(label string, o ginkgo.Object) {
		fmt.Printf("%-14s %s\n", label, vm.Wrap(o))
	}

	list := vm.Cons(vm.Int(1), vm.Cons(vm.Int(0), ginkgo.Nil))
	show("list", list)

	dotted := vm.Cons(vm.Int(1), vm.Int(0))
	show("dotted pair", dotted)

	vec := vm.Vec(3)
	_ = vm.VecSet(vec, 0, vm.Int(0))
	_ = vm.VecSet(vec, 1, ginkgo.Nil)
	_ = vm.VecSet(vec, 2, vm.Float(2.3))
	show("vector", vec)

	text := vm.Text("hi there\n")
	show("text", text)

	rooted := vm.Rooted(vm.Cons(ginkgo.True, list))
	show("rooted", rooted.Object())

	fmt.Printf("heap size     %d\n", vm.HeapSize())
	vm.GC()
	fmt.Printf("after gc      %d (the rooted chain survives)\n", vm.HeapSize())
	show("stale vector", vec)

	rooted.Release()
	vm.GC()
	fmt.Printf("after release %d\n", vm.HeapSize())
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl(_ []string) int {
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

	vm := ginkgo.New()

	// Every accepted line is consed onto this chain, newest first. The
	// chain is the REPL's only root; :drop hands it to the collector.
	history := vm.Rooted(ginkgo.Nil)

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			return 1
		}

		if strings.HasPrefix(strings.TrimSpace(line), ":") {
			switch strings.TrimSpace(strings.ToLower(line)) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			case ":gc":
				vm.GC()
				fmt.Printf("heap size %d\n", vm.HeapSize())
			case ":size":
				fmt.Printf("heap size %d\n", vm.HeapSize())
			case ":history":
				fmt.Println(blue(vm.Render(history.Object())))
			case ":drop":
				history.Release()
				history = vm.Rooted(ginkgo.Nil)
				fmt.Println("history root released; :gc will sweep it")
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}

		if line == "" {
			continue
		}

		body, ok := ginkgo.Unescape(line)
		if !ok {
			fmt.Fprintln(os.Stderr, red("malformed escape in literal"))
			continue
		}

		text := vm.Text(body)
		next := vm.Rooted(vm.Cons(text, history.Object()))
		history.Release()
		history = next

		fmt.Println(green(vm.Render(text)))
		ln.AppendHistory(line)
	}
}
