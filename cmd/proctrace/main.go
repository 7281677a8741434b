package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"proctrace/internal/buffer"
	"proctrace/internal/config"
	"proctrace/internal/proc"
	"proctrace/internal/tui"
	"proctrace/internal/watch"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	commandFlag := flag.String("c", "", "Command string to run (shell-like word splitting)")
	fileFlag := flag.String("f", "", "Attach to a growing file instead of spawning a process")
	configFlag := flag.String("config", "", "Optional YAML profile path")
	themeFlag := flag.String("theme", "", "Theme name (vapor|midnight|dusk), overrides the profile")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: proctrace [flags] <command> [args...]\n")
		fmt.Fprintf(os.Stderr, "       proctrace -c \"<command string>\"\n")
		fmt.Fprintf(os.Stderr, "       proctrace -f <file>\n")
		fmt.Fprintf(os.Stderr, "       <producer> | proctrace   (passthrough, no TUI)\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	profile := config.Default()
	if *configFlag != "" {
		p, err := config.LoadFromFile(*configFlag)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		profile = p
	}
	if *themeFlag != "" {
		profile.Theme = *themeFlag
	}

	args := flag.Args()
	if *commandFlag == "" && *fileFlag == "" && len(args) == 0 {
		// Piped input with nothing to launch: re-emit it unchanged.
		if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
			if _, err := io.Copy(os.Stdout, os.Stdin); err != nil {
				return fmt.Errorf("passthrough: %w", err)
			}
			return nil
		}
		flag.Usage()
		os.Exit(2)
	}

	buf := buffer.New()
	child, err := startChild(*commandFlag, *fileFlag, args, buf)
	if err != nil {
		return err
	}

	// Terminate, dispose, then flush the full unfiltered buffer: mandatory
	// on every exit path, including a panic inside the UI loop.
	defer func() {
		child.Terminate()
		if err := buf.Flush(os.Stdout, profile.TimestampFormat); err != nil {
			log.Printf("flush: %v", err)
		}
	}()

	model := tui.NewModel(tui.ModelConfig{Buffer: buf, Child: child, Profile: profile})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

func startChild(commandLine, file string, args []string, buf *buffer.LineBuffer) (tui.Child, error) {
	switch {
	case file != "":
		tailer, err := watch.Attach(file, buf)
		if err != nil {
			return nil, fmt.Errorf("attach: %w", err)
		}
		return tailer, nil
	case commandLine != "":
		name, cmdArgs, err := proc.Tokenize(commandLine)
		if err != nil {
			return nil, err
		}
		sup, err := proc.Start(name, cmdArgs, buf)
		if err != nil {
			return nil, err
		}
		return sup, nil
	default:
		sup, err := proc.Start(args[0], args[1:], buf)
		if err != nil {
			return nil, err
		}
		return sup, nil
	}
}
