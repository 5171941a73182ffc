// Copyright
// SPDX-License-Identifier: MIT
// quillpad: minimal terminal notepad with clipboard commands and a linear undo stack
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"quillpad/internal/clipboard"
	cfg "quillpad/internal/config"
	"quillpad/internal/log"
	"quillpad/internal/session"
	appTUI "quillpad/internal/tui"
	"quillpad/internal/watcher"
)

const Version = "0.3.0"

/* ---------- CLI ---------- */

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "help", "-h", "--help":
			if len(args) > 1 {
				helpTopic(args[1])
			} else {
				usage()
			}
			return
		case "version", "-v", "--version":
			fmt.Println("quillpad", Version)
			return
		case "edit":
			cmdEdit(args[1:])
			return
		}
	}
	// Default command: edit (a bare path or nothing at all).
	cmdEdit(args)
}

func usage() {
	fmt.Println(`quillpad ` + Version + `
A tiny terminal notepad: cut/copy/paste against the OS clipboard, an italic
style toggle, and undo via a command history.
USAGE
  quillpad [edit] [options] [FILE]
COMMANDS
  edit         Open FILE (or a scratch buffer) in the editor. Default command.
  help         Show help (try: quillpad help edit)
  version      Print version
NOTES
  • Without FILE the editor opens a scratch buffer; ctrl+s is disabled.
  • Config lives at ~/.quillpad/config.json, session state at ~/.quillpad/state.json.`)
}

func helpTopic(name string) {
	switch name {
	case "edit":
		fmt.Println(`USAGE
  quillpad edit [--wrap] [--tab N] [--clipboard system|memory] [--no-watch] [--log-file PATH] [FILE]
DESCRIPTION
  Opens FILE in the editor. A missing FILE starts empty and is created on the
  first save. The caret position is restored from the previous session.
KEYS
  ctrl+x / ctrl+c / ctrl+v   cut / copy / paste (OS clipboard)
  ctrl+t                      toggle italic (requires a selection)
  ctrl+z                      undo the last command
  shift+arrows, ctrl+a        select
  ctrl+s / ctrl+r / ctrl+d    save / reload / unsaved changes
  ctrl+g / ctrl+q             help / quit
OPTIONS
  --wrap              Soft-wrap long lines (overrides config)
  --tab N             Tab width in columns (overrides config)
  --clipboard KIND    system (default) or memory; memory is also the headless fallback
  --no-watch          Do not watch FILE for external changes
  --log-file PATH     Append debug logs to file (also via QUILLPAD_DEBUG=PATH)`)
	default:
		usage()
	}
}

/* ---------- commands ---------- */

func cmdEdit(args []string) {
	fs := flag.NewFlagSet("edit", flag.ExitOnError)
	fs.Usage = func() { helpTopic("edit") }
	wrap := fs.Bool("wrap", false, "Soft-wrap long lines")
	tab := fs.Int("tab", 0, "Tab width in columns (0 = config default)")
	clipKind := fs.String("clipboard", "", "Clipboard backend: system|memory")
	noWatch := fs.Bool("no-watch", false, "Disable watching the file for external changes")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	_ = fs.Parse(args)

	debugEnv := os.Getenv("QUILLPAD_DEBUG")
	if *logPath == "" {
		*logPath = debugEnv
	}
	if *logPath != "" {
		cleanup, err := log.Init(*logPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Could not open log file:", err)
		} else {
			defer cleanup()
			if debugEnv == "" {
				log.SetMinLevel(log.LevelInfo)
			}
		}
	}

	opts, err := cfg.Load(cfg.Path())
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
	}
	if *wrap {
		opts.Wrap = true
	}
	if *tab > 0 {
		opts.TabWidth = *tab
	}
	if *clipKind != "" {
		if *clipKind != "system" && *clipKind != "memory" {
			fmt.Fprintln(os.Stderr, "--clipboard must be system or memory")
			os.Exit(2)
		}
		opts.Clipboard = *clipKind
	}
	if *noWatch {
		f := false
		opts.Watch = &f
	}

	// Open the file, if any.
	path := fs.Arg(0)
	abs := ""
	initial := ""
	if path != "" {
		abs, err = filepath.Abs(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "resolve path:", err)
			os.Exit(1)
		}
		data, rerr := os.ReadFile(abs)
		switch {
		case rerr == nil:
			initial = string(data)
		case os.IsNotExist(rerr):
			// new file, created on first save
		default:
			fmt.Fprintln(os.Stderr, "open:", rerr)
			os.Exit(1)
		}
		log.Info(log.CatFile, "opened", "path", abs, "bytes", len(initial))
	}

	// Clipboard: injected collaborator, never a singleton.
	var clip clipboard.Clipboard
	if opts.Clipboard == "memory" || !clipboard.Available() {
		if opts.Clipboard != "memory" {
			fmt.Fprintln(os.Stderr, "No OS clipboard available; using in-process clipboard.")
		}
		clip = clipboard.NewMemory()
	} else {
		clip = clipboard.NewSystem()
	}

	// Session state: restore the caret for this file.
	st := session.Load(session.Path())
	caret := 0
	if abs != "" {
		caret = st.Caret(abs)
	}

	// Watch for external changes.
	var changes <-chan struct{}
	if abs != "" && opts.WatchEnabled() {
		w, werr := watcher.Watch(abs)
		if werr != nil {
			log.ErrorErr(log.CatWatcher, "watch failed", werr, "path", abs)
		} else {
			changes = w.Events()
			defer w.Close()
		}
	}

	runOpts := appTUI.Options{
		Path:     path,
		Initial:  initial,
		Caret:    caret,
		Wrap:     opts.Wrap,
		TabWidth: opts.TabWidth,
		Clip:     clip,
		Changes:  changes,
	}
	if abs != "" {
		target := abs
		runOpts.SaveFunc = func(text string) error {
			if err := os.WriteFile(target, []byte(text), 0644); err != nil {
				log.ErrorErr(log.CatFile, "save failed", err, "path", target)
				return err
			}
			log.Info(log.CatFile, "saved", "path", target, "bytes", len(text))
			return nil
		}
		runOpts.LoadFunc = func() (string, error) {
			data, err := os.ReadFile(target)
			if err != nil {
				return "", err
			}
			return string(data), nil
		}
	}

	res, err := appTUI.Run(runOpts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "editor:", err)
		os.Exit(1)
	}

	if abs != "" {
		st.Touch(abs, res.Caret)
		if serr := session.Save(session.Path(), st); serr != nil {
			log.ErrorErr(log.CatConfig, "session save failed", serr)
		}
	}
	if res.Dirty {
		fmt.Println("Note: unsaved changes were discarded.")
	}
}
