// Package main is the entry point for the editbridge session shell.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/dshills/editbridge/internal/config"
	"github.com/dshills/editbridge/internal/editor"
	"github.com/dshills/editbridge/internal/log"
	"github.com/dshills/editbridge/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		seedPath    string
		scriptPath  string
		logLevel    string
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.StringVar(&seedPath, "seed", "", "JSON file of path -> content to populate the session")
	flag.StringVar(&scriptPath, "script", "", "Lua script to run against the session")
	flag.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "editbridge - in-memory edit session shell\n\n")
		fmt.Fprintf(os.Stderr, "Usage: editbridge [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("editbridge %s (%s)\n", version, commit)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if seedPath == "" {
		seedPath = cfg.Workspace.SeedFile
	}
	if scriptPath == "" && cfg.Script.Enabled {
		scriptPath = cfg.Script.Path
	}
	level := cfg.LogLevel()
	if logLevel != "" {
		level = log.ParseLevel(logLevel)
	}

	logger := log.New(log.Config{
		Level:  level,
		Output: os.Stderr,
		Prefix: cfg.Logging.Prefix,
	})
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		logger.SetOutput(f)
	}

	seed, err := loadSeed(seedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	session := editor.New(
		editor.WithSeed(seed),
		editor.WithMaxUndoLevels(cfg.Editor.MaxUndoLevels),
		editor.WithLogger(logger.WithComponent("editor")),
	)
	defer session.Close()

	if scriptPath != "" {
		host := script.NewHost(session, script.WithLogger(logger.WithComponent("script")))
		defer host.Close()
		if err := host.DoFile(scriptPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	if err := repl(session, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadSeed reads a JSON object mapping document paths to contents.
func loadSeed(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("seed %s: malformed JSON", path)
	}
	seed := make(map[string]string)
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		seed[key.String()] = value.String()
		return true
	})
	return seed, nil
}

// repl runs the line-oriented command loop.
func repl(s *editor.Session, in *os.File, out *os.File) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	fmt.Fprintln(w, "editbridge session; type 'help' for commands")
	w.Flush()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(w, "> ")
		w.Flush()
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil

		case "help":
			printHelp(w)

		case "files":
			for _, p := range s.Paths() {
				marker := "  "
				if p == s.ActiveFile() {
					marker = "* "
				}
				fmt.Fprintln(w, marker+p)
			}

		case "open":
			if len(args) != 1 {
				fmt.Fprintln(w, "usage: open <path>")
				break
			}
			if err := s.SetActiveFile(args[0]); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "show":
			ctx := s.Context()
			if ctx.ActiveFile == "" {
				fmt.Fprintln(w, "no active file")
				break
			}
			for i, line := range editor.Lines(ctx.ActiveContent) {
				fmt.Fprintf(w, "%4d  %s\n", i+1, line)
			}

		case "insert":
			// insert <line> <column> <text...>
			if len(args) < 3 {
				fmt.Fprintln(w, "usage: insert <line> <column> <text>")
				break
			}
			line, err1 := strconv.Atoi(args[0])
			col, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				fmt.Fprintln(w, "error: line and column must be integers")
				break
			}
			text := strings.Join(args[2:], " ")
			if err := s.InsertAt(editor.Position{Line: line, Column: col}, text); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "delete":
			// delete <startLine> <endLine>
			if len(args) != 2 {
				fmt.Fprintln(w, "usage: delete <startLine> <endLine>")
				break
			}
			start, err1 := strconv.Atoi(args[0])
			end, err2 := strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				fmt.Fprintln(w, "error: line numbers must be integers")
				break
			}
			if err := s.DeleteLines(start, end); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "replace":
			// replace <old> <new>
			if len(args) != 2 {
				fmt.Fprintln(w, "usage: replace <old> <new>")
				break
			}
			if err := s.ReplaceAll(args[0], args[1]); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "edits":
			// edits <json-array>
			if len(args) == 0 {
				fmt.Fprintln(w, "usage: edits <json>")
				break
			}
			if err := s.ApplyEditsJSON([]byte(strings.Join(args, " "))); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "undo":
			if !s.Undo() {
				fmt.Fprintln(w, "nothing to undo")
			}

		case "redo":
			if !s.Redo() {
				fmt.Fprintln(w, "nothing to redo")
			}

		case "tree":
			printTree(w, s.ProjectTree(), 0)

		case "ctx":
			data, err := s.ContextJSON()
			if err != nil {
				fmt.Fprintln(w, "error:", err)
				break
			}
			fmt.Fprintln(w, string(data))

		default:
			fmt.Fprintf(w, "unknown command %q; type 'help'\n", cmd)
		}
		w.Flush()
	}
}

func printHelp(w *bufio.Writer) {
	fmt.Fprintln(w, "commands:")
	fmt.Fprintln(w, "  files                      list documents (* marks active)")
	fmt.Fprintln(w, "  open <path>                switch active document")
	fmt.Fprintln(w, "  show                       print the active document")
	fmt.Fprintln(w, "  insert <line> <col> <text> insert text at position")
	fmt.Fprintln(w, "  delete <start> <end>       delete inclusive line range")
	fmt.Fprintln(w, "  replace <old> <new>        replace all occurrences")
	fmt.Fprintln(w, "  edits <json>               apply a JSON batch of edits")
	fmt.Fprintln(w, "  undo / redo                step through history")
	fmt.Fprintln(w, "  tree                       print the project tree")
	fmt.Fprintln(w, "  ctx                        print the agent context as JSON")
	fmt.Fprintln(w, "  quit                       exit")
}

func printTree(w *bufio.Writer, n *editor.TreeNode, depth int) {
	indent := strings.Repeat("  ", depth)
	name := n.Name
	if n.Type == editor.NodeFolder && n.Name != "/" {
		name += "/"
	}
	fmt.Fprintln(w, indent+name)
	for _, c := range n.Children {
		printTree(w, c, depth+1)
	}
}
