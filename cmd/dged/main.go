// Package main is the entry point for the dged editor.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dged-editor/dged/internal/applog"
	"github.com/dged-editor/dged/internal/buffer"
	"github.com/dged-editor/dged/internal/builtins"
	"github.com/dged-editor/dged/internal/command"
	"github.com/dged-editor/dged/internal/display"
	"github.com/dged-editor/dged/internal/frameloop"
	"github.com/dged-editor/dged/internal/keymap"
	"github.com/dged-editor/dged/internal/killring"
	"github.com/dged-editor/dged/internal/minibuffer"
	"github.com/dged-editor/dged/internal/reactor"
	"github.com/dged-editor/dged/internal/settings"
	"github.com/dged-editor/dged/internal/window"
)

// Exit codes, per the CLI's external-interface contract.
const (
	exitSuccess  = 0
	exitUsage    = 1
	exitRuntime  = 2
	exitSettings = 3
)

// options holds the parsed command line.
type options struct {
	line     int
	end      bool
	help     bool
	filename string
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, code, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return code
	}
	if opts.help {
		printUsage(os.Stdout)
		return exitUsage
	}

	cfg, err := settings.Load(settings.UserConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return exitSettings
	}

	log := applog.New(applog.DefaultConfig())
	applog.SetGlobal(log)

	kr := killring.New()
	contentBuf, err := openContentBuffer(opts, kr, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return exitRuntime
	}

	miniBuf := buffer.New("*minibuffer*", kr)

	r, err := reactor.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return exitRuntime
	}
	defer r.Close()

	d, err := display.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return exitRuntime
	}
	defer d.Close()

	tree := window.Init(d.Height(), d.Width(), contentBuf, miniBuf)
	positionDot(tree.Active(), opts)
	mini := minibuffer.New(miniBuf)
	registry := command.NewRegistry()
	global := builtins.DefaultKeymap()
	resolver := keymap.NewResolver(global)

	loop, err := frameloop.New(r, d, tree, resolver, registry, mini,
		[]*buffer.Buffer{contentBuf}, int(os.Stdin.Fd()), 0,
		cfg.Editor.TabWidth, cfg.Editor.ShowWhitespace)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dged: %v\n", err)
		return exitRuntime
	}

	builtins.Register(registry, loop, tree, mini)

	if contentBuf.Path != "" {
		if err := loop.WatchBuffer(contentBuf); err != nil {
			log.Warn("watch %s: %v", contentBuf.Path, err)
		}
	}

	loop.WatchSignals()

	if err := loop.Run(); err != nil {
		log.Error("frame loop: %v", err)
		return exitRuntime
	}
	return exitSuccess
}

// openContentBuffer loads opts.filename if given and assigns a language
// from cfg by file extension; with no filename it creates an empty
// "scratch" buffer. Dot positioning for -l/-e is left to positionDot.
func openContentBuffer(opts options, kr *killring.KillRing, cfg *settings.Settings) (*buffer.Buffer, error) {
	var b *buffer.Buffer
	var err error
	if opts.filename != "" {
		b, err = buffer.FromFile(opts.filename, kr)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", opts.filename, err)
		}
		b.Language = languageFor(opts.filename, cfg)
	} else {
		b = buffer.New("scratch", kr)
	}
	return b, nil
}

// positionDot applies -l/--line or -e/--end to leaf's view, if either was
// given; -e takes precedence when both are (the CLI does not reject the
// combination).
func positionDot(leaf *window.Node, opts options) {
	v := leaf.View
	switch {
	case opts.end:
		v.MoveToEnd()
	case opts.line > 0:
		v.Dot = v.Buf.Clamp(opts.line-1, 0)
	}
}

// languageFor matches path's extension against cfg's configured
// languages, falling back to the buffer package's own unknown-language
// default when nothing matches.
func languageFor(path string, cfg *settings.Settings) buffer.Language {
	ext := filepath.Ext(path)
	if len(ext) > 0 {
		ext = ext[1:]
	}
	for _, lang := range cfg.Languages {
		for _, e := range lang.Extensions {
			if e == ext {
				return lang
			}
		}
	}
	return buffer.Language{Name: "text"}
}

func parseFlags(args []string) (options, int, error) {
	var opts options
	fs := flag.NewFlagSet("dged", flag.ContinueOnError)
	fs.SetOutput(new(discardWriter))

	fs.IntVar(&opts.line, "line", 0, "position dot at line N (1-based)")
	fs.IntVar(&opts.line, "l", 0, "position dot at line N (1-based), shorthand")
	fs.BoolVar(&opts.end, "end", false, "position dot at end-of-buffer")
	fs.BoolVar(&opts.end, "e", false, "position dot at end-of-buffer, shorthand")
	fs.BoolVar(&opts.help, "help", false, "show usage and exit")
	fs.BoolVar(&opts.help, "h", false, "show usage and exit, shorthand")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			opts.help = true
			return opts, exitUsage, nil
		}
		return opts, exitUsage, err
	}

	rest := fs.Args()
	if len(rest) > 1 {
		return opts, exitRuntime, fmt.Errorf("at most one filename, got %d", len(rest))
	}
	if len(rest) == 1 {
		opts.filename = rest[0]
	}
	return opts, exitSuccess, nil
}

func printUsage(w *os.File) {
	fmt.Fprintf(w, "dged - a modal-free, keyboard-driven text editor\n\n")
	fmt.Fprintf(w, "Usage: dged [-l|--line N] [-e|--end] [-h|--help] [filename]\n\n")
	fmt.Fprintf(w, "  -l, --line N   position dot at line N (1-based)\n")
	fmt.Fprintf(w, "  -e, --end      position dot at end-of-buffer\n")
	fmt.Fprintf(w, "  -h, --help     show this message and exit\n")
}

// discardWriter silences flag.FlagSet's built-in usage output; printUsage
// is the one path that writes it, so errors are reported separately.
type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }
