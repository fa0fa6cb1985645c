// Command glexport compiles a scene file into a C replay of its GL calls.
//
// Usage:
//
//	glexport [options] <scene.toml|scene.yaml>
//
// Examples:
//
//	glexport scene.toml                  # Dump to stdout
//	glexport -o replay.c scene.toml      # Dump to a file
//	glexport -watch -o replay.c scene.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/gogpu/glexport"
	"github.com/gogpu/glexport/graph"
	"github.com/gogpu/glexport/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	input   string
	output  string
	dialect string
	strict  bool
	watch   bool
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var c config
	fs := flag.NewFlagSet("glexport", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.output, "o", "", "output file (default: stdout)")
	fs.StringVar(&c.dialect, "dialect", glexport.DefaultDialect, "output dialect")
	fs.BoolVar(&c.strict, "strict", false, "fail on GL codes without a symbol")
	fs.BoolVar(&c.watch, "watch", false, "dump again whenever an input file changes")
	fs.BoolVar(&c.verbose, "v", false, "log debug output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: glexport [options] <scene.toml|scene.yaml>\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nDialects: %v\n", glexport.Dialects())
	}
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return c, fmt.Errorf("expected one scene file, got %d arguments", fs.NArg())
	}
	c.input = fs.Arg(0)
	return c, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          "glexport",
	})
	if verbose {
		l.SetLevel(log.DebugLevel)
	}
	return slog.New(l)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	logger := newLogger(stderr, c.verbose)
	glexport.SetLogger(logger)
	defer glexport.SetLogger(nil)

	if !glexport.IsRegistered(c.dialect) {
		logger.Error("unknown dialect", "dialect", c.dialect, "available", glexport.Dialects())
		return 2
	}

	files, err := export(c, stdout, logger)
	if !c.watch {
		if err != nil {
			logger.Error("export failed", "err", err)
			return 1
		}
		return 0
	}
	if err != nil {
		logger.Error("export failed", "err", err)
	}
	if err := watch(ctx, c, files, stdout, logger); err != nil {
		logger.Error("watch failed", "err", err)
		return 1
	}
	return 0
}

// export loads the scene, dumps it and writes the result. It returns the
// files the output depends on, which is at least the scene file itself.
func export(c config, stdout io.Writer, logger *slog.Logger) ([]string, error) {
	s, err := scene.Load(c.input, graph.WithLogger(logger))
	if err != nil {
		return []string{c.input}, err
	}
	out, err := glexport.Dump(s.Context,
		glexport.WithDialect(c.dialect),
		glexport.WithStrictSymbols(c.strict),
	)
	if err != nil {
		return s.Files, err
	}

	if c.output == "" {
		_, err = io.WriteString(stdout, out)
		return s.Files, err
	}
	if err := os.WriteFile(c.output, []byte(out), 0o644); err != nil {
		return s.Files, err
	}
	logger.Info("wrote replay", "file", c.output, "bytes", len(out), "pipelines", len(s.Pipelines))
	return s.Files, nil
}
