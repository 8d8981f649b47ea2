package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	argparser "github.com/cardinalby/go-arg-parser"
	"github.com/cardinalby/go-arg-parser/cmdargs"
)

// main is the entrypoint of argdump: it prints how its own arguments are classified.
func main() {
	if err := run(os.Stdout, os.Stderr, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outW, logW io.Writer, args []string) error {
	p := argparser.New(args)

	program := "argdump"
	if name, err := p.Arg(0); err == nil {
		program = filepath.Base(name)
	}
	if p.HasOption("h", "help") {
		printUsage(outW, program)
		return nil
	}

	logLevel, _ := p.Value("", "log-level").Single()
	logFormat, _ := p.Value("", "log-format").Single()
	logger, err := newLogger(logLevel, logFormat, logW)
	if err != nil {
		return err
	}
	logger.Debug("parsed arguments",
		"program", program,
		"args", len(p.Args()),
		"extra", len(p.ExtraArgs()),
	)

	var writeErr error
	p.Tokens(func(token cmdargs.Token) bool {
		if token.Index == 0 || token.Role.Has(cmdargs.RoleTerminator) {
			return true
		}
		_, writeErr = fmt.Fprintf(outW, "%d\t%s\t%q\n", token.Index, token.Role, token.Arg)
		if token.IsCluster() {
			logger.Debug("joined short options", "arg", token.Arg, "options", len(token.Name))
		}
		return writeErr == nil
	})
	return writeErr
}

func printUsage(outW io.Writer, program string) {
	_, _ = fmt.Fprintf(outW,
		"Usage: %s [--log-level=debug|info|warn|error] [--log-format=text|json] [args...] [-- extra...]\n",
		program,
	)
}

// newLogger creates a slog.Logger writing to `outW`. Empty `levelStr` and `formatStr`
// select "info" and "text".
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info", "":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, fmt.Errorf("unknown log level %q", levelStr)
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	switch formatStr {
	case "json":
		handler = slog.NewJSONHandler(outW, handlerOpts)
	case "text", "":
		handler = slog.NewTextHandler(outW, handlerOpts)
	default:
		return nil, fmt.Errorf("unknown log format %q", formatStr)
	}

	return slog.New(handler), nil
}
