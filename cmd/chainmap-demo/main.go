// Command chainmap-demo builds a small table from literal data and prints it.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/llxisdsh/chainmap"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("chainmap-demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	format := fs.String("format", "text", "output format: text or json")
	showStats := fs.Bool("stats", false, "print bucket statistics")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn or error")
	logJSON := fs.Bool("log-json", false, "emit logs as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, *logLevel, *logJSON)
	if err != nil {
		return err
	}

	t := chainmap.FromEntries([]chainmap.EntryOf[string, int]{
		{Key: "Zheng Yan", Value: 25},
		{Key: "Chee Yung", Value: 23},
		{Key: "William", Value: 21},
		{Key: "XXX", Value: 20},
		{Key: "xxy", Value: 32},
	})
	logger.Info("table built",
		"size", t.Size(),
		"capacity", t.Capacity(),
	)

	switch *format {
	case "text":
		fmt.Fprintf(stdout, "table is %v\n", t)
	case "json":
		data, err := t.MarshalJSON()
		if err != nil {
			logger.Error("encode failed", "error", err)
			return err
		}
		fmt.Fprintf(stdout, "%s\n", data)
	default:
		return fmt.Errorf("unknown format %q", *format)
	}

	if *showStats {
		stats := t.Stats()
		logger.Debug("stats collected",
			"chain_buckets", stats.ChainBuckets,
			"max_chain_len", stats.MaxChainLen,
		)
		fmt.Fprint(stdout, stats.ToString())
	}
	return nil
}

func newLogger(w io.Writer, level string, asJSON bool) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
