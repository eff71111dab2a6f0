// Command gramscope assesses an Instagram account's trustworthiness from
// public signals and prints a JSON report.
//
// Usage:
//
//	gramscope johndoe
//	gramscope @johndoe -o report.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/codeGROOVE-dev/gramscope"
	"github.com/codeGROOVE-dev/gramscope/httpcache"
	"github.com/codeGROOVE-dev/gramscope/trust"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	verbose := flag.Bool("v", false, "verbose logging (same as -debug)")
	noCache := flag.Bool("no-cache", false, "disable HTTP caching (enabled by default with 24-hour TTL)")
	cacheTTL := flag.Duration("cache-ttl", 24*time.Hour, "cache time-to-live")
	pacing := flag.Duration("pace", 500*time.Millisecond, "delay between profile and contact fetches")
	core := flag.Bool("core", false, "score core signals only, skipping presentation flags")
	output := flag.String("o", "", "write the JSON report to this file instead of stdout")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: gramscope [options] <username>")
		fmt.Fprintln(os.Stderr, "\nOptions:")
		flag.PrintDefaults()
		fmt.Fprintln(os.Stderr, "\nThe report includes profile data, obfuscated contact analysis,")
		fmt.Fprintln(os.Stderr, "archive history, and a 0-100 trust score with its signal trail.")
		os.Exit(1)
	}

	username := flag.Arg(0)

	// Setup logger
	logLevel := slog.LevelInfo
	if *debug || *verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	// Setup cache
	var httpCache *httpcache.Cache
	if !*noCache {
		var err error
		httpCache, err = httpcache.New(*cacheTTL)
		if err != nil {
			logger.Warn("failed to initialize cache, continuing without cache", "error", err)
		} else {
			defer func() {
				if err := httpCache.Close(); err != nil {
					logger.Warn("failed to close cache", "error", err)
				}
			}()
			logger.Debug("HTTP cache initialized", "ttl", cacheTTL.String())
		}
	}

	// Build options
	opts := []gramscope.Option{
		gramscope.WithLogger(logger),
		gramscope.WithPacing(*pacing),
	}
	if httpCache != nil {
		opts = append(opts, gramscope.WithHTTPCache(httpCache))
	}
	if *core {
		opts = append(opts, gramscope.WithTrustConfig(trust.Config{Auxiliary: false}))
	}

	rep, err := gramscope.Lookup(context.Background(), username, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1) //nolint:gocritic // exitAfterDefer is acceptable in main
	}

	if err := outputJSON(rep, *output); err != nil {
		fmt.Fprintf(os.Stderr, "Output error: %v\n", err)
		os.Exit(1)
	}
}

func outputJSON(v any, path string) error {
	out := os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close() //nolint:errcheck // close error shadowed by encode error
		out = f
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
