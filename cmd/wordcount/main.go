// Command wordcount counts word frequencies in a text input.
//
// Usage:
//
//	wordcount [flags] [input]
//
// input is a local path (default book.txt), s3://bucket/key or
// minio://endpoint/bucket/key. Inputs ending in .zst, .gz or .lz4 are
// decompressed first. The top words and run statistics are printed and a
// report with the top 100 words is written next to the input.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/wordcount"
	"github.com/hupe1980/wordcount/source"
)

const defaultInput = "book.txt"

type config struct {
	input       string
	workers     int
	top         int
	reportTop   int
	maxWord     int
	hash        wordcount.HashAlgorithm
	kernel      wordcount.Kernel
	memoryLimit int64
	logLevel    slog.Level
	logJSON     bool
	report      string
	insecure    bool
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("wordcount", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg         config
		hashName    string
		kernelName  string
		memoryLimit string
		logLevel    string
	)
	fs.IntVar(&cfg.workers, "workers", runtime.GOMAXPROCS(0), "number of concurrent workers")
	fs.IntVar(&cfg.top, "top", 10, "number of words to print")
	fs.IntVar(&cfg.reportTop, "report-top", 100, "number of words in the report file")
	fs.IntVar(&cfg.maxWord, "max-word", wordcount.DefaultMaxWordLen, "maximum stored word length")
	fs.StringVar(&hashName, "hash", "auto", "word hash: auto|crc32c|fnv1a|xxh3")
	fs.StringVar(&kernelName, "kernel", "auto", "tokenizer kernel: auto|scalar|wide")
	fs.StringVar(&memoryLimit, "memory-limit", "", "limit for table and arena memory, e.g. 512MiB (empty = unlimited)")
	fs.StringVar(&logLevel, "log-level", "warn", "log level: debug|info|warn|error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON")
	fs.StringVar(&cfg.report, "report", "", `report file (default <input>_go_results.txt, "none" to skip)`)
	fs.BoolVar(&cfg.insecure, "insecure", false, "use plain HTTP for minio:// inputs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.input = defaultInput
	if fs.NArg() > 0 {
		cfg.input = fs.Arg(0)
	}

	var ok bool
	if cfg.hash, ok = wordcount.ParseHashAlgorithm(hashName); !ok {
		return nil, fmt.Errorf("unknown hash %q", hashName)
	}
	if cfg.kernel, ok = wordcount.ParseKernel(kernelName); !ok {
		return nil, fmt.Errorf("unknown kernel %q", kernelName)
	}
	if memoryLimit != "" {
		n, err := humanize.ParseBytes(memoryLimit)
		if err != nil {
			return nil, fmt.Errorf("invalid memory limit: %w", err)
		}
		cfg.memoryLimit = int64(n)
	}
	if err := cfg.logLevel.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	return &cfg, nil
}

func (c *config) logger() *wordcount.Logger {
	if c.logJSON {
		return wordcount.NewJSONLogger(c.logLevel)
	}
	return wordcount.NewTextLogger(c.logLevel)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	store, name, err := resolve(ctx, cfg.input, cfg.insecure)
	if err != nil {
		return err
	}
	blob, err := source.Open(ctx, store, name)
	if err != nil {
		if errors.Is(err, source.ErrNotFound) {
			return fmt.Errorf("input %q not found", cfg.input)
		}
		return err
	}
	defer blob.Close()

	eng, err := wordcount.New(
		wordcount.WithWorkers(cfg.workers),
		wordcount.WithTopK(max(cfg.top, cfg.reportTop)),
		wordcount.WithMaxWordLen(cfg.maxWord),
		wordcount.WithHashAlgorithm(cfg.hash),
		wordcount.WithKernel(cfg.kernel),
		wordcount.WithMemoryLimit(cfg.memoryLimit),
		wordcount.WithLogger(cfg.logger()),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Processing file: %s\n", cfg.input)
	fmt.Fprintf(stdout, "Mode: %s + %s\n", eng.Kernel(), eng.Hash())

	res, err := eng.Count(ctx, blob.Bytes())
	if err != nil {
		return err
	}

	printSummary(stdout, res, blob.Size(), cfg.top)

	if cfg.report == "none" {
		return nil
	}
	reportPath := cfg.report
	if reportPath == "" {
		reportPath = reportName(cfg.input)
	}
	if err := writeReport(reportPath, cfg.input, res, cfg.reportTop); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(stdout, "\nResults written to: %s\n", reportPath)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
