package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/hupe1980/wordcount"
	"github.com/hupe1980/wordcount/source"
)

const mb = 1024 * 1024

func printSummary(w io.Writer, res *wordcount.Result, size int64, top int) {
	n := min(top, len(res.Top))
	fmt.Fprintf(w, "\n=== Top %d Words ===\n", top)
	for i := range n {
		wc := res.Top[i]
		fmt.Fprintf(w, "%2d. %-15s %9s  (%5.2f%%)\n", i+1, wc.Word, humanize.Comma(int64(wc.Count)), res.Percent(i))
	}

	sizeMB := float64(size) / mb
	ms := float64(res.Stats.Total.Microseconds()) / 1000
	fmt.Fprintf(w, "\nFile size:       %.2f MB\n", sizeMB)
	fmt.Fprintf(w, "Total words:     %s\n", humanize.Comma(int64(res.TotalWords)))
	fmt.Fprintf(w, "Unique words:    %s\n", humanize.Comma(int64(res.UniqueWords)))
	fmt.Fprintf(w, "Time:            %.2f ms\n", ms)
	if ms > 0 {
		fmt.Fprintf(w, "Throughput:      %.2f MB/s\n", sizeMB/(ms/1000))
	}
	fmt.Fprintf(w, "Workers:         %d\n", res.Stats.Workers)
	fmt.Fprintf(w, "ISA:             %s\n", res.Stats.ISA)
}

// reportName derives the report path from the input: the input path with its
// compression and text extensions replaced by _go_results.txt. Remote inputs
// use the object's base name.
func reportName(input string) string {
	name := input
	if scheme, rest, ok := strings.Cut(input, "://"); ok {
		name = rest
		if scheme != "file" {
			name = path.Base(rest)
		}
	}
	if source.CompressionOf(name) != source.CompressionNone {
		name = strings.TrimSuffix(name, path.Ext(name))
	}
	if ext := path.Ext(name); ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	return name + "_go_results.txt"
}

func writeReport(reportPath, input string, res *wordcount.Result, top int) error {
	f, err := os.Create(reportPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 32*1024)
	fmt.Fprintf(w, "Word Frequency Analysis - Go Implementation (Optimized)\n")
	fmt.Fprintf(w, "Input file: %s\n", input)
	fmt.Fprintf(w, "Generated: %s\n", time.Now().Format(time.DateTime))
	fmt.Fprintf(w, "Execution time: %.2f ms\n\n", float64(res.Stats.Total.Microseconds())/1000)
	fmt.Fprintf(w, "Total words: %s\n", humanize.Comma(int64(res.TotalWords)))
	fmt.Fprintf(w, "Unique words: %s\n\n", humanize.Comma(int64(res.UniqueWords)))
	fmt.Fprintf(w, "Top %d Most Frequent Words:\n", top)
	fmt.Fprintf(w, "Rank  Word            Count     Percentage\n")
	fmt.Fprintf(w, "----  --------------- --------- ----------\n")

	for i := range min(top, len(res.Top)) {
		wc := res.Top[i]
		fmt.Fprintf(w, "%4d  %-15s %9s %10.2f%%\n", i+1, wc.Word, humanize.Comma(int64(wc.Count)), res.Percent(i))
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}
