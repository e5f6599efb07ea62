// Command tabcat reads a tabular file (delimited text or parquet),
// optionally filters rows and computes an aggregate, and prints the result
// as a table, CSV, or JSON Lines.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/vegasq/tabcat/output"
	"github.com/vegasq/tabcat/query"
	"github.com/vegasq/tabcat/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the whole pipeline and returns the process exit code.
// Keeping main a one-liner makes the exit-status contract testable.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("tabcat", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var (
		whereFlag     = flags.String("where", "", "Filter condition (e.g. 'rating>4.5')")
		aggregateFlag = flags.String("aggregate", "", "Aggregate spec (e.g. 'rating=avg')")
		formatFlag    = flags.String("f", "table", "Output format: table, csv, jsonl")
		delimiterFlag = flags.String("d", ",", "Field delimiter for delimited files (use '\\t' for tabs)")
		limitFlag     = flags.Int("limit", 0, "Limit number of result rows (0 = unlimited)")
		verboseFlag   = flags.Bool("v", false, "Verbose diagnostics on stderr")
	)

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tabcat [options] <file>\n\n")
		fmt.Fprintf(stderr, "A tool to read, filter and aggregate tabular files (CSV, TSV, parquet).\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  tabcat products.csv\n")
		fmt.Fprintf(stderr, "  tabcat -where 'rating>4.5' products.csv\n")
		fmt.Fprintf(stderr, "  tabcat -where 'brand=apple' -aggregate 'price=avg' products.csv\n")
		fmt.Fprintf(stderr, "  tabcat -f csv data.parquet\n")
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logLevel := slog.LevelWarn
	if *verboseFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	if *limitFlag < 0 {
		fmt.Fprintf(stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		return 1
	}

	delimiter, err := parseDelimiter(*delimiterFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if flags.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: missing file argument\n\n")
		flags.Usage()
		return 1
	}
	filename := flags.Arg(0)

	table, err := reader.Open(filename, delimiter)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "Error: file '%s' not found\n", filename)
			fmt.Fprintf(stderr, "Please check the file path and try again.\n")
		} else {
			fmt.Fprintf(stderr, "Error: %v\n", err)
		}
		return 1
	}
	logger.Debug("read table", "file", filename, "columns", len(table.Columns), "rows", len(table.Rows))

	rows, err := query.ApplyFilter(table.Rows, *whereFlag)
	if err != nil {
		fmt.Fprintf(stderr, "Error applying filter: %v\n", err)
		// List available columns to help the user
		if errors.Is(err, query.ErrColumnNotFound) && len(table.Columns) > 0 {
			fmt.Fprintf(stderr, "\nAvailable columns: %s\n", strings.Join(table.Columns, ", "))
		}
		return 1
	}
	if *whereFlag != "" {
		logger.Debug("applied filter", "condition", *whereFlag, "rows", len(rows))
	}

	columns := table.Columns
	if *aggregateFlag != "" {
		rows, err = query.Aggregate(rows, *aggregateFlag)
		if err != nil {
			fmt.Fprintf(stderr, "Error in aggregation: %v\n", err)
			return 1
		}
		if len(rows) == 0 {
			fmt.Fprintln(stdout, "No data to aggregate")
			return 0
		}
		logger.Debug("applied aggregate", "spec", *aggregateFlag)
		// Aggregate results carry a single function-name column; let the
		// formatter derive it from the result row.
		columns = nil
	} else if len(rows) == 0 {
		fmt.Fprintln(stdout, "No data matches the filter condition")
		return 0
	}

	if *limitFlag > 0 && len(rows) > *limitFlag {
		rows = rows[:*limitFlag]
	}

	var formatter output.Formatter
	switch *formatFlag {
	case "table":
		formatter = output.NewTableFormatter(stdout)
	case "csv":
		formatter = output.NewCSVFormatter(stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(stdout)
	default:
		fmt.Fprintf(stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(stderr, "Supported formats: table, csv, jsonl\n")
		return 1
	}

	if err := formatter.Format(columns, rows); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}

	return 0
}

// parseDelimiter interprets the -d flag. The literal two characters "\t"
// are accepted as a tab so shells without ANSI-C quoting can pass TSV.
func parseDelimiter(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}
