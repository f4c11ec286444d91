// Command logscan analyzes a web-server access log. It prints the number of
// requests per IP address, the most frequently accessed endpoint, and any IP
// addresses with a suspicious number of failed logins, then saves the same
// results to a CSV file.
//
// Usage:
//
//	logscan [flags] [LOGFILE]
//
// LOGFILE defaults to the log_file setting (sample.log); use - to read
// standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bitfield/logscan"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	threshold  int
	output     string
	format     string
	jq         string
	execCmd    string
	match      string
	reject     string
	noExport   bool
	verbose    bool
	set        map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (options, []string, error) {
	var opts options
	fs := flag.NewFlagSet("logscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML configuration `file`")
	fs.IntVar(&opts.threshold, "threshold", logscan.DefaultThreshold, "report IPs with more than `n` failed logins")
	fs.StringVar(&opts.output, "output", logscan.DefaultOutputFile, "CSV export `file`")
	fs.StringVar(&opts.format, "format", "table", "console output format: table or json")
	fs.StringVar(&opts.jq, "jq", "", "print the results of a jq `query` over the JSON report")
	fs.StringVar(&opts.execCmd, "exec", "", "read the log from the output of `command` instead of a file")
	fs.StringVar(&opts.match, "match", "", "only analyze lines containing `text`")
	fs.StringVar(&opts.reject, "reject", "", "skip lines containing `text`")
	fs.BoolVar(&opts.noExport, "no-export", false, "don't write the CSV export")
	fs.BoolVar(&opts.verbose, "v", false, "log progress to standard error")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: logscan [flags] [LOGFILE]\n\n")
		fmt.Fprintf(stderr, "Reports requests per IP, the most accessed endpoint, and suspicious failed logins.\n\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return opts, nil, err
	}
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})
	if opts.format != "table" && opts.format != "json" {
		return opts, nil, fmt.Errorf("unknown format %q (want table or json)", opts.format)
	}
	if fs.NArg() > 1 {
		return opts, nil, errors.New("at most one LOGFILE may be given")
	}
	if fs.NArg() == 1 && opts.execCmd != "" {
		return opts, nil, errors.New("LOGFILE and -exec are mutually exclusive")
	}
	return opts, fs.Args(), nil
}

func loadConfig(opts options) (logscan.Config, error) {
	cfg := logscan.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = logscan.LoadConfig(opts.configPath); err != nil {
			return cfg, err
		}
	}
	// Flags given explicitly win over the config file.
	if opts.set["threshold"] {
		cfg.Threshold = opts.threshold
	}
	if opts.set["output"] {
		cfg.OutputFile = opts.output
	}
	return cfg, cfg.Validate()
}

func source(cfg logscan.Config, opts options, args []string) *logscan.Pipe {
	if opts.execCmd != "" {
		return logscan.Exec(opts.execCmd)
	}
	path := cfg.LogFile
	if len(args) == 1 {
		path = args[0]
	}
	if path == "-" {
		return logscan.Stdin()
	}
	return logscan.File(path)
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, args, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "logscan: %v\n", err)
		return exitUsage
	}
	logger := newLogger(stderr, opts.verbose)

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "logscan: %v\n", err)
		return exitUsage
	}

	p := source(cfg, opts, args)
	if opts.match != "" {
		p = p.Match(opts.match)
	}
	if opts.reject != "" {
		p = p.Reject(opts.reject)
	}
	m := cfg.Matcher()
	logger.Debug("reading log", "source", p.Source(), "failure_markers", m.Markers())
	res, err := p.Analyze(m)
	if err != nil {
		reportSourceError(stderr, err)
		return exitError
	}
	report := logscan.NewReport(res, cfg).WithSource(p.Source())
	logger.Debug("analysis complete",
		"run_id", report.RunID,
		"source", report.Source,
		"lines", res.Lines,
		"requests", res.IPs.Total(),
		"ips", res.IPs.Len(),
		"endpoints", res.Endpoints.Len(),
		"failed_login_ips", res.FailedLogins.Len(),
	)
	if res.IPs.Len() == 0 {
		logger.Warn("no IP addresses found in log", "source", report.Source, "lines", res.Lines)
	}

	switch {
	case opts.jq != "":
		_, err = report.Pipe().JQ(opts.jq).WithStdout(stdout).Stdout()
	case opts.format == "json":
		_, err = report.Pipe().WithStdout(stdout).Stdout()
	default:
		err = report.Render(stdout)
	}
	if err != nil {
		fmt.Fprintf(stderr, "logscan: %v\n", err)
		return exitError
	}

	if opts.noExport {
		return exitOK
	}
	if err := report.SaveCSV(cfg.OutputFile); err != nil {
		fmt.Fprintf(stderr, "logscan: %v\n", err)
		return exitError
	}
	logger.Debug("results exported", "run_id", report.RunID, "path", cfg.OutputFile)
	if opts.jq == "" && opts.format == "table" {
		fmt.Fprintf(stdout, "\nResults saved to %s\n", cfg.OutputFile)
	}
	return exitOK
}

func reportSourceError(stderr io.Writer, err error) {
	var srcErr *logscan.SourceError
	switch {
	case errors.As(err, &srcErr) && srcErr.NotFound():
		fmt.Fprintf(stderr, "Error: File %s not found.\n", srcErr.Source)
	case errors.As(err, &srcErr):
		fmt.Fprintf(stderr, "Error: cannot read %s: %v\n", srcErr.Source, srcErr.Err)
	default:
		fmt.Fprintf(stderr, "logscan: %v\n", err)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With("service", "logscan")
}
