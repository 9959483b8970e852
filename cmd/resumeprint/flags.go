package main

import (
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

// cliFlags holds all flags for the resumeprint CLI.
type cliFlags struct {
	output   string
	title    string
	config   string
	timeout  string
	workers  int
	html     bool
	htmlOnly bool
	quiet    bool
	verbose  bool
	version  bool
}

// parseFlags parses CLI flags and returns the remaining positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("resumeprint", flag.ContinueOnError)
	f := &cliFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringVar(&f.title, "title", "", "document title (\"\" = config, first heading, or \"Resume\")")
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.html, "html", false, "output HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args[1:]); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// printUsage writes CLI usage to w.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `resumeprint - export resume markdown to print-ready HTML/PDF

Usage:
  resumeprint [flags] <input.md | directory>

Flags:
  -o, --output    output file or directory (default: next to input)
      --title     document title (default: config, first heading, or "Resume")
  -c, --config    config file name or path
  -t, --timeout   PDF generation timeout (e.g., 30s, 2m)
  -w, --workers   parallel workers (0 = auto)
      --html      output HTML alongside PDF
      --html-only output HTML only, skip PDF
  -q, --quiet     only show errors
  -v, --verbose   show detailed timing
      --version   print version and exit
`)
}
