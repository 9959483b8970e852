package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	resumeprint "github.com/alnah/go-resumeprint"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteOutput        = errors.New("failed to write output file")
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// exportSettings groups resolved parameters shared across a batch.
type exportSettings struct {
	title    string // empty = per-file title from first heading
	html     bool
	htmlOnly bool
	quiet    bool
	verbose  bool
}

// FileToExport represents a single file to process.
type FileToExport struct {
	InputPath  string
	OutputPath string
}

// ExportResult holds the outcome of a single export.
type ExportResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// run orchestrates the export process for one or more input files.
func run(ctx context.Context, positionalArgs []string, settings *exportSettings, outputDir string, pool Pool, stdout, stderr io.Writer) error {
	if len(positionalArgs) == 0 {
		return ErrNoInput
	}

	files, err := discoverFiles(positionalArgs[0], outputDir, settings.htmlOnly)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", positionalArgs[0])
	}

	results := exportBatch(ctx, pool, files, settings)

	failedCount := printResults(results, settings.quiet, settings.verbose, stdout, stderr)
	if failedCount > 0 {
		return fmt.Errorf("%d export(s) failed", failedCount)
	}

	return nil
}

// resolveSettings merges flags and config. Flags win.
func resolveSettings(flags *cliFlags, cfg *Config) *exportSettings {
	s := &exportSettings{
		title:    cfg.Document.Title,
		html:     cfg.Export.HTML,
		htmlOnly: cfg.Export.HTMLOnly,
		quiet:    flags.quiet,
		verbose:  flags.verbose,
	}
	if flags.title != "" {
		s.title = flags.title
	}
	if flags.html {
		s.html = true
	}
	if flags.htmlOnly {
		s.htmlOnly = true
	}
	return s
}

// resolveTimeout picks the timeout from flag or config and parses it.
// Returns zero when neither is set (library default applies).
func resolveTimeout(flagTimeout string, cfg *Config) (time.Duration, error) {
	raw := flagTimeout
	if raw == "" {
		raw = cfg.Export.Timeout
	}
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, raw)
	}
	return d, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, MaxPoolSize)
	}
	return nil
}

// discoverFiles finds all markdown files to export.
func discoverFiles(inputPath, outputDir string, htmlOnly bool) ([]FileToExport, error) {
	outExt := ".pdf"
	if htmlOnly {
		outExt = ".html"
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "", outExt)
		return []FileToExport{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToExport
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".md" && ext != ".markdown" {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, outExt)
		files = append(files, FileToExport{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for a markdown file.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outExt string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outExt)
	}

	if strings.HasSuffix(outputDir, outExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+outExt)
		}
	}

	return filepath.Join(outputDir, base+outExt)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// resolveTitle picks the display title for one file: explicit setting,
// then the first level-1 heading, then empty (the library falls back to
// its default).
func resolveTitle(settingsTitle, markdown string) string {
	if settingsTitle != "" {
		return settingsTitle
	}
	for _, b := range resumeprint.ClassifyBlocks(markdown) {
		if b.Kind == resumeprint.BlockHeading && b.Level == 1 {
			return strings.TrimSpace(b.Text)
		}
	}
	return ""
}

// exportBatch processes files concurrently using the service pool.
func exportBatch(ctx context.Context, pool Pool, files []FileToExport, settings *exportSettings) []ExportResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ExportResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ExportResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = exportFile(ctx, svc, files[idx], settings)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// exportFile processes a single file and returns the result.
func exportFile(ctx context.Context, service Exporter, f FileToExport, settings *exportSettings) ExportResult {
	start := time.Now()
	result := ExportResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadMarkdown, err)
		result.Duration = time.Since(start)
		return result
	}

	input := resumeprint.Input{
		Markdown: string(content),
		Title:    resolveTitle(settings.title, string(content)),
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	if settings.htmlOnly {
		doc, err := service.ExportHTML(ctx, input)
		if err != nil {
			result.Err = err
		} else {
			result.Err = writeOutput(f.OutputPath, []byte(doc))
		}
		result.Duration = time.Since(start)
		return result
	}

	pdfBytes, err := service.ExportPDF(ctx, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := writeOutput(f.OutputPath, pdfBytes); err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// Optional HTML sidecar next to the PDF.
	if settings.html {
		doc, err := service.ExportHTML(ctx, input)
		if err == nil {
			htmlPath := strings.TrimSuffix(f.OutputPath, filepath.Ext(f.OutputPath)) + ".html"
			err = writeOutput(htmlPath, []byte(doc))
		}
		if err != nil {
			result.Err = err
		}
	}

	result.Duration = time.Since(start)
	return result
}

// writeOutput writes an exported document to disk.
func writeOutput(path string, data []byte) error {
	// #nosec G306 -- exported documents are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// printResults outputs export results and returns the failure count.
func printResults(results []ExportResult, quiet, verbose bool, stdout, stderr io.Writer) int {
	var succeeded, failed int

	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		succeeded++
		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(stdout, "Created %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(stdout, "\n%d succeeded, %d failed\n", succeeded, failed)
	}

	return failed
}
