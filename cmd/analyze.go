package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/gaurav-prasanna/pagescope/core"
	"github.com/gaurav-prasanna/pagescope/core/analyze"
	"github.com/gaurav-prasanna/pagescope/core/fetch"
	"github.com/gaurav-prasanna/pagescope/core/normalize"
	"github.com/gaurav-prasanna/pagescope/core/output"
	"github.com/gaurav-prasanna/pagescope/core/render"
	"github.com/gaurav-prasanna/pagescope/internal/platform/config"
	"github.com/gaurav-prasanna/pagescope/internal/platform/logger"
	"github.com/spf13/cobra"
)

const (
	welcomeMessage = "Welcome to the Website Content Analyzer for Design Insights!\n" +
		"This tool helps you analyze website structures for design and SEO hints."
	promptMessage     = "\nEnter the URL of the website to analyze (or 'quit' to exit): "
	invalidURLMessage = "Invalid URL. Please include 'http://' or 'https://'."
	goodbyeMessage    = "\nThank you for using the Website Content Analyzer. Goodbye!"
)

// driver connects the analyzer to the terminal: it renders each result and
// prints it or writes it to a file.
type driver struct {
	analyzer *analyze.Analyzer
	renderer core.Renderer
	writer   *output.Writer // nil prints to out
	out      io.Writer
}

func runAnalyze(cmd *cobra.Command, args []string, opts *options) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogLevel, cmd.ErrOrStderr())

	format := render.Format(opts.format)
	renderer, err := render.New(format)
	if err != nil {
		return err
	}

	d := &driver{
		analyzer: analyze.New(
			fetch.New(cfg, log),
			normalize.New(),
			log,
			analyze.Options{IncludeContent: opts.content},
		),
		renderer: renderer,
		out:      cmd.OutOrStdout(),
	}

	if cfg.OutputDir != "" || format.Binary() {
		d.writer, err = output.New(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
	}

	if len(args) == 1 {
		if !validURL(args[0]) {
			fmt.Fprintln(d.out, invalidURLMessage)
			return nil
		}
		return d.report(cmd.Context(), args[0])
	}
	return d.interactive(cmd.Context(), cmd.InOrStdin())
}

// loadConfig layers explicitly set flags over the environment.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Timeout = opts.timeout
	}
	if flags.Changed("user_agent") {
		cfg.UserAgent = opts.userAgent
	}
	if flags.Changed("log_level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("output_dir") {
		cfg.OutputDir = opts.outputDir
	}
	return cfg, cfg.Validate()
}

// interactive prompts for URLs until "quit" or end of input.
func (d *driver) interactive(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(d.out, welcomeMessage)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(d.out, promptMessage)
		if !scanner.Scan() {
			fmt.Fprintln(d.out)
			break
		}

		target := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(target, "quit") {
			break
		}
		if !validURL(target) {
			fmt.Fprintln(d.out, invalidURLMessage)
			continue
		}
		if err := d.report(ctx, target); err != nil {
			fmt.Fprintln(d.out, "Error:", err)
		}
	}

	fmt.Fprintln(d.out, goodbyeMessage)
	return scanner.Err()
}

// report analyzes one URL and delivers the rendered result. Failed
// analyses are printed as a single error line, never written to a file.
func (d *driver) report(ctx context.Context, rawURL string) error {
	result := d.analyzer.Analyze(ctx, rawURL)

	if d.writer != nil && result.Failed() {
		fmt.Fprintf(d.out, "Error: %s\n", result.Error)
		return nil
	}

	data, err := d.renderer.Render(result)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if d.writer == nil {
		_, err = d.out.Write(data)
		return err
	}

	path, err := d.writer.Write(rawURL, data, d.renderer.Extension())
	if err != nil {
		return err
	}
	fmt.Fprintf(d.out, "✓ Written: %s\n", path)
	return nil
}

func validURL(rawURL string) bool {
	return strings.HasPrefix(rawURL, "http://") || strings.HasPrefix(rawURL, "https://")
}
