// Package cmd implements the pagescope CLI using Cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gaurav-prasanna/pagescope/core/render"
	"github.com/spf13/cobra"
)

// options holds the flag values of one command invocation.
type options struct {
	format    formatFlag
	outputDir string
	content   bool
	timeout   time.Duration
	userAgent string
	logLevel  string
}

func newRootCmd() *cobra.Command {
	opts := &options{format: formatFlag(render.FormatText)}

	cmd := &cobra.Command{
		Use:   "pagescope [url]",
		Short: "pagescope: analyze a web page for design and SEO insights",
		Long: `pagescope fetches a single web page and reports its meta tags, heading
structure, images, links and content metrics.

With a URL argument the report is printed once. Without one, pagescope
prompts for URLs until you type 'quit'.

Examples:
  pagescope https://example.com
  pagescope https://example.com --format json
  pagescope https://example.com --format pdf --output_dir ./reports
  pagescope --content`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.Var(&opts.format, "format", "Output format: "+formatList())
	flags.StringVar(&opts.outputDir, "output_dir", "", "Write the report to this directory instead of stdout (pdf and xlsx default to the current directory)")
	flags.BoolVar(&opts.content, "content", false, "Include a Markdown excerpt of the page's main content")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout (default 10s, env PAGESCOPE_TIMEOUT)")
	flags.StringVar(&opts.userAgent, "user_agent", "", "User-Agent header sent with the request (env PAGESCOPE_USER_AGENT)")
	flags.StringVar(&opts.logLevel, "log_level", "", "Log level: DEBUG, INFO, WARN, ERROR (env PAGESCOPE_LOG_LEVEL)")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
