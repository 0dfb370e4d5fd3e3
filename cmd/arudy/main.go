// Command arudy analyzes a line of classical Arabic poetry from the command
// line: which meter it conforms to, and how each realized foot departs from
// its canonical form.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/omars-kassem/arudy"
)

var logLevel string

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "arudy [verse]",
		Short: "Identify the classical meter of an Arabic verse",
		Long: "arudy rewrites an Arabic verse into scansion-ready form, matches it " +
			"against a corpus of canonical meters, and aligns each matched meter's " +
			"feet against the verse's realized feet.",
		Args: cobra.ExactArgs(1),
		RunE: runAnalyze,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "debug, info, warn, or error")
	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", logLevel, err)
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	sys, err := arudy.Load(log)
	if err != nil {
		log.Fatal().Err(err).Msg("reference table load failed")
	}

	verseText := args[0]
	result := sys.Matcher.Analyze(verseText)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "rewritten: %s\n", result.Rewritten)
	if len(result.Matches) == 0 {
		fmt.Fprintln(out, "no matching meter")
		return nil
	}

	seen := make(map[string]bool, len(result.Matches))
	for _, m := range result.Matches {
		if seen[m.Name] {
			continue
		}
		seen[m.Name] = true
		alignment := sys.Align(m.Name, m.Line)
		fmt.Fprintf(out, "\n%s\n", alignment.Summary(m.Name))
		fmt.Fprintf(out, "  %s\n", alignment.Header)
		for _, pair := range alignment.Pairs {
			fmt.Fprintf(out, "  %-16s -> %-16s (%s)\n", pair.CanonicalFoot, pair.RealizedFoot, pair.Annotation)
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
