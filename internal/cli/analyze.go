package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	analyzeTimeout time.Duration
	analyzeOut     string
	noCache        bool
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract and verify claims from a text file",
	Long: `Analyze reads text from a file (or stdin with "-") and:
- Extracts candidate claims: dates, quantities, entities, statements
- Resolves overlapping candidates, keeping the strongest span
- Verifies each claim against the source catalog
- Prints the full report as JSON

Example:
  claimscope analyze article.txt
  cat article.txt | claimscope analyze -
  claimscope analyze article.txt --json report.json`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "timeout", 60*time.Second, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&analyzeOut, "json", "", "write report to file instead of stdout")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the verification result cache")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	text, err := readInput(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), analyzeTimeout)
	defer cancel()

	p := pipeline.NewPipeline(cfg, logger)
	report, err := p.Analyze(ctx, string(text))
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if analyzeOut != "" {
		if err := os.WriteFile(analyzeOut, data, 0644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Report written to %s\n", analyzeOut)
		}
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// readInput loads the file argument, with "-" meaning stdin
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
