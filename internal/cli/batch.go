package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple texts from a file in parallel",
	Long: `Batch processes multiple texts concurrently:
- Read texts from the input file (one per line, blank lines skipped)
- Analyze lines in parallel with a configurable worker count
- Write one JSON report per line into the output directory

Example:
  claimscope batch statements.txt
  claimscope batch statements.txt --concurrency 10 --output-dir ./reports
  claimscope batch statements.txt --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./claimscope-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
}

// batchJob analyzes one input line
type batchJob struct {
	ctx      context.Context
	line     int
	text     string
	pipeline *pipeline.Pipeline
}

type batchResult struct {
	line   int
	report *model.AnalysisReport
	err    error
}

func (r *batchResult) GetError() error { return r.err }

func (j *batchJob) Execute(context.Context) worker.Result {
	report, err := j.pipeline.Analyze(j.ctx, j.text)
	return &batchResult{line: j.line, report: report, err: err}
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	lines, err := readLines(file)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		return fmt.Errorf("no input lines in %s", file)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Processing %d texts with %d workers...\n", len(lines), concurrency)

	p := pipeline.NewPipeline(cfg, logger)

	pool := worker.NewPool(concurrency)
	pool.Start()
	defer pool.Shutdown()

	go func() {
		for i, line := range lines {
			pool.Submit(&batchJob{ctx: ctx, line: i, text: line, pipeline: p})
		}
		pool.Done()
	}()

	successCount := 0
	failureCount := 0

	for result := range pool.Results() {
		r, ok := result.(*batchResult)
		if !ok {
			continue
		}

		if r.err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ line %d: %v\n", r.line+1, r.err)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("report-%04d.json", r.line+1))
		data, err := json.MarshalIndent(r.report, "", "  ")
		if err == nil {
			err = os.WriteFile(path, data, 0644)
		}
		if err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ line %d: write report: %v\n", r.line+1, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ line %d: %d claims\n", r.line+1, r.report.TotalClaims)
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d texts\n", len(lines))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d texts failed", failureCount, len(lines))
	}
	return nil
}

// readLines reads non-blank lines from the input file
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
