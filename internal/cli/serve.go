package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/rewrite"
	"github.com/claimscope/claimscope/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr       string
	rewriteProvider string
	rewriteModel    string
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the analysis pipeline over HTTP:
- POST /extract-claims and /analyze run extraction and verification
- POST /verify-claim/{id} re-verifies a single claim
- POST /rewrite-comment rewrites a comment into a requested tone
- GET /sources lists the verification source catalog
- GET /health reports service status

Example:
  claimscope serve
  claimscope serve --addr :9000
  claimscope serve --rewrite-provider openai --rewrite-model gpt-4o-mini`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&rewriteProvider, "rewrite-provider", "", "rewrite provider (openai; empty disables rewriting)")
	serveCmd.Flags().StringVar(&rewriteModel, "rewrite-model", "", "rewrite model name")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if rewriteProvider != "" {
		cfg.Rewrite.Provider = rewriteProvider
	}
	if rewriteModel != "" {
		cfg.Rewrite.Model = rewriteModel
	}
	if cfg.Rewrite.Provider == "openai" && cfg.Rewrite.APIKey == "" {
		cfg.Rewrite.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.Rewrite.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	logger, err := buildLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	rewriter, err := rewrite.NewRewriter(rewrite.ConfigFromModel(cfg.Rewrite))
	if err != nil {
		return fmt.Errorf("configure rewriter: %w", err)
	}

	p := pipeline.NewPipeline(cfg, logger)
	srv := server.New(cfg, p, rewriter, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting claimscope",
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("rewriting", rewriter.Enabled()))

	return srv.Run(ctx)
}
