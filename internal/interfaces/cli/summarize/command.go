package summarize

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"blogsummarizer/internal/application/summary/dto"
	"blogsummarizer/internal/application/summary/usecases"
	"blogsummarizer/internal/infrastructure/config"
	httpRouter "blogsummarizer/internal/interfaces/http"
	"blogsummarizer/internal/shared/constants"
	"blogsummarizer/internal/shared/logger"
	"blogsummarizer/internal/shared/utils"
)

var (
	env        string
	configPath string
	url        string
	text       string
)

type summarizeUseCase interface {
	Execute(ctx context.Context, cmd usecases.SummarizeCommand) (*usecases.SummarizeResult, error)
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "summarize",
		Short:        "Summarize one blog post and print the result",
		Long:         `Run the summarize pipeline once against the configured stores and print the JSON response.`,
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().StringVar(&url, "url", "", "Blog post URL to fetch")
	cmd.Flags().StringVar(&text, "text", "", "Blog text to summarize; takes precedence over --url")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the JSON result; logs go to stderr.
	cfg.Logger.OutputPath = "stderr"
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	container, err := httpRouter.NewContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := container.Shutdown(context.Background()); err != nil {
			log.Errorw("failed to release store clients", "error", err)
		}
	}()

	return summarizeOnce(ctx, container.SummarizeUseCase(), dto.SummarizeRequest{URL: url, Text: text}, cmd.OutOrStdout())
}

// summarizeOnce writes the same JSON body the HTTP endpoint would return and
// returns the pipeline error, if any, so the process exits non-zero.
func summarizeOnce(ctx context.Context, uc summarizeUseCase, req dto.SummarizeRequest, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := utils.ValidateStruct(req); err != nil {
		_, body := utils.NewErrorBody(err)
		_ = enc.Encode(body)
		return err
	}

	result, err := uc.Execute(ctx, usecases.SummarizeCommand{URL: req.URL, Text: req.Text})
	if err != nil {
		_, body := utils.NewErrorBody(err)
		_ = enc.Encode(body)
		return err
	}

	return enc.Encode(dto.SummarizeResponse{
		Success:           true,
		Summary:           result.Summary,
		SummaryTranslated: result.SummaryTranslated,
		RecordID:          result.RecordID,
		Warnings:          result.Warnings,
	})
}
