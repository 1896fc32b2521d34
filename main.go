package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"rbf.dev/frontend_testing_user/config"
	"rbf.dev/frontend_testing_user/frontendtesting"
	"rbf.dev/frontend_testing_user/report"
)

const (
	defaultLanguage = "en_US"
	withVendorToken = "with-vendor"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr, os.Environ())

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer, environ []string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-test-user [language] [" + withVendorToken + "]",
		Short: "Create a test user through the frontend testing API",
		Args:  cobra.ArbitraryArgs,
		// Every token is positional, so "with-vendor" may appear anywhere.
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), stdout, stderr, environ, args)
			if err != nil {
				fmt.Fprintln(stderr, "✗ Failed to create test user:", err)
			}
			return err
		},
	}

	cmd.SetOut(stderr)
	cmd.SetErr(stderr)

	return cmd
}

func parseArgs(args []string) (language string, includeVendor bool) {
	language = defaultLanguage
	if len(args) > 0 && args[0] != "" {
		language = args[0]
	}

	for _, arg := range args {
		if arg == withVendorToken {
			includeVendor = true
			break
		}
	}

	return language, includeVendor
}

func run(ctx context.Context, stdout, stderr io.Writer, environ []string, args []string) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Parse(environ)
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		Level(cfg.Level()).
		With().
		Timestamp().
		Logger()

	language, includeVendor := parseArgs(args)

	logger.Debug().
		Str("baseURL", cfg.BaseURL).
		Str("language", language).
		Bool("includeVendor", includeVendor).
		Msg("Parsed invocation")

	stats := &report.RunStats{
		Language:      language,
		IncludeVendor: includeVendor,
	}

	if cfg.MetricsTextfile != "" {
		defer func() {
			stats.Finished = time.Now()
			stats.Err = err
			if err := report.WriteTextfile(cfg.MetricsTextfile, stats); err != nil {
				logger.Warn().Err(err).Str("path", cfg.MetricsTextfile).Msg("Unable to write run metrics")
			}
		}()
	}

	result, err := createTestUser(ctx, stderr, logger, cfg, stats)
	if err != nil {
		return err
	}

	return report.Print(stdout, stderr, result)
}

func createTestUser(
	ctx context.Context,
	stderr io.Writer,
	logger zerolog.Logger,
	cfg *config.Config,
	stats *report.RunStats,
) (*report.Result, error) {
	fmt.Fprintf(stderr, "Creating test user (language: %v)...\n", stats.Language)

	client := frontendtesting.NewClient(cfg.BaseURL, nil, logger)
	request := frontendtesting.NewRequest(stats.Language, stats.IncludeVendor)

	start := time.Now()
	response, err := client.CreateFixtures(ctx, request)
	stats.Duration = time.Since(start)

	if err != nil {
		var apiErr *frontendtesting.APIError
		if errors.As(err, &apiErr) {
			stats.StatusCode = apiErr.StatusCode
		}
		return nil, err
	}

	stats.StatusCode = response.StatusCode

	return report.FromResponse(response, stats.Language, stats.IncludeVendor)
}
