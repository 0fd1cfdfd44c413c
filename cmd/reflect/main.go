package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/mdayat/daily-reflection-backend-service/configs"
	"github.com/mdayat/daily-reflection-backend-service/internal/generation"
	"github.com/mdayat/daily-reflection-backend-service/internal/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Send()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var date string
	var envFiles []string

	cmd := &cobra.Command{
		Use:           "reflect",
		Short:         "Generate the daily reflection for a date and print it as JSON",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := configs.LoadEnv(envFiles...)
			if err != nil {
				return err
			}

			generator, err := generation.New(cmd.Context(), env)
			if err != nil {
				if errors.Is(err, configs.ErrUnconfigured) {
					return fmt.Errorf("%w: set one of %v", err, configs.CredentialSources)
				}
				return err
			}

			service := services.NewReflectionService(configs.NewConfigs(env), generator)
			return run(cmd.Context(), cmd.OutOrStdout(), service, date)
		},
	}

	cmd.Flags().StringVar(&date, "date", time.Now().Format(time.DateOnly), "date to generate the reflection for")
	cmd.Flags().StringSliceVar(&envFiles, "env", nil, "dotenv files to load (default .env)")

	return cmd
}

func run(ctx context.Context, out io.Writer, service services.ReflectionServicer, date string) error {
	reflection, err := service.GenerateReflection(ctx, date)
	if err != nil {
		return fmt.Errorf("failed to generate reflection for %s: %w", date, err)
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, reflection, "", "  "); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, buf.String())
	return err
}
