// Command argdown-cotgen is the thin CLI wrapper over pkg/cotgen: it
// owns configuration loading, logging, and input/output plumbing, none
// of which the core pipeline depends on (spec §1, §5).
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/debatelab/argdown-cotgen/pkg/cotgen"
	internallog "github.com/debatelab/argdown-cotgen/internal/log"
)

func main() {
	cfg := NewConfig()

	rootCmd := &cobra.Command{
		Use:           "argdown-cotgen [flags] <file.argdown>",
		Short:         "Reconstruct an Argdown snippet step by step as a chain-of-thought trace",
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(cfg, args)
		},
	}
	cfg.RegisterFlags(rootCmd.Flags())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cfg *Config, args []string) error {
	handler, err := internallog.CreateHandlerWithStrings(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logger := slog.New(handler).With("run_id", uuid.NewString())

	input, err := readInput(args)
	if err != nil {
		return err
	}

	start := time.Now()
	logger.Info("generating reconstruction trace",
		"pipe_type", cfg.PipeType, "input_bytes", len(input), "p_abort", cfg.PAbort)

	out, err := cotgen.Generate(input, cfg.ToCotgenConfig())
	if err != nil {
		logger.Error("generation failed", "error", err)
		return err
	}

	logger.Info("generated reconstruction trace", "elapsed", time.Since(start))

	return writeOutput(cfg.Output, out)
}

func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeOutput(path, content string) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.WriteString(content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
