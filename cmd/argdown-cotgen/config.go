package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/debatelab/argdown-cotgen/pkg/cotgen"
)

// Config holds CLI flag values for one invocation. It owns configuration
// loading the way magicschema.Config does: a flat struct with a
// RegisterFlags method wired into a cobra command, not a file loader.
type Config struct {
	PipeType     string
	PAbort       float64
	Seed         uint64
	AbortionPool []string
	Output       string

	LogLevel  string
	LogFormat string
}

// NewConfig returns a Config with the documented defaults (spec §6).
func NewConfig() *Config {
	return &Config{
		PipeType:  "map.by_rank",
		PAbort:    0.0,
		LogLevel:  "info",
		LogFormat: "logfmt",
	}
}

// RegisterFlags adds this invocation's flags to flags.
func (c *Config) RegisterFlags(flags *pflag.FlagSet) {
	flags.StringVar(&c.PipeType, "pipe-type", c.PipeType,
		fmt.Sprintf("reconstruction strategy, one of: %s", strings.Join(cotgen.KnownPipeTypes(), ", ")))
	flags.Float64Var(&c.PAbort, "p-abort", c.PAbort, "probability of injecting an abortion artifact into a non-first step")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the pseudorandom generator used by abortion and random_diffusion (0 is used as a seed like any other value)")
	flags.StringSliceVar(&c.AbortionPool, "abortion-pool", c.AbortionPool, "candidate abortion comment sentences (default: built-in pool)")
	flags.StringVarP(&c.Output, "output", "o", "-", "output file, or - for stdout")

	flags.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level, one of: debug, info, warn, error")
	flags.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format, one of: json, logfmt")
}

// ToCotgenConfig builds the pipeline's Config from the CLI's flag values.
func (c *Config) ToCotgenConfig() cotgen.Config {
	return cotgen.Config{
		PipeType:     c.PipeType,
		PAbort:       c.PAbort,
		Seed:         c.Seed,
		AbortionPool: c.AbortionPool,
	}
}
