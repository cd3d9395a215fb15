// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seqguard/internal/cli"
	"seqguard/internal/config"
	"seqguard/internal/fastq"
	"seqguard/internal/logging"
	"seqguard/internal/pipeline"
	"seqguard/internal/qc"
	"seqguard/internal/report"
	"seqguard/internal/runutil"
	"seqguard/internal/writers"
)

// Exit codes other than the configurable QC failure code.
const (
	ExitPass        = 0
	ExitUsage       = 2
	ExitWrite       = 3
	ExitInterrupted = 130
)

// RunContext parses argv, validates the input and writes the report to
// stdout. Diagnostics and logs go to stderr. It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts cli.Options
	code := ExitPass

	cmd := cli.NewCommand("seqguard", &opts, func(cmd *cobra.Command) error {
		cfg, err := config.Load(opts.ConfigFile)
		if err != nil {
			return err
		}
		opts.Apply(cmd.Flags(), cfg)
		if err := cfg.Validate(); err != nil {
			return err
		}
		log, err := logging.New(cfg.LogLevel, stderr)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		code = validate(cmd.Context(), cfg, opts.Input, stdout, stderr, log)
		return nil
	})
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(parent); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
		return ExitUsage
	}
	return code
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func validate(ctx context.Context, cfg *config.Config, input string, stdout, stderr io.Writer, log *zap.Logger) int {
	// cfg.Validate already accepted both.
	params, _ := cfg.Params()
	mode, _ := pipeline.ParseMode(cfg.Mode)

	threads := runutil.EffectiveThreads(cfg.Threads)
	log = log.With(zap.String("run", uuid.NewString()), zap.String("input", input))
	log.Info("validation started", zap.String("mode", string(mode)), zap.Int("threads", threads))

	agg := qc.New(params, qc.NewWriterSink(stderr))
	res, runErr := run(ctx, pipeline.Config{Threads: threads, Mode: mode}, input, agg, log)
	if runErr != nil && !fastq.IsFatal(runErr) {
		// interrupted or internal failure: never a PASS, no histogram
		res.Pass = false
		res.Fatal = runErr
	}

	outw := bufio.NewWriter(stdout)
	werr := writers.Write(cfg.Output, outw, report.Summary{Input: input, Result: res, Params: agg.Params()})
	if werr == nil {
		werr = outw.Flush()
	}
	if werr != nil && !writers.IsBrokenPipe(werr) {
		_, _ = fmt.Fprintln(stderr, werr)
		return ExitWrite
	}

	switch {
	case errors.Is(runErr, context.Canceled):
		return ExitInterrupted
	case res.Pass:
		return ExitPass
	}
	return cfg.FailExitCode
}

func run(ctx context.Context, pcfg pipeline.Config, input string, agg *qc.Aggregator, log *zap.Logger) (qc.Result, error) {
	rc, err := fastq.Open(input)
	if err != nil {
		agg.Fail(err)
		log.Debug("open failed", zap.Error(err))
		return agg.Result(), err
	}
	defer func() { _ = rc.Close() }()
	return pipeline.Run(ctx, pcfg, rc, agg, log)
}
