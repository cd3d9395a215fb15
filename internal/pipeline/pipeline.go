// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seqguard/internal/fastq"
	"seqguard/internal/qc"
	"seqguard/internal/rules"
	"seqguard/internal/runutil"
)

// Mode selects the execution strategy.
type Mode string

const (
	ModeBatch  Mode = "batch"
	ModeStream Mode = "stream"
)

// ParseMode accepts "batch" or "stream"; "" means batch.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeBatch:
		return ModeBatch, nil
	case ModeStream:
		return ModeStream, nil
	}
	return "", fmt.Errorf("invalid mode %q (want %s|%s)", s, ModeBatch, ModeStream)
}

// Config controls a validation run.
type Config struct {
	Threads int  // number of worker goroutines (>=1), batch mode only
	Mode    Mode // batch | stream
}

// errStop ends a streaming run at the first failing record.
var errStop = errors.New("stop at first failing record")

// Run validates every record of r with agg and returns agg's result.
// Structural and IO errors are recorded on agg and also returned; record-level
// failures only show up in Result.Pass. Context cancellation is returned as-is.
func Run(ctx context.Context, cfg Config, r io.Reader, agg *qc.Aggregator, log *zap.Logger) (qc.Result, error) {
	if log == nil {
		log = zap.NewNop()
	}
	start := time.Now()

	var err error
	switch cfg.Mode {
	case ModeStream:
		err = runStream(ctx, r, agg)
	case ModeBatch, "":
		err = runBatch(ctx, cfg.Threads, r, agg, log)
	default:
		err = fmt.Errorf("pipeline: unknown mode %q", cfg.Mode)
	}
	if err != nil && fastq.IsFatal(err) {
		agg.Fail(err)
	}

	res := agg.Result()
	log.Debug("validation finished",
		zap.String("mode", string(cfg.Mode)),
		zap.String("records", humanize.Comma(int64(res.Records))),
		zap.String("failed", humanize.Comma(int64(res.Failed))),
		zap.String("bases", humanize.Comma(res.Bases)),
		zap.Bool("pass", res.Pass),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, err
}

func runStream(ctx context.Context, r io.Reader, agg *qc.Aggregator) error {
	local := rules.Tally{}
	defer agg.Merge(local)

	err := fastq.Stream(ctx, r, func(index int, rec fastq.Record) error {
		if !agg.Evaluate(index, rec, local) {
			return errStop
		}
		return nil
	})
	if errors.Is(err, errStop) {
		return nil
	}
	return err
}

func runBatch(ctx context.Context, threads int, r io.Reader, agg *qc.Aggregator, log *zap.Logger) error {
	recs, err := fastq.ReadAll(ctx, r)
	if err != nil {
		return err
	}
	threads = runutil.ClampThreads(threads, len(recs))
	log.Debug("records loaded",
		zap.String("records", humanize.Comma(int64(len(recs)))),
		zap.Int("threads", threads),
	)

	jobs := make(chan int, threads*2)
	locals := make([]rules.Tally, threads)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < threads; w++ {
		local := rules.Tally{}
		locals[w] = local
		g.Go(func() error {
			for i := range jobs {
				agg.Evaluate(i+1, recs[i], local)
			}
			return nil
		})
	}

	// Feed work
	var feedErr error
feed:
	for i := range recs {
		select {
		case <-gctx.Done():
			feedErr = ctx.Err()
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	if err := g.Wait(); err != nil {
		return err
	}

	for _, local := range locals {
		agg.Merge(local)
	}
	return feedErr
}
