package usc

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/usc/usil"
)

// Job is one conversion in a batch.
type Job struct {
	// Name identifies the job in results and logs.
	Name string

	// Open returns the payload stream. It is called from the worker that
	// runs the job and the stream is closed afterwards.
	Open func() (io.ReadCloser, error)

	Request Request
}

// Result is the outcome of one Job.
type Result struct {
	Job       Job
	SessionID string
	Program   *usil.Program
	Err       error
}

// ConvertBatch converts jobs on up to opts.Parallelism goroutines, each
// with its own session. Results are in job order. A failing job only sets
// its own Result.Err; jobs not started before ctx is done get ctx.Err().
// The returned error is non-nil only when ctx ended the batch early.
func ConvertBatch(ctx context.Context, jobs []Job, opts Options) ([]Result, error) {
	opts = opts.withDefaults()
	log := opts.logger()

	results := make([]Result, len(jobs))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i, job := range jobs {
		results[i].Job = job
		if gCtx.Err() != nil {
			results[i].Err = gCtx.Err()
			continue
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				results[i].Err = err
				return nil
			}
			p, id, err := runJob(job, opts)
			results[i].SessionID = id
			results[i].Program = p
			results[i].Err = err
			if err != nil {
				log.Warn("batch job failed", slog.String("job", job.Name), slog.Any("error", err))
			} else {
				log.Debug("batch job converted", slog.String("job", job.Name),
					slog.String("session", id), slog.Int("instructions", p.Len()))
			}
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}

func runJob(job Job, opts Options) (*usil.Program, string, error) {
	if job.Open == nil {
		return nil, "", fmt.Errorf("job %s: no payload source", job.Name)
	}
	rc, err := job.Open()
	if err != nil {
		return nil, "", fmt.Errorf("job %s: open: %w", job.Name, err)
	}
	defer rc.Close()
	p, id, err := convert(rc, job.Request, opts)
	if err != nil {
		return nil, id, fmt.Errorf("job %s: %w", job.Name, err)
	}
	return p, id, nil
}
