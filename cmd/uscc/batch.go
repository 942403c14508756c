package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/usc"
)

type batchOptions struct {
	requestFlags
	Parallelism int
}

func newBatchCommand(root *rootOptions) *cobra.Command {
	opts := &batchOptions{}

	cmd := &cobra.Command{
		Use:   "batch <dir>",
		Short: "Convert every payload under a directory in parallel",
		Long: `Convert every regular file under a directory with the same request
flags, one session per file. Failures are reported per file; the command
fails if any file failed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(cmd.Context(), root, opts, args[0], cmd.OutOrStdout())
		},
	}
	opts.register(cmd)
	cmd.Flags().IntVarP(&opts.Parallelism, "parallelism", "j", 0, "concurrent sessions (default from config)")

	return cmd
}

func runBatch(ctx context.Context, root *rootOptions, opts *batchOptions, dir string, out io.Writer) error {
	req, err := opts.request(root.config)
	if err != nil {
		return err
	}

	var jobs []usc.Job
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.Type().IsRegular() {
			return err
		}
		name, _ := filepath.Rel(dir, path)
		jobs = append(jobs, usc.Job{
			Name:    filepath.ToSlash(name),
			Open:    func() (io.ReadCloser, error) { return os.Open(path) },
			Request: req,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	convOpts := root.opts
	if opts.Parallelism > 0 {
		convOpts.Parallelism = opts.Parallelism
	}
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := usc.ConvertBatch(ctx, jobs, convOpts)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "FAIL %s: %v\n", r.Job.Name, r.Err)
			continue
		}
		fmt.Fprintf(out, "ok   %s: %s, %d instructions\n", r.Job.Name, r.Program.Stage, r.Program.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d payloads failed", failed, len(results))
	}
	return nil
}
