// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"runtime"

	"aptclust-core/cluster"
	"aptclust-core/record"
	"aptclust/internal/cli"
	"aptclust/internal/progress"
	"aptclust/internal/version"
	"aptclust/internal/writers"
	"aptclust/internal/xio"
)

// Exit codes follow the usual convention: 0 success (including zero
// clusters and broken pipe), 2 configuration/usage error, 3 runtime error,
// 130 interrupted.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("aptclust")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "aptclust version %s\n", version.Version)
		return 0
	}

	in, err := xio.Open(opts.Input)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}
	entries, err := record.Parse(in, opts.Filter)
	if cerr := in.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	out, err := xio.Create(opts.Output)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 3
	}

	thr := opts.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	eng := cluster.New(cluster.Config{
		Threshold:   opts.Distance,
		MaxClusters: opts.MaxClusters,
		Threads:     thr,
	}, entries)
	rep := progress.New(stderr, len(entries), !opts.Quiet)

	inCh, errCh := writers.Start(out, opts.Format, thr*4)

	interrupted := false
	for {
		if parent.Err() != nil {
			interrupted = true
			break
		}
		c, ok := eng.Step()
		if !ok {
			break
		}
		inCh <- *c
		rep.Cluster(c)
	}
	close(inCh)

	werr := <-errCh
	if cerr := out.Close(); werr == nil {
		werr = cerr
	}
	if writers.IsBrokenPipe(werr) {
		return 0
	}
	if werr != nil {
		fmt.Fprintln(stderr, werr)
		return 3
	}
	if interrupted {
		return 130
	}

	rep.Finish(eng.Remaining())
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
