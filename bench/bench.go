// Package bench stresses the list package from several goroutines, each one
// working on its own lists.
package bench

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"github.com/percona/fwdlist/errors"
	"github.com/percona/fwdlist/list"
	"github.com/percona/fwdlist/log"
	"github.com/percona/fwdlist/metrics"
)

// checkEvery is how many elements a worker handles between context checks.
const checkEvery = 4096

// Options configure a bench run.
type Options struct {
	// Size is the number of elements of each worker's list.
	Size int
	// Workers is the number of concurrent workers.
	Workers int
}

// Stats describe a finished bench run.
type Stats struct {
	Workers int
	Nodes   int64
	Elapsed time.Duration
}

func (s Stats) String() string {
	rate := float64(0)
	if s.Elapsed > 0 {
		rate = float64(s.Nodes) / s.Elapsed.Seconds()
	}

	return fmt.Sprintf("%s nodes by %d workers in %s (%s nodes/s)",
		humanize.Comma(s.Nodes), s.Workers, s.Elapsed.Round(time.Microsecond),
		humanize.Comma(int64(rate)))
}

// Run starts opts.Workers workers. Every worker builds a list of opts.Size
// elements, copies it, reverses the copy into a third list and checks the
// equality and ordering relations between them.
func Run(ctx context.Context, opts Options) (Stats, error) {
	if opts.Workers < 1 {
		return Stats{}, errors.Errorf("workers must be at least 1, got %d", opts.Workers)
	}
	if opts.Size < 0 {
		return Stats{}, errors.Errorf("negative size %d", opts.Size)
	}

	ctx = log.WithAttrs(ctx, log.Scope("bench"))
	log.Infof(ctx, "starting %d workers, %s elements each", opts.Workers, humanize.Comma(int64(opts.Size)))

	var nodes atomic.Int64

	startedAt := time.Now()

	grp, grpCtx := errgroup.WithContext(ctx)
	for id := range opts.Workers {
		grp.Go(func() error {
			n, err := work(grpCtx, opts.Size)
			nodes.Add(n)
			if err != nil {
				return errors.Wrapf(err, "worker %d", id)
			}

			return nil
		})
	}

	err := grp.Wait()

	stats := Stats{
		Workers: opts.Workers,
		Nodes:   nodes.Load(),
		Elapsed: time.Since(startedAt),
	}

	metrics.AddBenchNodes(int(stats.Nodes))
	metrics.SetBenchDuration(stats.Elapsed)

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn(ctx, "stopped early after "+humanize.Comma(stats.Nodes)+" nodes: "+err.Error())
		}

		return stats, err //nolint:wrapcheck
	}

	log.Info(ctx, stats.String())

	return stats, nil
}

// work runs one worker and returns the number of nodes it allocated.
func work(ctx context.Context, size int) (int64, error) {
	var allocated int64

	src := list.New[int]()
	defer src.Clear()

	for i := range size {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return allocated, err //nolint:wrapcheck
			}
		}

		src.PushFront(i)
		allocated++
	}

	dup := src.Clone()
	defer dup.Clear()
	allocated += int64(dup.Len())

	if !list.Equal(src, dup) {
		return allocated, errors.New("copy differs from source")
	}

	// popping a copy into rev reverses it: rev holds 0..size-1 ascending
	rev := list.New[int]()
	defer rev.Clear()

	for i := 0; !dup.IsEmpty(); i++ {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return allocated, err //nolint:wrapcheck
			}
		}

		rev.PushFront(dup.PopFront())
		allocated++
	}

	if rev.Len() != src.Len() {
		return allocated, errors.Errorf("reversed length %d, want %d", rev.Len(), src.Len())
	}

	if size > 1 {
		// src is descending, so it sorts after its ascending reversal
		if !list.Less(rev, src) || !list.Greater(src, rev) || list.Equal(src, rev) {
			return allocated, errors.New("ordering of reversed list is inconsistent")
		}
	}

	dup.Assign(rev)
	allocated += int64(dup.Len())

	if list.Compare(dup, rev) != 0 {
		return allocated, errors.New("assigned list differs from source")
	}

	return allocated, nil
}
