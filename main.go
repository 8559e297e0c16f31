package main

import (
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/percona/fwdlist/bench"
	"github.com/percona/fwdlist/config"
	"github.com/percona/fwdlist/errors"
	"github.com/percona/fwdlist/list"
	"github.com/percona/fwdlist/log"
	"github.com/percona/fwdlist/metrics"
	"github.com/percona/fwdlist/scenario"
	"github.com/percona/fwdlist/util"
)

func main() {
	log.InitGlobals(zerolog.InfoLevel, false, true)

	err := newRootCmd(os.Stdout).Execute()
	if err != nil {
		zerolog.Ctx(context.Background()).Fatal().Err(err).Msg("")
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	var (
		cfg *config.Config
		reg *prometheus.Registry
	)

	rootCmd := &cobra.Command{
		Use:   "fwdlist",
		Short: "Forward list scenario runner and stress tool",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error

			cfg, err = config.Load(cmd.Flags())
			if err != nil {
				return errors.Wrap(err, "config")
			}

			lg := log.InitGlobals(cfg.LogLevel, cfg.LogJSON, cfg.NoColor)
			cmd.SetContext(lg.WithContext(cmd.Context()))

			if cfg.Metrics {
				reg = prometheus.NewRegistry()
				metrics.Init(reg)
			}

			return nil
		},
	}

	// withMetrics dumps the collected metrics after run, also when it fails.
	withMetrics := func(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			err := run(cmd, args)
			if reg != nil {
				err = errors.Join(err, metrics.Dump(cmd.ErrOrStderr(), reg))
			}

			return err
		}
	}

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	rootCmd.SetOut(out)

	config.AddFlags(rootCmd.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Replay scenario files",
		Args:  cobra.MinimumNArgs(1),
		RunE: withMetrics(func(cmd *cobra.Command, args []string) error {
			return util.CtxWithTimeout(cmd.Context(), cfg.Timeout, func(ctx context.Context) error {
				return runScenarios(ctx, cmd.OutOrStdout(), args)
			})
		}),
	}

	compareCmd := &cobra.Command{
		Use:   "compare A B",
		Short: "Compare two comma-separated integer lists",
		Args:  cobra.ExactArgs(2),
		RunE: withMetrics(func(cmd *cobra.Command, args []string) error {
			return compareLists(cmd.OutOrStdout(), args[0], args[1])
		}),
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "Stress lists from concurrent workers",
		RunE: withMetrics(func(cmd *cobra.Command, _ []string) error {
			return util.CtxWithTimeout(cmd.Context(), cfg.Timeout, func(ctx context.Context) error {
				stats, err := bench.Run(ctx, bench.Options{
					Size:    cfg.BenchSize,
					Workers: cfg.BenchWorkers,
				})
				if err != nil {
					return errors.Wrap(err, "bench")
				}

				fmt.Fprintln(cmd.OutOrStdout(), stats)
				return nil
			})
		}),
	}

	config.AddBenchFlags(benchCmd.Flags())

	rootCmd.AddCommand(runCmd, compareCmd, benchCmd)

	return rootCmd
}

// runScenarios runs every file concurrently and prints the results in argument
// order. All scenarios run to completion; their errors are joined.
func runScenarios(ctx context.Context, out io.Writer, paths []string) error {
	results := make([]*scenario.Result, len(paths))
	errs := make([]error, len(paths))

	var grp errgroup.Group
	for i, path := range paths {
		grp.Go(func() error {
			s, err := scenario.Load(path)
			if err != nil {
				errs[i] = err
				return nil
			}

			results[i], errs[i] = s.Run(ctx)
			if errs[i] != nil {
				errs[i] = errors.Wrap(errs[i], s.Name)
			}

			return nil
		})
	}
	_ = grp.Wait()

	for i, res := range results {
		if res == nil {
			continue
		}

		status := "ok"
		if errs[i] != nil {
			status = "failed"
		}
		fmt.Fprintf(out, "%s: %d/%d steps %s\n", res.Name, res.Steps, res.Total, status)

		for _, name := range slices.Sorted(maps.Keys(res.Lists)) {
			fmt.Fprintf(out, "  %s = %s\n", name, list.New(res.Lists[name]...))
		}
	}

	return errors.Join(errs...)
}

func compareLists(out io.Writer, rawA, rawB string) error {
	a, err := parseList(rawA)
	if err != nil {
		return errors.Wrap(err, "first list")
	}

	b, err := parseList(rawB)
	if err != nil {
		return errors.Wrap(err, "second list")
	}

	fmt.Fprintf(out, "%s vs %s\n", a, b)
	fmt.Fprintf(out, "==: %t  !=: %t  <: %t  <=: %t  >: %t  >=: %t\n",
		list.Equal(a, b), !list.Equal(a, b),
		list.Less(a, b), list.LessOrEqual(a, b),
		list.Greater(a, b), list.GreaterOrEqual(a, b))
	fmt.Fprintf(out, "compare: %d\n", list.Compare(a, b))

	return nil
}

// parseList parses "1,2,3" into a list. An empty string is an empty list.
func parseList(s string) (*list.List[int], error) {
	l := list.New[int]()
	if strings.TrimSpace(s) == "" {
		return l, nil
	}

	last := l.BeforeBegin()
	for _, field := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return nil, errors.Wrapf(err, "parse %q", field)
		}

		last = l.InsertAfter(last, v)
	}

	return l, nil
}
