package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/sanonone/friendgraph/internal/config"
	"github.com/sanonone/friendgraph/pkg/friends"
)

// app carries the resolved configuration between the root command and its
// subcommands.
type app struct {
	configPath string
	cfg        config.Config
	logger     *slog.Logger
	out        io.Writer
	errOut     io.Writer
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{cfg: config.DefaultConfig(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "friendwalk",
		Short:         "Walk a friends directory breadth-first, starting from best friends",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.resolve(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			if !a.cfg.Metrics {
				return nil
			}
			return dumpMetrics(a.out)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringP("file", "f", "", "friends directory file (YAML or JSON)")
	pf.String("filter", a.cfg.Filter, "filter: all, male or female")
	pf.Int("max-depth", a.cfg.MaxDepth, "number of levels to walk, best friends included (negative = unbounded)")
	pf.String("format", a.cfg.Format, "output format: text or json")
	pf.String("log-level", a.cfg.LogLevel, "log level: debug, info, warn or error")
	pf.Bool("metrics", a.cfg.Metrics, "print traversal metrics after the run")

	root.AddCommand(newWalkCmd(a), newLevelsCmd(a), newStatsCmd(a))
	return root
}

// resolve loads the config file and lets explicitly set flags override it.
func (a *app) resolve(cmd *cobra.Command) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File, _ = flags.GetString("file")
	}
	if flags.Changed("filter") {
		cfg.Filter, _ = flags.GetString("filter")
	}
	if flags.Changed("max-depth") {
		cfg.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("metrics") {
		cfg.Metrics, _ = flags.GetBool("metrics")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, _ := config.ParseLogLevel(cfg.LogLevel)
	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
	return nil
}

func (a *app) loadDirectory() (*friends.Directory, error) {
	if a.cfg.File == "" {
		return nil, fmt.Errorf("no friends directory given (use --file)")
	}
	file, err := os.Open(a.cfg.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open friends directory: %w", err)
	}
	defer file.Close()

	dir, err := friends.LoadDirectory(file)
	if err != nil {
		return nil, err
	}
	a.logger.Info("directory loaded", "file", a.cfg.File, "records", dir.Len(), "seeds", len(dir.Best()))
	return dir, nil
}

func (a *app) iterator(dir *friends.Directory) (*friends.Iterator, error) {
	filter, err := friends.ParseFilter(a.cfg.Filter)
	if err != nil {
		return nil, err
	}
	if a.cfg.MaxDepth < 0 {
		return friends.NewIterator(dir, filter, friends.WithLogger(a.logger))
	}
	return friends.NewLimitedIterator(dir, filter, a.cfg.MaxDepth, friends.WithLogger(a.logger))
}

func dumpMetrics(w io.Writer) error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "friendgraph_") {
			continue
		}
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
