package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/config"
	"github.com/fwojciec/mdview/fetch"
	"github.com/fwojciec/mdview/fs"
	"github.com/fwojciec/mdview/goldmark"
	"github.com/fwojciec/mdview/logging"
	mdprom "github.com/fwojciec/mdview/prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"
)

// app holds the state shared by all subcommands after the root pre-run.
type app struct {
	configPath string
	logLevel   string
	metrics    bool

	cfg      config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	observer mdview.Observer
}

func newRootCmd() *cobra.Command {
	a := &app{
		logger:   logging.NewNop(),
		observer: mdview.NopObserver{},
	}
	cmd := &cobra.Command{
		Use:           "mdview",
		Short:         "mdview renders Markdown documents fetched from a web origin",
		Long:          `mdview fetches a Markdown document relative to a page URL, parses it as CommonMark and renders it into an HTML host page or the terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !a.metrics || a.registry == nil {
				return nil
			}
			return dumpMetrics(cmd.ErrOrStderr(), a.registry)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultFile, "Path to the config file")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&a.metrics, "metrics", false, "Write timing metrics to stderr on exit")

	cmd.AddCommand(
		newRenderCmd(a),
		newCatCmd(a),
		newViewCmd(a),
		newLsCmd(a),
		newVersionCmd(),
	)
	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	a.logger = logging.NewWithWriter(cmd.ErrOrStderr(), logging.ParseLevel(cfg.LogLevel))
	a.registry = prometheus.NewRegistry()
	promObserver, err := mdprom.New(a.registry)
	if err != nil {
		return err
	}
	a.observer = mdview.MultiObserver{promObserver, logging.NewObserver(a.logger)}
	return nil
}

// baseURL returns the flag value when set, else the configured one.
func (a *app) baseURL(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if a.cfg.BaseURL != "" {
		return a.cfg.BaseURL, nil
	}
	return "", fmt.Errorf("no base URL: pass --base or set base_url in %s", config.DefaultFile)
}

// source selects where documents come from: a local directory when dir is
// set, else the web origin of the base URL.
type source struct {
	base string
	dir  string
}

func (s *source) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.base, "base", "", "URL of the host page; documents resolve against it")
	cmd.Flags().StringVar(&s.dir, "dir", "", "Serve documents from a local directory instead of --base")
}

func (a *app) fetcher(src source) (mdview.Fetcher, error) {
	if src.dir != "" {
		return fs.Dir(src.dir)
	}
	base, err := a.baseURL(src.base)
	if err != nil {
		return nil, err
	}
	return fetch.New(base)
}

// newLoader wires the document source and goldmark adapters into a Loader.
func (a *app) newLoader(src source) (*mdview.Loader, error) {
	client, err := a.fetcher(src)
	if err != nil {
		return nil, err
	}
	parser, err := a.newParser()
	if err != nil {
		return nil, err
	}
	return mdview.NewLoader(client, parser, goldmark.NewRenderer(),
		mdview.WithObserver(a.observer),
		mdview.WithLogger(a.logger),
		mdview.WithDefaultPath(a.cfg.DefaultPath),
	), nil
}

func (a *app) newParser() (*goldmark.Parser, error) {
	opts := []goldmark.Option{goldmark.WithExtensions(a.cfg.Extensions...)}
	if a.cfg.FrontMatter {
		opts = append(opts, goldmark.WithFrontMatter())
	}
	return goldmark.NewParser(opts...)
}

func dumpMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}
	return nil
}
