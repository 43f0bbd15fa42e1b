package main

import (
	"io"
	"time"

	"github.com/docker/go-units"
	"github.com/pingcap/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvseg/config"
	"github.com/katalvlaran/lvseg/edgeio"
	"github.com/katalvlaran/lvseg/metrics"
	"github.com/katalvlaran/lvseg/segment"
)

const (
	flagConfig      = "config"
	flagInput       = "input"
	flagOrder       = "order"
	flagOutput      = "output"
	flagFormat      = "format"
	flagVertices    = "vertices"
	flagScale       = "scale"
	flagMinSize     = "min-size"
	flagJSON        = "json"
	flagLogLevel    = "log-level"
	flagMetricsFile = "metrics-file"
)

func newSegmentCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "segment",
		Short: "Segment an edge list and write one cluster id per element.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd.Flags())
			if err != nil {
				return err
			}
			if err := initLogger(cfg, cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runSegment(cmd, fs, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringP(flagConfig, "c", "", "path of the TOML configuration file")
	flags.StringP(flagInput, "i", edgeio.Stdio, "edge list file, '-' for stdin; .gz and .zst are decompressed")
	flags.String(flagOrder, "", "file of precomputed edge indices in weight order")
	flags.StringP(flagOutput, "o", edgeio.Stdio, "label output file, '-' for stdout")
	flags.String(flagFormat, config.FormatAuto, "edge list format: auto, csv or json")
	flags.Int(flagVertices, 0, "element count for CSV input; 0 infers it from the edges")
	flags.Float64(flagScale, 1, "threshold constant c; larger values give larger segments")
	flags.Int(flagMinSize, -1, "minimum segment size; 0 or less disables the cleanup pass")
	flags.Bool(flagJSON, false, "write labels, sizes and stats as JSON")
	flags.String(flagLogLevel, "", "log level, overrides the config file")
	flags.String(flagMetricsFile, "", "write Prometheus metrics to this textfile after the run")

	return cmd
}

// loadConfig reads the config file, if any, and applies explicitly set flags over it.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg := config.NewConfig()
	if path, _ := flags.GetString(flagConfig); path != "" {
		if err := cfg.Load(path); err != nil {
			return nil, err
		}
	}

	if flags.Changed(flagScale) {
		cfg.Segment.Scale, _ = flags.GetFloat64(flagScale)
	}
	if flags.Changed(flagMinSize) {
		cfg.Segment.MinSize, _ = flags.GetInt(flagMinSize)
	}
	if flags.Changed(flagFormat) {
		cfg.Input.Format, _ = flags.GetString(flagFormat)
	}
	if flags.Changed(flagVertices) {
		cfg.Input.Vertices, _ = flags.GetInt(flagVertices)
	}
	if flags.Changed(flagLogLevel) {
		cfg.Log.Level, _ = flags.GetString(flagLogLevel)
	}
	if flags.Changed(flagMetricsFile) {
		cfg.Status.MetricsFile, _ = flags.GetString(flagMetricsFile)
	}

	return cfg, cfg.Valid()
}

// initLogger replaces the global logger. Without a log file, logs go to stderr
// so that stdout carries only labels.
func initLogger(cfg *config.Config, stderr io.Writer) error {
	conf := &log.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   log.FileLogConfig{Filename: cfg.Log.File},
	}
	var (
		lg    *zap.Logger
		props *log.ZapProperties
		err   error
	)
	if cfg.Log.File == "" {
		ws := zapcore.AddSync(stderr)
		lg, props, err = log.InitLoggerWithWriteSyncer(conf, ws, ws)
	} else {
		lg, props, err = log.InitLogger(conf)
	}
	if err != nil {
		return errors.Wrap(err, "init logger")
	}
	log.ReplaceGlobals(lg, props)

	return nil
}

func runSegment(cmd *cobra.Command, fs afero.Fs, cfg *config.Config) error {
	flags := cmd.Flags()
	input, _ := flags.GetString(flagInput)
	orderPath, _ := flags.GetString(flagOrder)
	output, _ := flags.GetString(flagOutput)
	asJSON, _ := flags.GetBool(flagJSON)

	// 1. Read the edge list.
	start := time.Now()
	g, err := readGraph(fs, input, cfg.Input)
	if err != nil {
		return err
	}
	if orderPath != "" {
		if g.Order, err = readOrder(fs, orderPath); err != nil {
			return err
		}
	}
	log.Info("edge list loaded",
		zap.String("input", input),
		zap.String("size", inputSize(fs, input)),
		zap.Int("vertices", g.Vertices),
		zap.Int("edges", len(g.Edges)),
		zap.Bool("order", g.Order != nil),
		zap.Duration("elapsed", time.Since(start)))

	// 2. Segment.
	res, err := segment.Segment(g.Vertices, g.Edges,
		segment.WithScale(cfg.Segment.Scale),
		segment.WithMinSize(cfg.Segment.MinSize),
		segment.WithOrder(g.Order),
		segment.WithLogger(log.L()))
	if err != nil {
		return errors.Wrapf(err, "segment %s", input)
	}
	log.Info("segmentation done",
		zap.Int("segments", res.NumSegments),
		zap.Int("merges", res.Stats.Merges),
		zap.Int("cleanup-merges", res.Stats.CleanupMerges))

	// 3. Write labels.
	if err := writeResult(cmd, fs, output, res, asJSON); err != nil {
		return err
	}

	// 4. Dump metrics.
	if cfg.Status.MetricsFile != "" {
		if err := writeMetrics(fs, cfg.Status.MetricsFile); err != nil {
			return err
		}
	}

	return nil
}

// writeMetrics renders the lvseg collectors in the Prometheus text format to path on fs.
func writeMetrics(fs afero.Fs, path string) (err error) {
	reg := prometheus.NewRegistry()
	metrics.RegisterMetrics(reg)
	families, err := reg.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}

	w, err := edgeio.Create(fs, path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, w.Close())
	}()
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}

	return nil
}

func readGraph(fs afero.Fs, path string, in config.Input) (g *edgeio.Graph, err error) {
	r, err := edgeio.Open(fs, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	format := in.Format
	if format == config.FormatAuto {
		format = edgeio.DetectFormat(path)
	}
	if format == config.FormatJSON {
		g, err = edgeio.ReadJSON(r)
	} else {
		g, err = edgeio.ReadCSV(r, in.Vertices)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	if format == config.FormatJSON && in.Vertices > 0 {
		g.Vertices = in.Vertices
	}

	return g, nil
}

func readOrder(fs afero.Fs, path string) (order []int, err error) {
	r, err := edgeio.Open(fs, path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, r.Close())
	}()

	order, err = edgeio.ReadOrder(r)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	return order, nil
}

func writeResult(cmd *cobra.Command, fs afero.Fs, path string, res *segment.Result, asJSON bool) (err error) {
	var w io.Writer = cmd.OutOrStdout()
	if path != edgeio.Stdio {
		wc, cerr := edgeio.Create(fs, path)
		if cerr != nil {
			return cerr
		}
		defer func() {
			err = multierr.Append(err, wc.Close())
		}()
		w = wc
	}

	if asJSON {
		return edgeio.WriteLabelsJSON(w, res)
	}

	return edgeio.WriteLabels(w, res.Labels)
}

// inputSize formats the input file size for logging; stdin and unknown sizes give "-".
func inputSize(fs afero.Fs, path string) string {
	if path == edgeio.Stdio {
		return "-"
	}
	info, err := fs.Stat(path)
	if err != nil {
		return "-"
	}

	return units.HumanSize(float64(info.Size()))
}
