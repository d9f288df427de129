package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/vdptrail/internal/config"
	"github.com/san-kum/vdptrail/internal/export"
	"github.com/san-kum/vdptrail/internal/metrics"
	"github.com/san-kum/vdptrail/internal/sim"
	"github.com/san-kum/vdptrail/internal/viz"
)

// orbitLimit flags runs whose positions leave a generous box around the
// Van der Pol limit cycle.
const orbitLimit = 10.0

func integrate(cmd *cobra.Command) (*config.Config, *sim.Trajectory, error) {
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	start := time.Now()
	tr, err := cfg.Integrator().Advance(cfg.Steps, cfg.StepSize)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("integrated",
		"mu", cfg.Mu,
		"steps", cfg.Steps,
		"dt", cfg.StepSize,
		"elapsed", time.Since(start),
	)

	if err := tr.Degeneracy(); err != nil {
		logger.Warn("trajectory went non-finite", "err", err)
	}
	return cfg, tr, nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, tr, err := integrate(cmd)
	if err != nil {
		return err
	}
	if savePath != "" {
		if err := config.Save(savePath, cfg); err != nil {
			return fmt.Errorf("failed to save config %s: %w", savePath, err)
		}
		logger.Info("saved config", "path", savePath)
	}

	s := metrics.Summarize(tr)
	stab := metrics.NewStability(orbitLimit)
	stab.ObserveAll(tr)
	if stab.Violations() > 0 {
		logger.Warn("orbit left bounds", "limit", orbitLimit, "violations", stab.Violations())
	}

	params := cfg.Integrator().Params()
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%g\n", name, params[name])
	}
	fmt.Fprintf(w, "steps\t%d\n", s.Samples)
	fmt.Fprintf(w, "dt\t%g\n", cfg.StepSize)
	fmt.Fprintf(w, "t\t[%.4f, %.4f]\n", s.Start, s.End)
	fmt.Fprintf(w, "x\t[%.4f, %.4f]\n", s.MinX, s.MaxX)
	fmt.Fprintf(w, "y\t[%.4f, %.4f]\n", s.MinY, s.MaxY)
	fmt.Fprintf(w, "peak |x|\t%.4f\n", s.PeakX)
	fmt.Fprintf(w, "peak |y|\t%.4f\n", s.PeakY)
	fmt.Fprintf(w, "non-finite\t%d\n", s.NonFinite)
	fmt.Fprintf(w, "%s\t%.4f\n", stab.Name(), stab.Value())
	return w.Flush()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, tr, err := integrate(cmd)
	if err != nil {
		return err
	}
	return viz.Run(tr, viz.PlaybackOptions{
		Title:       fmt.Sprintf("van der pol  mu=%g", cfg.Mu),
		TrailLength: cfg.Playback.TrailLength,
		Margin:      cfg.Playback.Margin,
		FPS:         cfg.Playback.FPS,
		Theme:       theme,
	})
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, tr, err := integrate(cmd)
	if err != nil {
		return err
	}
	chart := viz.PlotSeries(tr, 80, 15, fmt.Sprintf("mu=%g  t=[%g, %g]", cfg.Mu, cfg.InitState.T, cfg.InitState.T+cfg.Duration()))
	if chart == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "no finite samples to plot")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), chart)
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("unsupported export format %q (want .svg or .png)", ext)
	}

	cfg, tr, err := integrate(cmd)
	if err != nil {
		return err
	}
	if tr.Len() == 0 {
		return fmt.Errorf("nothing to export: run has zero steps")
	}

	opts := export.DefaultOptions()
	opts.Width, opts.Height = imgWidth, imgHeight
	opts.Margin = cfg.Playback.Margin
	opts.TrailLength = cfg.Playback.TrailLength
	opts.Frame = frame

	var buf bytes.Buffer
	switch ext {
	case ".svg":
		buf.WriteString(export.TrajectorySVG(tr, opts))
	case ".png":
		if err := export.WritePNG(&buf, tr, fmt.Sprintf("Van der Pol mu=%g", cfg.Mu), opts); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return err
	}

	logger.Info("exported", "path", path, "points", tr.Len())
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	mus, err := parseMus(args)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(cmd.Flags())
	if err != nil {
		return err
	}

	start := time.Now()
	results, err := sim.Sweep(cmd.Context(), mus, cfg.InitState, cfg.Steps, cfg.StepSize)
	if err != nil {
		return err
	}
	logger.Debug("sweep finished", "runs", len(results), "elapsed", time.Since(start))

	stab := metrics.NewStability(orbitLimit)
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MU\tPEAK |X|\tPEAK |Y|\tSTABILITY\tNON-FINITE")
	for _, r := range results {
		s := metrics.Summarize(r.Trajectory)
		if s.Degenerate() {
			logger.Warn("trajectory went non-finite", "mu", r.Mu, "err", r.Trajectory.Degeneracy())
		}
		stab.Reset()
		stab.ObserveAll(r.Trajectory)
		fmt.Fprintf(w, "%g\t%.4f\t%.4f\t%.4f\t%d\n", r.Mu, s.PeakX, s.PeakY, stab.Value(), s.NonFinite)
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "presets:")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(out, "  %-10s mu=%g steps=%d dt=%g\n", name, p.Mu, p.Steps, p.StepSize)
	}
	return nil
}
