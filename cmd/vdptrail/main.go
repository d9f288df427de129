// vdptrail integrates a Van der Pol oscillator driving a second oscillator
// and plays the resulting (x, y) path back with a fading trail.
//
// Usage:
//
//	vdptrail run [--save f]   - integrate and print a summary
//	vdptrail play             - integrate and animate in the terminal
//	vdptrail plot             - chart x(t) and y(t)
//	vdptrail export <file>    - render the path to .svg or .png
//	vdptrail sweep <mu>...    - integrate several coupling constants in parallel
//	vdptrail presets          - list bundled configurations
package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/vdptrail/internal/dynamo"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "vdptrail",
})

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var level string

	rootCmd := &cobra.Command{
		Use:           "vdptrail",
		Short:         "coupled Van der Pol integrator with trail playback",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(level)
			if err != nil {
				return err
			}
			logger.SetLevel(lvl)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringVar(&level, "log-level", "info", "log level (debug, info, warn, error)")
	addRunFlags(rootCmd.PersistentFlags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "integrate and print a summary",
		Args:  cobra.NoArgs,
		RunE:  runSummary,
	}
	runCmd.Flags().StringVar(&savePath, "save", "", "write the resolved config to this yaml file")

	playCmd := &cobra.Command{
		Use:   "play",
		Short: "integrate and animate the trajectory",
		Args:  cobra.NoArgs,
		RunE:  runPlay,
	}
	playCmd.Flags().StringVar(&theme, "theme", "classic", "color theme ("+strings.Join(themeNames(), ", ")+")")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "plot x(t) and y(t)",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}

	exportCmd := &cobra.Command{
		Use:   "export [file.svg|file.png]",
		Short: "render the trajectory to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  runExport,
	}
	exportCmd.Flags().IntVar(&frame, "frame", -1, "index of the head point (-1 for the last)")
	exportCmd.Flags().IntVar(&imgWidth, "width", 800, "image width in pixels")
	exportCmd.Flags().IntVar(&imgHeight, "height", 600, "image height in pixels")

	sweepCmd := &cobra.Command{
		Use:   "sweep [mu]...",
		Short: "integrate several coupling constants in parallel",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSweep,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, playCmd, plotCmd, exportCmd, sweepCmd, presetsCmd)
	return rootCmd
}

func parseMus(args []string) ([]float64, error) {
	mus := make([]float64, len(args))
	for i, a := range args {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid mu %q: %w", a, err)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("mu must be finite, got %q: %w", a, dynamo.ErrInvalidArgument)
		}
		mus[i] = v
	}
	return mus, nil
}
