package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var debug bool
	root := &cobra.Command{
		Use:   "itav [file]",
		Short: "Visually author dose-normalized time-activity curves",
		Long: "itav edits a time-activity curve: an ordered minute-to-fraction\n" +
			"lookup table that downstream consumers treat as the shape of a\n" +
			"dose's effect over time. Run without arguments for the editor;\n" +
			"the subcommands work on series files headlessly.",
		Args: cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			runTUI(path, debug)
		},
	}
	root.Flags().BoolVar(&debug, "debug", false, "write a debug log to itav.log")
	root.AddCommand(newNormalizeCmd(), newExportCmd(), newPresetsCmd())
	return root
}

func newNormalizeCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "normalize <file>",
		Short: "Rescale a series file so its fractions sum to 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := loadSeriesFile(args[0])
			if err != nil {
				return err
			}
			normalized, err := normalizeSeries(series)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0]
			}
			if output == "-" {
				fmt.Fprintln(os.Stdout, string(encodeSeries(normalized)))
				return nil
			}
			return saveSeriesFile(output, normalized)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path (default: in place, '-' for stdout)")
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		format string
		output string
		dose   float64
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Render a series file as png, svg, xlsx or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := loadSeriesFile(args[0])
			if err != nil {
				return err
			}
			hasDose := dose > 0
			if hasDose && !canSetDoseSeries(series) {
				return fmt.Errorf("cannot apply a dose: series does not sum to 1 within tolerance")
			}
			if output == "" {
				base := strings.TrimSuffix(args[0], ".json")
				output = base + "." + format
			}
			switch format {
			case "png":
				return exportPNG(output, series, dose, hasDose)
			case "svg":
				return exportSVG(output, series, dose, hasDose)
			case "xlsx":
				return exportXLSX(output, series, dose, hasDose)
			case "json":
				return saveSeriesFile(output, series)
			default:
				return fmt.Errorf("unknown format %q", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "png", "png, svg, xlsx or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output path")
	cmd.Flags().Float64Var(&dose, "dose", 0, "dose in units for labeling (requires normalized series)")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	var remote string
	cmd := &cobra.Command{
		Use:   "presets [key]",
		Short: "List built-in decay types, or print one as series JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				for _, p := range builtinPresets() {
					fmt.Printf("%-14s %-22s %s\n", p.Key, p.Title, p.Examples)
				}
				return nil
			}
			key := args[0]
			if remote != "" {
				preset, err := NewPresetClient(remote).Fetch(key)
				if err != nil {
					return err
				}
				fmt.Println(string(encodeSeries(preset.Decays)))
				return nil
			}
			preset := findBuiltinPreset(key)
			if preset == nil {
				return fmt.Errorf("unknown preset %q", key)
			}
			fmt.Println(string(encodeSeries(preset.Decays)))
			return nil
		},
	}
	cmd.Flags().StringVar(&remote, "remote", "", "fetch from a remote preset source instead")
	return cmd
}
