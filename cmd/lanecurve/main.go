// Command lanecurve inspects lane networks described in YAML.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	file    string
	output  string
	verbose bool
	quiet   bool
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "lanecurve",
		Short:        "Inspect lane networks built from three-anchor curves",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: levelFromFlags(opts.verbose, opts.quiet),
			})))
			switch opts.output {
			case "text", "yaml":
				return nil
			default:
				return fmt.Errorf("unknown output format %q", opts.output)
			}
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.file, "file", "f", "lanes.yaml", "lane network description")
	flags.StringVarP(&opts.output, "output", "o", "text", "output format: text or yaml")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug messages")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "only log errors")

	cmd.AddCommand(inspectCmd(&opts))
	cmd.AddCommand(sampleCmd(&opts))
	cmd.AddCommand(chainCmd(&opts))
	cmd.AddCommand(nearestCmd(&opts))
	return cmd
}

// levelFromFlags maps the verbosity flags to a log level. Verbose wins over
// quiet; by default, warnings and errors are logged.
func levelFromFlags(verbose, quiet bool) slog.Level {
	switch {
	case verbose:
		return slog.LevelDebug
	case quiet:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func inspectCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [lane-id...]",
		Short: "Print the lengths, endpoints and links of lanes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd.OutOrStdout(), opts, args)
		},
	}
}

func sampleCmd(opts *options) *cobra.Command {
	var step float32

	cmd := &cobra.Command{
		Use:   "sample lane-id",
		Short: "Print positions spaced evenly along a lane",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd.OutOrStdout(), opts, args[0], step)
		},
	}

	cmd.Flags().Float32VarP(&step, "step", "s", 1, "distance between samples")
	return cmd
}

func chainCmd(opts *options) *cobra.Command {
	var step float32

	cmd := &cobra.Command{
		Use:   "chain lane-id...",
		Short: "Print positions spaced evenly along a sequence of linked lanes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChain(cmd.OutOrStdout(), opts, args, step)
		},
	}

	cmd.Flags().Float32VarP(&step, "step", "s", 1, "distance between samples")
	return cmd
}

func nearestCmd(opts *options) *cobra.Command {
	var (
		origin     string
		dir        string
		resolution int
	)

	cmd := &cobra.Command{
		Use:   "nearest [lane-id...]",
		Short: "Find the lane point closest to a ray",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNearest(cmd.OutOrStdout(), opts, args, origin, dir, resolution)
		},
	}

	cmd.Flags().StringVar(&origin, "origin", "0,0,0", "ray origin as x,y,z")
	cmd.Flags().StringVar(&dir, "dir", "0,-1,0", "ray direction as x,y,z")
	cmd.Flags().IntVarP(&resolution, "resolution", "r", 0, "coarse search steps per lane (default from the network file)")
	return cmd
}
