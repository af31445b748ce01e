// Command inkdemo drives the ink selection engine from scene files.
//
// A scene is a JSON document listing strokes (markers, brushes, shapes,
// vector and bitmap images). The render subcommand exports the whole scene
// as SVG; the select subcommand runs a selector pass over a region,
// optionally transforms or duplicates the selection, and exports it.
//
// Example:
//
//	inkdemo render scene.json -o all.svg
//	inkdemo select scene.json -r 0,0,200,160 --translate 40,0 -o sel.svg
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/inkpad/ink"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree and wires library logging.
func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "inkdemo",
		Short:        "inkdemo drives the ink selection engine from scene files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			// charm loggers implement slog.Handler, so the library's
			// slog seam can reuse the CLI logger directly.
			ink.SetLogger(slog.New(logger))
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newRenderCmd())
	root.AddCommand(newSelectCmd())
	return root
}

// newRenderCmd creates the render command: export every renderable stroke
// of a scene as a standalone SVG document.
func newRenderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Export every renderable stroke as a standalone SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadScene(args[0])
			if err != nil {
				return err
			}

			data, err := state.SVGData()
			if err != nil {
				return err
			}
			bounds, ok := state.StrokesBounds()
			if !ok {
				return fmt.Errorf("scene %s has no strokes", args[0])
			}

			doc := ink.WrapSVG(data, ink.R(0, 0, bounds.Max.X, bounds.Max.Y))
			if err := os.WriteFile(output, []byte(doc), 0o644); err != nil {
				return err
			}
			cmd.Printf("wrote %s (%d strokes)\n", output, state.StrokeCount())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "scene.svg", "output SVG file")
	return cmd
}

// newSelectCmd creates the select command: run a selector pass over a
// region, optionally transform or duplicate the selection, and export it.
func newSelectCmd() *cobra.Command {
	var (
		output    string
		regionStr string
		viewStr   string
		transStr  string
		resizeStr string
		duplicate bool
	)

	cmd := &cobra.Command{
		Use:   "select [scene]",
		Short: "Select strokes under a region, transform them, export as SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadScene(args[0])
			if err != nil {
				return err
			}

			region, err := parseRect(regionStr)
			if err != nil {
				return fmt.Errorf("invalid --region: %w", err)
			}
			var viewport *ink.Rect
			if viewStr != "" {
				vp, err := parseRect(viewStr)
				if err != nil {
					return fmt.Errorf("invalid --viewport: %w", err)
				}
				viewport = &vp
			}

			state.UpdateSelection(&region, viewport)
			cmd.Printf("selected %d of %d strokes\n", state.SelectionCount(), state.StrokeCount())

			if transStr != "" {
				off, err := parsePoint(transStr)
				if err != nil {
					return fmt.Errorf("invalid --translate: %w", err)
				}
				state.TranslateSelection(off)
			}
			if duplicate {
				dups := state.DuplicateSelection()
				cmd.Printf("duplicated %d strokes\n", len(dups))
			}
			if resizeStr != "" {
				target, err := parseRect(resizeStr)
				if err != nil {
					return fmt.Errorf("invalid --resize: %w", err)
				}
				if err := state.ResizeSelection(target); err != nil {
					return err
				}
			}

			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := state.ExportSelectionSVG(f); err != nil {
				return err
			}
			cmd.Printf("wrote %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "selection.svg", "output SVG file")
	cmd.Flags().StringVarP(&regionStr, "region", "r", "", "selector region as x,y,w,h (required)")
	cmd.Flags().StringVar(&viewStr, "viewport", "", "viewport as x,y,w,h; strokes outside keep their state")
	cmd.Flags().StringVar(&transStr, "translate", "", "shift the selection by dx,dy before export")
	cmd.Flags().StringVar(&resizeStr, "resize", "", "re-fit the selection into x,y,w,h before export")
	cmd.Flags().BoolVar(&duplicate, "duplicate", false, "duplicate the selection before export")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}

// parseRect parses "x,y,w,h" into a Rect.
func parseRect(s string) (ink.Rect, error) {
	vals, err := parseFloats(s, 4)
	if err != nil {
		return ink.Rect{}, err
	}
	return ink.R(vals[0], vals[1], vals[0]+vals[2], vals[1]+vals[3]), nil
}

// parsePoint parses "x,y" into a Point.
func parsePoint(s string) (ink.Point, error) {
	vals, err := parseFloats(s, 2)
	if err != nil {
		return ink.Point{}, err
	}
	return ink.Pt(vals[0], vals[1]), nil
}

// parseFloats splits a comma-separated list into exactly n floats.
func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d", n, len(parts))
	}
	vals := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vals, nil
}
