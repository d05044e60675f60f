// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/cubenote/visual"
)

func newPlotCommand(ctx *commandContext) *cobra.Command {
	var pipeline pipelineFlags
	var width, height int

	cmd := &cobra.Command{
		Use:   "plot <file>",
		Short: "Plot raw, binned and shape data for each channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := ctx.transcribe(cmd, &pipeline, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := visual.Options{Width: width, Height: height}

			for i, ch := range res.Channels {
				fmt.Fprintf(out, "== channel %d (%s) ==\n", i, ch.Face)

				opts.Title = fmt.Sprintf("raw: %d samples", len(ch.Samples))
				if err := visual.Plot(out, ch.Samples, opts); err != nil {
					return err
				}

				bins := ch.Binned
				label := "binned"
				if ch.Rescaled.Len() > 0 {
					bins, label = ch.Rescaled, "rescaled"
				}
				opts.Title = fmt.Sprintf("%s: %d bins", label, bins.Len())
				if err := visual.Plot(out, bins.Values, opts); err != nil {
					return err
				}

				fmt.Fprintf(out, "shape: %d symbols\n", len(ch.Symbols))
				if err := visual.Shapes(out, ch.Symbols); err != nil {
					return err
				}

				fmt.Fprintln(out, "moves:")
				if err := visual.Timeline(out, ch.Moves); err != nil {
					return err
				}
				fmt.Fprintln(out)
			}

			return nil
		},
	}

	pipeline.register(cmd)
	cmd.Flags().IntVar(&width, "width", visual.DefaultWidth, "Plot width in characters")
	cmd.Flags().IntVar(&height, "height", visual.DefaultHeight, "Plot height in rows")

	return cmd
}
