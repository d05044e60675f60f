// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ik5/cubenote"
	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/shape"
)

func newNotateCommand(ctx *commandContext) *cobra.Command {
	var pipeline pipelineFlags
	var asJSON, plain bool

	cmd := &cobra.Command{
		Use:   "notate <file>",
		Short: "Print the cube moves for an audio file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON && plain {
				return errors.New("--json and --plain are mutually exclusive")
			}

			res, err := ctx.transcribe(cmd, &pipeline, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return writeJSON(cmd, newNotationReport(args[0], res))
			case plain:
				_, err := fmt.Fprintln(out, res.Notation())
				return err
			default:
				fmt.Fprintln(out, renderMoves(res.Moves))
				fmt.Fprintf(out, "%d moves from %d channel(s) at %d Hz\n", len(res.Moves), len(res.Channels), res.SampleRate)
				return nil
			}
		},
	}

	pipeline.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the result as JSON")
	cmd.Flags().BoolVar(&plain, "plain", false, "Write only the move sequence")

	return cmd
}

func renderMoves(moves []notation.Move) string {
	rows := make([][]string, 0, len(moves))
	for i, m := range moves {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatFloat(m.Time, 'f', 3, 64),
			string(m.Face),
			m.String(),
		})
	}
	return renderTable(
		[]string{"#", "Time (s)", "Face", "Move"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	)
}

type channelReport struct {
	Face    notation.Face   `json:"face"`
	Samples int             `json:"samples"`
	Bins    int             `json:"bins"`
	Shape   string          `json:"shape"`
	Up      int             `json:"up"`
	Down    int             `json:"down"`
	Runs    int             `json:"runs"`
	Moves   []notation.Move `json:"moves"`
}

type notationReport struct {
	ID         string          `json:"id"`
	File       string          `json:"file"`
	SampleRate int             `json:"sample_rate"`
	Channels   []channelReport `json:"channels"`
	Moves      []notation.Move `json:"moves"`
	Notation   string          `json:"notation"`
}

func newNotationReport(path string, res cubenote.Result) notationReport {
	report := notationReport{
		ID:         res.ID.String(),
		File:       path,
		SampleRate: res.SampleRate,
		Channels:   make([]channelReport, 0, len(res.Channels)),
		Moves:      res.Moves,
		Notation:   res.Notation(),
	}
	for _, ch := range res.Channels {
		up, down := shape.Count(ch.Symbols)
		report.Channels = append(report.Channels, channelReport{
			Face:    ch.Face,
			Samples: len(ch.Samples),
			Bins:    ch.Binned.Len(),
			Shape:   shape.Strip(ch.Symbols),
			Up:      up,
			Down:    down,
			Runs:    len(ch.Runs),
			Moves:   ch.Moves,
		})
	}
	return report
}
