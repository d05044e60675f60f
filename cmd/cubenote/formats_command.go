// SPDX-License-Identifier: EPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ik5/cubenote/formats"
)

func newFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List supported audio file extensions",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := formats.Default()

			var rows [][]string
			for _, ext := range reg.Formats() {
				dec, _ := reg.Get(ext)
				rows = append(rows, []string{"." + ext, fmt.Sprintf("%T", dec)})
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Extension", "Decoder"}, rows, nil))
			return nil
		},
	}
}
