// SPDX-License-Identifier: EPL-2.0

package notation_test

import (
	"fmt"

	"github.com/ik5/cubenote/notation"
	"github.com/ik5/cubenote/shape"
	"github.com/ik5/cubenote/signal"
)

func ExampleTranslate() {
	b := signal.Binned{
		Values: []float64{3, 2, 1, 2},
		Times:  []float64{0, 0.25, 0.5, 0.75},
	}

	symbols, _ := shape.Extract(b)

	tr, err := notation.Translate(symbols, notation.Right, notation.WithTailPolicy(notation.CloseOpenTail))
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, m := range tr.Moves {
		fmt.Printf("%s at %.2fs\n", m, m.Time)
	}
	// Output:
	// R2 at 0.00s
	// R at 0.50s
}
