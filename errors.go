// SPDX-License-Identifier: EPL-2.0

package cubenote

import (
	"fmt"

	"github.com/ik5/cubenote/audio"
	"github.com/ik5/cubenote/signal"
)

// Error roots. Every error returned by this module matches one of these
// with errors.Is, or is an I/O error from the underlying reader.
var (
	ErrInvalidInput      = signal.ErrInvalidInput
	ErrDegenerateData    = signal.ErrDegenerateData
	ErrUnsupportedFormat = audio.ErrUnsupportedFormat
)

var (
	ErrInvalidGain     = fmt.Errorf("%w: gain must be finite", ErrInvalidInput)
	ErrTooManyChannels = fmt.Errorf("%w: no default face for channel", ErrInvalidInput)
)
