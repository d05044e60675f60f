// SPDX-License-Identifier: EPL-2.0

package signal

import (
	"errors"
	"fmt"
)

// Error taxonomy shared by every pipeline stage. Stage-specific errors wrap
// one of these roots so callers can test with errors.Is.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrDegenerateData = errors.New("degenerate data")
)

var (
	ErrInvalidSampleRate = fmt.Errorf("%w: sample rate must be positive", ErrInvalidInput)
	ErrInvalidBinSize    = fmt.Errorf("%w: bin size must be positive", ErrInvalidInput)
	ErrEmptySignal       = fmt.Errorf("%w: channel signal is empty", ErrInvalidInput)
	ErrAxisMismatch      = fmt.Errorf("%w: time axis and signal lengths differ", ErrInvalidInput)
	ErrFlatChannel       = fmt.Errorf("%w: binned values are constant, cannot rescale", ErrDegenerateData)
)
