// SPDX-License-Identifier: EPL-2.0

package notation

import (
	"fmt"

	"github.com/ik5/cubenote/signal"
)

var (
	ErrInvalidFace = fmt.Errorf("%w: face must be one of L R F B U D", signal.ErrInvalidInput)
	ErrFaceCount   = fmt.Errorf("%w: face count does not match channel count", signal.ErrInvalidInput)
	ErrTailPolicy  = fmt.Errorf("%w: unknown tail policy", signal.ErrInvalidInput)
)
