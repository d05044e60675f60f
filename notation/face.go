// SPDX-License-Identifier: EPL-2.0

package notation

import (
	"fmt"
	"strings"
)

// Face is a cube side. Each audio channel is assigned one.
type Face string

const (
	Left  Face = "L"
	Right Face = "R"
	Front Face = "F"
	Back  Face = "B"
	Up    Face = "U"
	Down  Face = "D"
)

// Faces lists the valid faces in conventional order.
var Faces = []Face{Left, Right, Front, Back, Up, Down}

// Valid reports whether f is one of the six cube faces.
func (f Face) Valid() bool {
	switch f {
	case Left, Right, Front, Back, Up, Down:
		return true
	}
	return false
}

// ParseFace accepts a face letter in either case.
func ParseFace(s string) (Face, error) {
	f := Face(strings.ToUpper(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidFace, s)
	}
	return f, nil
}

// FaceMap assigns faces to channels by position: channel i uses FaceMap[i].
type FaceMap []Face

// ParseFaceMap parses one face per entry. An entry may also hold several
// comma-separated faces, so both {"L", "R"} and {"L,R"} work.
func ParseFaceMap(specs ...string) (FaceMap, error) {
	var out FaceMap
	for _, spec := range specs {
		for part := range strings.SplitSeq(spec, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			f, err := ParseFace(part)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no faces given", ErrInvalidFace)
	}
	return out, nil
}

// Check verifies every face is valid and that there is exactly one per
// channel.
func (m FaceMap) Check(channels int) error {
	for _, f := range m {
		if !f.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidFace, string(f))
		}
	}
	if len(m) != channels {
		return fmt.Errorf("%w: %d faces for %d channels", ErrFaceCount, len(m), channels)
	}
	return nil
}

func (m FaceMap) String() string {
	parts := make([]string, len(m))
	for i, f := range m {
		parts[i] = string(f)
	}
	return strings.Join(parts, ",")
}
