//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package types holds the values and interfaces shared by the modal packages.
// Keeping them here lets the commander, editor and screen packages talk to
// each other without import cycles.
package types

import "fmt"

// Mode is an editing mode.
type Mode int

// Editor modes
const (
	ModeNormal Mode = iota
	ModeInsert
)

// CursorStyle returns the cursor shape that marks the mode on screen.
func (m Mode) CursorStyle() CursorStyle {
	switch m {
	case ModeInsert:
		return CursorBlinkingBar
	default:
		return CursorSteadyBlock
	}
}

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeInsert:
		return "INSERT"
	default:
		return fmt.Sprintf("MODE(%d)", int(m))
	}
}

// Variant selects how much of the editor is switched on.
// The minimal variant has no status line and no line breaks in insert mode.
type Variant int

const (
	VariantStatusLine Variant = iota
	VariantMinimal
)

func (v Variant) String() string {
	if v == VariantMinimal {
		return "minimal"
	}
	return "statusline"
}

// ParseVariant converts a configuration value into a Variant.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "statusline", "":
		return VariantStatusLine, nil
	case "minimal":
		return VariantMinimal, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", s)
	}
}

// A Point is a cell position. Row 0, Col 0 is the top-left corner.
type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}
