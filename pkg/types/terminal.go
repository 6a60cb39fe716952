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

package types

// CursorStyle is the shape of the terminal cursor.
type CursorStyle int

const (
	CursorDefault CursorStyle = iota
	CursorBlinkingBlock
	CursorSteadyBlock
	CursorBlinkingUnderline
	CursorSteadyUnderline
	CursorBlinkingBar
	CursorSteadyBar
)

// Color is one of the few colors modal draws with.
type Color int

const (
	ColorDefault Color = iota
	ColorBlack
	ColorDarkCyan
	ColorGrey
)

type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// StyleDefault draws with the terminal's own colors.
var StyleDefault = Style{}

// The Terminal is the only connection between modal and the terminal device.
// Writes, moves and style changes are queued and become visible on Flush.
type Terminal interface {
	// Init enters raw mode and the alternate screen.
	Init() error
	// Close restores the terminal to the state Init found it in.
	Close() error

	Clear() error
	SetCursorStyle(style CursorStyle) error
	MoveTo(p Point) error
	// Write draws text starting at the write position and advances it.
	Write(text string, style Style) error
	Flush() error

	// ReadEvent blocks until the next input event arrives.
	ReadEvent() (*Event, error)
	Size() (Size, error)
}

// State is the read-only view of an editor used for rendering.
type State interface {
	GetMode() Mode
	GetCursor() Point
	GetSize() Size
}

// Editor is the editor seen by the commander.
type Editor interface {
	State
	GetVariant() Variant
	Perform(action Action) error
	IsRunning() bool
}
