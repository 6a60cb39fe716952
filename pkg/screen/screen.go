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

// Package screen draws the state of an editor on a terminal.
package screen

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	gott "github.com/timburks/modal/pkg/types"
)

// MinStatusWidth is the narrowest terminal on which the status line segments
// are guaranteed to fill the row exactly. Narrower rows are clipped.
const MinStatusWidth = 40

// Powerline arrows between the status line segments.
const (
	separatorLeft  = "\ue0b0"
	separatorRight = "\ue0b2"
)

var (
	modeStyle      = gott.Style{Fg: gott.ColorBlack, Bg: gott.ColorDarkCyan, Bold: true}
	separatorStyle = gott.Style{Fg: gott.ColorDarkCyan, Bg: gott.ColorGrey}
	fillerStyle    = gott.Style{Fg: gott.ColorBlack, Bg: gott.ColorGrey}
)

var widthCondition = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// A Segment is a run of styled status line text.
type Segment struct {
	Text  string
	Style gott.Style
}

// Width is the number of terminal columns the segment occupies.
func (s Segment) Width() int {
	return widthCondition.StringWidth(s.Text)
}

// StatusLine lays out the status line for a terminal width: the mode, the
// label padded to take up the slack, and the 1-based cursor position.
func StatusLine(width int, mode gott.Mode, cursor gott.Point, label string) []Segment {
	segments := []Segment{
		{Text: " " + mode.String() + " ", Style: modeStyle},
		{Text: separatorLeft, Style: separatorStyle},
		{Style: fillerStyle}, // filled in below
		{Text: separatorRight, Style: separatorStyle},
		{Text: fmt.Sprintf(" %d:%d", cursor.Row+1, cursor.Col+1), Style: modeStyle},
	}
	fillerWidth := width
	for _, segment := range segments {
		fillerWidth -= segment.Width()
	}
	if fillerWidth < 0 {
		fillerWidth = 0
	}
	filler := widthCondition.Truncate(" "+label, fillerWidth, "")
	segments[2].Text = widthCondition.FillRight(filler, fillerWidth)
	return clip(segments, width)
}

// clip drops whatever does not fit in width columns.
func clip(segments []Segment, width int) []Segment {
	clipped := make([]Segment, 0, len(segments))
	remaining := width
	for _, segment := range segments {
		if remaining <= 0 {
			break
		}
		if w := segment.Width(); w > remaining {
			segment.Text = widthCondition.Truncate(segment.Text, remaining, "")
		}
		remaining -= segment.Width()
		clipped = append(clipped, segment)
	}
	return clipped
}

// The Screen draws the state of an Editor.
type Screen struct {
	terminal gott.Terminal
	variant  gott.Variant
	label    string // placeholder shown in the status line
}

func NewScreen(t gott.Terminal, variant gott.Variant, label string) *Screen {
	return &Screen{terminal: t, variant: variant, label: label}
}

// Render draws the state and flushes it. The live cursor is placed last so
// that drawing the status line never leaves the terminal cursor behind.
func (s *Screen) Render(state gott.State) error {
	if s.variant == gott.VariantStatusLine {
		if err := s.RenderStatusLine(state); err != nil {
			return fmt.Errorf("draw status line: %w", err)
		}
	}
	if err := s.terminal.MoveTo(state.GetCursor()); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	if err := s.terminal.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

// RenderStatusLine draws the status line one row above the bottom row.
func (s *Screen) RenderStatusLine(state gott.State) error {
	size := state.GetSize()
	if size.Rows < 2 {
		return nil
	}
	if err := s.terminal.MoveTo(gott.Point{Row: size.Rows - 2, Col: 0}); err != nil {
		return err
	}
	for _, segment := range StatusLine(size.Cols, state.GetMode(), state.GetCursor(), s.label) {
		if err := s.terminal.Write(segment.Text, segment.Style); err != nil {
			return err
		}
	}
	return nil
}
