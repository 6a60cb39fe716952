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

package terminal

import (
	"fmt"
	"io"
	"strings"

	gott "github.com/timburks/modal/pkg/types"
)

// OpKind names a Terminal call.
type OpKind int

const (
	OpInit OpKind = iota
	OpClose
	OpClear
	OpSetCursorStyle
	OpMoveTo
	OpWrite
	OpFlush
	OpReadEvent
	OpSize
)

func (k OpKind) String() string {
	return [...]string{"init", "close", "clear", "set-cursor-style", "move-to", "write", "flush", "read-event", "size"}[k]
}

// An Op is one recorded Terminal call.
type Op struct {
	Kind        OpKind
	Point       gott.Point
	Text        string
	Style       gott.Style
	CursorStyle gott.CursorStyle
}

// A Cell is one visible screen position.
type Cell struct {
	Ch    rune
	Style gott.Style
}

// The Recorder is an in-memory Terminal. It records every call, keeps a cell
// grid that changes only when queued output is flushed, and reads events
// from a script. ReadEvent returns io.EOF once the script is exhausted.
type Recorder struct {
	Ops []Op

	// Failures makes the named calls fail with the given error.
	Failures map[OpKind]error

	size        gott.Size
	events      []*gott.Event
	pending     []Op
	cells       map[gott.Point]Cell
	cursor      gott.Point
	cursorStyle gott.CursorStyle
	writePos    gott.Point
	active      bool
}

func NewRecorder(size gott.Size, events ...*gott.Event) *Recorder {
	return &Recorder{
		size:     size,
		events:   events,
		cells:    make(map[gott.Point]Cell),
		Failures: make(map[OpKind]error),
	}
}

// Queue appends events to the input script.
func (r *Recorder) Queue(events ...*gott.Event) {
	r.events = append(r.events, events...)
}

func (r *Recorder) record(op Op) error {
	r.Ops = append(r.Ops, op)
	return r.Failures[op.Kind]
}

func (r *Recorder) queue(op Op) error {
	if err := r.record(op); err != nil {
		return err
	}
	r.pending = append(r.pending, op)
	return nil
}

func (r *Recorder) Init() error {
	if err := r.record(Op{Kind: OpInit}); err != nil {
		return err
	}
	r.active = true
	return nil
}

func (r *Recorder) Close() error {
	if err := r.record(Op{Kind: OpClose}); err != nil {
		return err
	}
	r.active = false
	return nil
}

func (r *Recorder) Clear() error {
	return r.queue(Op{Kind: OpClear})
}

func (r *Recorder) SetCursorStyle(style gott.CursorStyle) error {
	return r.queue(Op{Kind: OpSetCursorStyle, CursorStyle: style})
}

func (r *Recorder) MoveTo(p gott.Point) error {
	return r.queue(Op{Kind: OpMoveTo, Point: p})
}

func (r *Recorder) Write(text string, style gott.Style) error {
	return r.queue(Op{Kind: OpWrite, Text: text, Style: style})
}

// Flush applies queued output to the visible screen.
func (r *Recorder) Flush() error {
	if err := r.record(Op{Kind: OpFlush}); err != nil {
		return err
	}
	for _, op := range r.pending {
		switch op.Kind {
		case OpClear:
			r.cells = make(map[gott.Point]Cell)
		case OpSetCursorStyle:
			r.cursorStyle = op.CursorStyle
		case OpMoveTo:
			r.writePos = op.Point
			r.cursor = op.Point
		case OpWrite:
			for _, ch := range op.Text {
				r.cells[r.writePos] = Cell{Ch: ch, Style: op.Style}
				r.writePos.Col += cellWidth(ch)
			}
		}
	}
	r.pending = nil
	return nil
}

func (r *Recorder) ReadEvent() (*gott.Event, error) {
	if err := r.record(Op{Kind: OpReadEvent}); err != nil {
		return nil, err
	}
	if len(r.events) == 0 {
		return nil, io.EOF
	}
	event := r.events[0]
	r.events = r.events[1:]
	return event, nil
}

func (r *Recorder) Size() (gott.Size, error) {
	if err := r.record(Op{Kind: OpSize}); err != nil {
		return gott.Size{}, err
	}
	return r.size, nil
}

// Active reports whether the recorder is between Init and Close.
func (r *Recorder) Active() bool {
	return r.active
}

// Count returns the number of recorded calls of a kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Pending returns the number of queued calls not yet flushed.
func (r *Recorder) Pending() int {
	return len(r.pending)
}

// Cursor returns the visible cursor position.
func (r *Recorder) Cursor() gott.Point {
	return r.cursor
}

// CursorStyle returns the visible cursor style.
func (r *Recorder) CursorStyle() gott.CursorStyle {
	return r.cursorStyle
}

// Cell returns the visible cell at p; blank cells have Ch == 0.
func (r *Recorder) Cell(p gott.Point) Cell {
	return r.cells[p]
}

// Line returns the visible text of a row within the screen width, with
// blank cells shown as spaces and trailing blanks removed.
func (r *Recorder) Line(row int) string {
	var b strings.Builder
	for col := 0; col < r.size.Cols; {
		cell, ok := r.cells[gott.Point{Row: row, Col: col}]
		if !ok || cell.Ch == 0 {
			b.WriteByte(' ')
			col++
			continue
		}
		b.WriteRune(cell.Ch)
		col += cellWidth(cell.Ch)
	}
	return strings.TrimRight(b.String(), " ")
}

// String renders the visible screen, one line per row, followed by the
// cursor position.
func (r *Recorder) String() string {
	var b strings.Builder
	for row := 0; row < r.size.Rows; row++ {
		b.WriteString(r.Line(row))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "cursor %d,%d\n", r.cursor.Row, r.cursor.Col)
	return b.String()
}
