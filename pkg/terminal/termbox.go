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
	"os"

	"github.com/nsf/termbox-go"

	gott "github.com/timburks/modal/pkg/types"
)

// Termbox is a Terminal backed by termbox.
// termbox has no cursor shape API, so cursor styles are sent as DECSCUSR
// escapes after each flush.
type Termbox struct {
	out         io.Writer // receives cursor style escapes
	pos         gott.Point
	cursorStyle gott.CursorStyle
	styleDirty  bool
}

func NewTermbox() *Termbox {
	return &Termbox{out: os.Stdout}
}

func (t *Termbox) Init() error {
	if err := termbox.Init(); err != nil {
		return err
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.Output256)
	return nil
}

func (t *Termbox) Close() error {
	termbox.Close()
	_, err := io.WriteString(t.out, decscusr(gott.CursorDefault))
	return err
}

func (t *Termbox) Clear() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *Termbox) SetCursorStyle(style gott.CursorStyle) error {
	t.cursorStyle = style
	t.styleDirty = true
	return nil
}

func (t *Termbox) MoveTo(p gott.Point) error {
	t.pos = p
	termbox.SetCursor(p.Col, p.Row)
	return nil
}

func (t *Termbox) Write(text string, style gott.Style) error {
	fg, bg := termboxAttributes(style)
	for _, ch := range text {
		termbox.SetCell(t.pos.Col, t.pos.Row, ch, fg, bg)
		t.pos.Col += cellWidth(ch)
	}
	return nil
}

func (t *Termbox) Flush() error {
	if err := termbox.Flush(); err != nil {
		return err
	}
	if t.styleDirty {
		if _, err := io.WriteString(t.out, decscusr(t.cursorStyle)); err != nil {
			return err
		}
		t.styleDirty = false
	}
	return nil
}

func (t *Termbox) ReadEvent() (*gott.Event, error) {
	ev := termbox.PollEvent()
	if ev.Type == termbox.EventError {
		return nil, ev.Err
	}
	return termboxEvent(ev), nil
}

func (t *Termbox) Size() (gott.Size, error) {
	cols, rows := termbox.Size()
	if cols <= 0 || rows <= 0 {
		return gott.Size{}, fmt.Errorf("terminal size unavailable (%dx%d)", cols, rows)
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}

// decscusr is the escape sequence that selects a cursor style.
func decscusr(style gott.CursorStyle) string {
	n := 0
	switch style {
	case gott.CursorBlinkingBlock:
		n = 1
	case gott.CursorSteadyBlock:
		n = 2
	case gott.CursorBlinkingUnderline:
		n = 3
	case gott.CursorSteadyUnderline:
		n = 4
	case gott.CursorBlinkingBar:
		n = 5
	case gott.CursorSteadyBar:
		n = 6
	}
	return fmt.Sprintf("\x1b[%d q", n)
}

// In 256-color output mode, termbox colors are palette indices plus one.
func termboxColor(c gott.Color) termbox.Attribute {
	switch c {
	case gott.ColorBlack:
		return termbox.ColorBlack
	case gott.ColorDarkCyan:
		return termbox.ColorCyan
	case gott.ColorGrey:
		return termbox.ColorWhite
	default:
		return termbox.ColorDefault
	}
}

func termboxAttributes(style gott.Style) (fg, bg termbox.Attribute) {
	fg = termboxColor(style.Fg)
	if style.Bold {
		fg |= termbox.AttrBold
	}
	return fg, termboxColor(style.Bg)
}

func termboxEvent(ev termbox.Event) *gott.Event {
	switch ev.Type {
	case termbox.EventKey:
		return termboxKeyEvent(ev)
	case termbox.EventResize:
		return &gott.Event{Type: gott.EventResize, Size: gott.Size{Rows: ev.Height, Cols: ev.Width}}
	case termbox.EventMouse:
		return &gott.Event{Type: gott.EventMouse}
	default:
		return &gott.Event{Type: gott.EventOther}
	}
}

func termboxKeyEvent(ev termbox.Event) *gott.Event {
	event := &gott.Event{Type: gott.EventKey}
	if ev.Ch != 0 {
		event.Ch = ev.Ch
		return event
	}
	switch k := ev.Key; k {
	case termbox.KeySpace:
		event.Ch = ' '
	case termbox.KeyEsc:
		event.Key = gott.KeyEsc
	case termbox.KeyEnter:
		event.Key = gott.KeyEnter
	case termbox.KeyTab:
		event.Key = gott.KeyTab
	case termbox.KeyBackspace, termbox.KeyBackspace2:
		event.Key = gott.KeyBackspace
	case termbox.KeyDelete:
		event.Key = gott.KeyDelete
	case termbox.KeyArrowUp:
		event.Key = gott.KeyArrowUp
	case termbox.KeyArrowDown:
		event.Key = gott.KeyArrowDown
	case termbox.KeyArrowLeft:
		event.Key = gott.KeyArrowLeft
	case termbox.KeyArrowRight:
		event.Key = gott.KeyArrowRight
	case termbox.KeyHome:
		event.Key = gott.KeyHome
	case termbox.KeyEnd:
		event.Key = gott.KeyEnd
	case termbox.KeyPgup:
		event.Key = gott.KeyPgup
	case termbox.KeyPgdn:
		event.Key = gott.KeyPgdn
	default:
		if k >= termbox.KeyCtrlA && k <= termbox.KeyCtrlZ {
			event.Key = gott.KeyCtrl
			event.Ch = 'a' + rune(k-termbox.KeyCtrlA)
		} else {
			event.Key = gott.KeyUnsupported
		}
	}
	return event
}
