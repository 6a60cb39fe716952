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

	"github.com/gdamore/tcell/v2"

	gott "github.com/timburks/modal/pkg/types"
)

// Tcell is a Terminal backed by a tcell screen.
type Tcell struct {
	screen tcell.Screen
	pos    gott.Point // write position
}

func NewTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newTcell(screen), nil
}

func newTcell(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen}
}

// Init puts the terminal in raw mode on the alternate screen.
func (t *Tcell) Init() error {
	return t.screen.Init()
}

func (t *Tcell) Close() error {
	t.screen.SetCursorStyle(tcell.CursorStyleDefault)
	t.screen.Fini()
	return nil
}

func (t *Tcell) Clear() error {
	t.screen.Clear()
	return nil
}

func (t *Tcell) SetCursorStyle(style gott.CursorStyle) error {
	t.screen.SetCursorStyle(tcellCursorStyle(style))
	return nil
}

func (t *Tcell) MoveTo(p gott.Point) error {
	t.pos = p
	t.screen.ShowCursor(p.Col, p.Row)
	return nil
}

func (t *Tcell) Write(text string, style gott.Style) error {
	s := tcellStyle(style)
	for _, ch := range text {
		t.screen.SetContent(t.pos.Col, t.pos.Row, ch, nil, s)
		t.pos.Col += cellWidth(ch)
	}
	return nil
}

func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) ReadEvent() (*gott.Event, error) {
	ev := t.screen.PollEvent()
	if ev == nil {
		// the screen was finalized
		return nil, io.EOF
	}
	return tcellEvent(ev), nil
}

func (t *Tcell) Size() (gott.Size, error) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return gott.Size{}, fmt.Errorf("terminal size unavailable (%dx%d)", cols, rows)
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}

func tcellCursorStyle(style gott.CursorStyle) tcell.CursorStyle {
	switch style {
	case gott.CursorBlinkingBlock:
		return tcell.CursorStyleBlinkingBlock
	case gott.CursorSteadyBlock:
		return tcell.CursorStyleSteadyBlock
	case gott.CursorBlinkingUnderline:
		return tcell.CursorStyleBlinkingUnderline
	case gott.CursorSteadyUnderline:
		return tcell.CursorStyleSteadyUnderline
	case gott.CursorBlinkingBar:
		return tcell.CursorStyleBlinkingBar
	case gott.CursorSteadyBar:
		return tcell.CursorStyleSteadyBar
	default:
		return tcell.CursorStyleDefault
	}
}

func tcellColor(c gott.Color) tcell.Color {
	switch c {
	case gott.ColorBlack:
		return tcell.ColorBlack
	case gott.ColorDarkCyan:
		return tcell.ColorTeal
	case gott.ColorGrey:
		return tcell.ColorSilver
	default:
		return tcell.ColorDefault
	}
}

func tcellStyle(style gott.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(style.Fg)).
		Background(tcellColor(style.Bg)).
		Bold(style.Bold)
}

func tcellEvent(ev tcell.Event) *gott.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return tcellKeyEvent(ev)
	case *tcell.EventResize:
		cols, rows := ev.Size()
		return &gott.Event{Type: gott.EventResize, Size: gott.Size{Rows: rows, Cols: cols}}
	case *tcell.EventMouse:
		return &gott.Event{Type: gott.EventMouse}
	case *tcell.EventPaste:
		return &gott.Event{Type: gott.EventPaste}
	default:
		return &gott.Event{Type: gott.EventOther}
	}
}

func tcellKeyEvent(ev *tcell.EventKey) *gott.Event {
	event := &gott.Event{Type: gott.EventKey}
	switch k := ev.Key(); k {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			event.Key = gott.KeyCtrl
		}
		event.Ch = ev.Rune()
	case tcell.KeyEscape:
		event.Key = gott.KeyEsc
	case tcell.KeyEnter:
		event.Key = gott.KeyEnter
	case tcell.KeyTab:
		event.Key = gott.KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		event.Key = gott.KeyBackspace
	case tcell.KeyDelete:
		event.Key = gott.KeyDelete
	case tcell.KeyUp:
		event.Key = gott.KeyArrowUp
	case tcell.KeyDown:
		event.Key = gott.KeyArrowDown
	case tcell.KeyLeft:
		event.Key = gott.KeyArrowLeft
	case tcell.KeyRight:
		event.Key = gott.KeyArrowRight
	case tcell.KeyHome:
		event.Key = gott.KeyHome
	case tcell.KeyEnd:
		event.Key = gott.KeyEnd
	case tcell.KeyPgUp:
		event.Key = gott.KeyPgup
	case tcell.KeyPgDn:
		event.Key = gott.KeyPgdn
	default:
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			event.Key = gott.KeyCtrl
			event.Ch = 'a' + rune(k-tcell.KeyCtrlA)
		} else {
			event.Key = gott.KeyUnsupported
		}
	}
	return event
}
