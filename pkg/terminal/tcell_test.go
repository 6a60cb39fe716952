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
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gott "github.com/timburks/modal/pkg/types"
)

func simulation(t *testing.T) (*Tcell, tcell.SimulationScreen) {
	s := tcell.NewSimulationScreen("UTF-8")
	term := newTcell(s)
	require.NoError(t, term.Init())
	s.SetSize(20, 5)
	t.Cleanup(func() { _ = term.Close() })
	return term, s
}

func TestTcellWriteAndFlush(t *testing.T) {
	term, s := simulation(t)

	require.NoError(t, term.MoveTo(gott.Point{Row: 1, Col: 2}))
	require.NoError(t, term.Write("hi", gott.Style{Fg: gott.ColorBlack, Bg: gott.ColorDarkCyan, Bold: true}))
	require.NoError(t, term.Flush())

	cells, width, _ := s.GetContents()
	assert.Equal(t, []rune{'h'}, cells[1*width+2].Runes)
	assert.Equal(t, []rune{'i'}, cells[1*width+3].Runes)
	fg, bg, attrs := cells[1*width+2].Style.Decompose()
	assert.Equal(t, tcell.ColorBlack, fg)
	assert.Equal(t, tcell.ColorTeal, bg)
	assert.NotZero(t, attrs&tcell.AttrBold)

	x, y, visible := s.GetCursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.True(t, visible)
}

func TestTcellSize(t *testing.T) {
	term, _ := simulation(t)
	size, err := term.Size()
	require.NoError(t, err)
	assert.Equal(t, gott.Size{Rows: 5, Cols: 20}, size)
}

func TestTcellReadEvent(t *testing.T) {
	term, s := simulation(t)
	s.InjectKey(tcell.KeyRune, 'j', tcell.ModNone)
	for {
		event, err := term.ReadEvent()
		require.NoError(t, err)
		if event.Type == gott.EventKey {
			assert.Equal(t, gott.CharEvent('j'), event)
			break
		}
	}
}

func TestTcellKeyEvents(t *testing.T) {
	tests := []struct {
		event *tcell.EventKey
		want  *gott.Event
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), gott.CharEvent('q')},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), gott.CharEvent(' ')},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), gott.KeyEvent(gott.KeyEsc)},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), gott.KeyEvent(gott.KeyEnter)},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), gott.KeyEvent(gott.KeyArrowUp)},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), gott.KeyEvent(gott.KeyArrowDown)},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), gott.KeyEvent(gott.KeyArrowLeft)},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), gott.KeyEvent(gott.KeyArrowRight)},
		{tcell.NewEventKey(tcell.KeyF1, 0, tcell.ModNone), gott.KeyEvent(gott.KeyUnsupported)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tcellEvent(tt.event), "key %v", tt.event.Name())
	}
}

func TestTcellOtherEvents(t *testing.T) {
	resize := tcellEvent(tcell.NewEventResize(100, 40))
	assert.Equal(t, gott.EventResize, resize.Type)
	assert.Equal(t, gott.Size{Rows: 40, Cols: 100}, resize.Size)

	mouse := tcellEvent(tcell.NewEventMouse(1, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, gott.EventMouse, mouse.Type)
}

func TestTcellCursorStyles(t *testing.T) {
	assert.Equal(t, tcell.CursorStyleSteadyBlock, tcellCursorStyle(gott.ModeNormal.CursorStyle()))
	assert.Equal(t, tcell.CursorStyleBlinkingBar, tcellCursorStyle(gott.ModeInsert.CursorStyle()))
	assert.Equal(t, tcell.CursorStyleDefault, tcellCursorStyle(gott.CursorDefault))
}
