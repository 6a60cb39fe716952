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

package commander

import (
	"testing"

	"github.com/stretchr/testify/assert"

	gott "github.com/timburks/modal/pkg/types"
)

func TestDispatchNormalMode(t *testing.T) {
	tests := []struct {
		name   string
		event  *gott.Event
		action gott.Action
	}{
		{"q quits", gott.CharEvent('q'), gott.Quit()},
		{"i inserts", gott.CharEvent('i'), gott.ChangeMode(gott.ModeInsert)},
		{"k", gott.CharEvent('k'), gott.MoveUp()},
		{"up", gott.KeyEvent(gott.KeyArrowUp), gott.MoveUp()},
		{"j", gott.CharEvent('j'), gott.MoveDown()},
		{"down", gott.KeyEvent(gott.KeyArrowDown), gott.MoveDown()},
		{"h", gott.CharEvent('h'), gott.MoveLeft()},
		{"left", gott.KeyEvent(gott.KeyArrowLeft), gott.MoveLeft()},
		{"l", gott.CharEvent('l'), gott.MoveRight()},
		{"right", gott.KeyEvent(gott.KeyArrowRight), gott.MoveRight()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := Dispatch(gott.ModeNormal, tt.event, gott.VariantStatusLine)
			assert.True(t, ok)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestDispatchNormalModeIgnoresOtherKeys(t *testing.T) {
	for _, event := range []*gott.Event{
		gott.CharEvent('x'),
		gott.CharEvent('Q'),
		gott.CharEvent(' '),
		gott.KeyEvent(gott.KeyEsc),
		gott.KeyEvent(gott.KeyEnter),
		gott.KeyEvent(gott.KeyTab),
		{Type: gott.EventKey, Key: gott.KeyCtrl, Ch: 'q'},
	} {
		_, ok := Dispatch(gott.ModeNormal, event, gott.VariantStatusLine)
		assert.False(t, ok, "event %+v", event)
	}
}

func TestDispatchInsertMode(t *testing.T) {
	tests := []struct {
		name   string
		event  *gott.Event
		action gott.Action
	}{
		{"esc", gott.KeyEvent(gott.KeyEsc), gott.ChangeMode(gott.ModeNormal)},
		{"up", gott.KeyEvent(gott.KeyArrowUp), gott.MoveUp()},
		{"down", gott.KeyEvent(gott.KeyArrowDown), gott.MoveDown()},
		{"left", gott.KeyEvent(gott.KeyArrowLeft), gott.MoveLeft()},
		{"right", gott.KeyEvent(gott.KeyArrowRight), gott.MoveRight()},
		{"enter", gott.KeyEvent(gott.KeyEnter), gott.NewLine()},
		{"letter", gott.CharEvent('a'), gott.AddChar('a')},
		{"q is text", gott.CharEvent('q'), gott.AddChar('q')},
		{"space", gott.CharEvent(' '), gott.AddChar(' ')},
		{"unicode", gott.CharEvent('é'), gott.AddChar('é')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, ok := Dispatch(gott.ModeInsert, tt.event, gott.VariantStatusLine)
			assert.True(t, ok)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestDispatchInsertModeIgnoresOtherKeys(t *testing.T) {
	for _, event := range []*gott.Event{
		gott.KeyEvent(gott.KeyTab),
		gott.KeyEvent(gott.KeyBackspace),
		gott.KeyEvent(gott.KeyDelete),
		gott.KeyEvent(gott.KeyUnsupported),
		gott.CharEvent('\x07'),
		{Type: gott.EventKey, Key: gott.KeyCtrl, Ch: 'c'},
	} {
		_, ok := Dispatch(gott.ModeInsert, event, gott.VariantStatusLine)
		assert.False(t, ok, "event %+v", event)
	}
}

func TestBindingsDoNotLeakAcrossModes(t *testing.T) {
	down, ok := Dispatch(gott.ModeNormal, gott.KeyEvent(gott.KeyArrowDown), gott.VariantStatusLine)
	assert.True(t, ok)
	j, ok := Dispatch(gott.ModeNormal, gott.CharEvent('j'), gott.VariantStatusLine)
	assert.True(t, ok)
	assert.Equal(t, gott.MoveDown(), down)
	assert.Equal(t, down, j)

	j, ok = Dispatch(gott.ModeInsert, gott.CharEvent('j'), gott.VariantStatusLine)
	assert.True(t, ok)
	assert.Equal(t, gott.AddChar('j'), j)

	_, ok = Dispatch(gott.ModeNormal, gott.KeyEvent(gott.KeyEsc), gott.VariantStatusLine)
	assert.False(t, ok)
	i, ok := Dispatch(gott.ModeInsert, gott.CharEvent('i'), gott.VariantStatusLine)
	assert.True(t, ok)
	assert.Equal(t, gott.AddChar('i'), i)
}

func TestMinimalVariantHasNoLineBreaks(t *testing.T) {
	_, ok := Dispatch(gott.ModeInsert, gott.KeyEvent(gott.KeyEnter), gott.VariantMinimal)
	assert.False(t, ok)

	action, ok := Dispatch(gott.ModeInsert, gott.CharEvent('a'), gott.VariantMinimal)
	assert.True(t, ok)
	assert.Equal(t, gott.AddChar('a'), action)
}

func TestNonKeyEventsAreDropped(t *testing.T) {
	events := []*gott.Event{
		nil,
		{Type: gott.EventResize, Size: gott.Size{Rows: 10, Cols: 10}},
		{Type: gott.EventMouse},
		{Type: gott.EventPaste, Ch: 'q'},
		{Type: gott.EventOther, Ch: 'i'},
	}
	for _, mode := range []gott.Mode{gott.ModeNormal, gott.ModeInsert} {
		for _, variant := range []gott.Variant{gott.VariantStatusLine, gott.VariantMinimal} {
			for _, event := range events {
				_, ok := Dispatch(mode, event, variant)
				assert.False(t, ok, "mode %v event %+v", mode, event)
			}
		}
	}
}
