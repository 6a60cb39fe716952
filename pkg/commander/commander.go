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
	"log/slog"
	"unicode"

	gott "github.com/timburks/modal/pkg/types"
)

// Dispatch classifies an input event into at most one action.
// Events other than key presses never produce an action.
func Dispatch(mode gott.Mode, event *gott.Event, variant gott.Variant) (gott.Action, bool) {
	if event == nil || event.Type != gott.EventKey {
		return gott.Action{}, false
	}
	switch mode {
	case gott.ModeNormal:
		return dispatchNormalMode(event)
	case gott.ModeInsert:
		return dispatchInsertMode(event, variant)
	default:
		return gott.Action{}, false
	}
}

func dispatchNormalMode(event *gott.Event) (gott.Action, bool) {
	if event.Key != gott.KeyNone {
		switch event.Key {
		case gott.KeyArrowUp:
			return gott.MoveUp(), true
		case gott.KeyArrowDown:
			return gott.MoveDown(), true
		case gott.KeyArrowLeft:
			return gott.MoveLeft(), true
		case gott.KeyArrowRight:
			return gott.MoveRight(), true
		}
		return gott.Action{}, false
	}
	switch event.Ch {
	case 'q':
		return gott.Quit(), true
	case 'i':
		return gott.ChangeMode(gott.ModeInsert), true
	case 'k':
		return gott.MoveUp(), true
	case 'j':
		return gott.MoveDown(), true
	case 'h':
		return gott.MoveLeft(), true
	case 'l':
		return gott.MoveRight(), true
	}
	return gott.Action{}, false
}

func dispatchInsertMode(event *gott.Event, variant gott.Variant) (gott.Action, bool) {
	if event.Key != gott.KeyNone {
		switch event.Key {
		case gott.KeyEsc:
			return gott.ChangeMode(gott.ModeNormal), true
		case gott.KeyArrowUp:
			return gott.MoveUp(), true
		case gott.KeyArrowDown:
			return gott.MoveDown(), true
		case gott.KeyArrowLeft:
			return gott.MoveLeft(), true
		case gott.KeyArrowRight:
			return gott.MoveRight(), true
		case gott.KeyEnter:
			// the minimal editor has no line breaks
			if variant == gott.VariantStatusLine {
				return gott.NewLine(), true
			}
		}
		return gott.Action{}, false
	}
	if unicode.IsPrint(event.Ch) {
		return gott.AddChar(event.Ch), true
	}
	return gott.Action{}, false
}

// The Commander feeds input events to an editor.
type Commander struct {
	editor gott.Editor
	logger *slog.Logger
}

func NewCommander(e gott.Editor, logger *slog.Logger) *Commander {
	if logger == nil {
		logger = slog.Default()
	}
	return &Commander{editor: e, logger: logger}
}

// ProcessEvent dispatches an event in the editor's current mode and performs
// the resulting action, if any.
func (c *Commander) ProcessEvent(event *gott.Event) error {
	action, ok := Dispatch(c.editor.GetMode(), event, c.editor.GetVariant())
	if !ok {
		c.logger.Debug("event dropped", "mode", c.editor.GetMode(), "event", describe(event))
		return nil
	}
	return c.editor.Perform(action)
}

func describe(event *gott.Event) slog.Value {
	if event == nil {
		return slog.StringValue("nil")
	}
	return slog.GroupValue(
		slog.Int("type", event.Type),
		slog.Int("key", int(event.Key)),
		slog.String("ch", string(event.Ch)),
	)
}
