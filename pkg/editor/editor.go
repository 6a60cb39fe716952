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

package editor

import (
	"fmt"
	"log/slog"

	"github.com/timburks/modal/pkg/screen"
	gott "github.com/timburks/modal/pkg/types"
)

// Options configure a new Editor.
type Options struct {
	Variant gott.Variant
	Label   string // status line placeholder
	Logger  *slog.Logger
}

// The Editor holds the mode and cursor and is the only writer to its terminal.
type Editor struct {
	terminal gott.Terminal
	screen   *screen.Screen
	logger   *slog.Logger
	variant  gott.Variant
	mode     gott.Mode
	cursor   gott.Point
	size     gott.Size // terminal size when the editor was created
	running  bool
}

// NewEditor creates an editor in normal mode at the top-left corner.
// The terminal size is read once here; later resizes are not tracked.
func NewEditor(t gott.Terminal, options Options) (*Editor, error) {
	size, err := t.Size()
	if err != nil {
		return nil, fmt.Errorf("read terminal size: %w", err)
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Editor{
		terminal: t,
		screen:   screen.NewScreen(t, options.Variant, options.Label),
		logger:   logger,
		variant:  options.Variant,
		mode:     gott.ModeNormal,
		size:     size,
		running:  true,
	}, nil
}

func (e *Editor) GetMode() gott.Mode {
	return e.mode
}

func (e *Editor) GetCursor() gott.Point {
	return e.cursor
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.cursor = cursor
}

func (e *Editor) GetSize() gott.Size {
	return e.size
}

func (e *Editor) GetVariant() gott.Variant {
	return e.variant
}

func (e *Editor) IsRunning() bool {
	return e.running
}

// Perform applies one action. State changes only after the action's
// terminal side effects have been queued, so a failed action leaves the
// editor as it was.
func (e *Editor) Perform(action gott.Action) error {
	switch action.Kind {
	case gott.ActionQuit:
		e.running = false
	case gott.ActionChangeMode:
		// the cursor style always follows the mode
		if err := e.terminal.SetCursorStyle(action.Mode.CursorStyle()); err != nil {
			return fmt.Errorf("set cursor style: %w", err)
		}
		e.logger.Debug("mode changed", "from", e.mode, "to", action.Mode)
		e.mode = action.Mode
	case gott.ActionMoveUp:
		if e.cursor.Row > 0 {
			e.cursor.Row--
		}
	case gott.ActionMoveDown:
		e.cursor.Row++
	case gott.ActionMoveLeft:
		if e.cursor.Col > 0 {
			e.cursor.Col--
		}
	case gott.ActionMoveRight:
		e.cursor.Col++
	case gott.ActionAddChar:
		return e.addChar(action.Ch)
	case gott.ActionNewLine:
		e.cursor.Col = 0
		e.cursor.Row++
	default:
		e.logger.Warn("unknown action", "action", action)
	}
	return nil
}

// addChar writes c at the cursor and advances it, wrapping to the next row
// once the cursor passes the right edge of the terminal.
func (e *Editor) addChar(c rune) error {
	if err := e.terminal.MoveTo(e.cursor); err != nil {
		return fmt.Errorf("move cursor: %w", err)
	}
	if err := e.terminal.Write(string(c), gott.StyleDefault); err != nil {
		return fmt.Errorf("write %q: %w", c, err)
	}
	e.cursor.Col++
	if e.cursor.Col > e.size.Cols {
		e.cursor.Row++
		e.cursor.Col = 0
	}
	return nil
}

// Render draws the editor on its terminal.
func (e *Editor) Render() error {
	return e.screen.Render(e)
}
