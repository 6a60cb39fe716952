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
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/steelseries/golisp"

	gott "github.com/timburks/modal/pkg/types"
)

// golisp primitives are global, so scripts run against one commander at a time.
var scriptCommander *Commander

func init() {
	for name, action := range map[string]func() gott.Action{
		"up":          gott.MoveUp,
		"down":        gott.MoveDown,
		"left":        gott.MoveLeft,
		"right":       gott.MoveRight,
		"newline":     gott.NewLine,
		"quit":        gott.Quit,
		"normal-mode": func() gott.Action { return gott.ChangeMode(gott.ModeNormal) },
		"insert-mode": func() gott.Action { return gott.ChangeMode(gott.ModeInsert) },
	} {
		golisp.MakePrimitiveFunction(name, "0",
			func(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
				return perform(action())
			})
	}
	golisp.MakePrimitiveFunction("add-char", "1", AddCharImpl)
	golisp.MakePrimitiveFunction("key", "1", KeyImpl)
	golisp.MakePrimitiveFunction("type-text", "1", TypeImpl)
	golisp.MakePrimitiveFunction("cursor", "0", CursorImpl)
	golisp.MakePrimitiveFunction("mode", "0", ModeImpl)
}

func target() (*Commander, error) {
	if scriptCommander == nil {
		return nil, errors.New("no editor is attached to the script")
	}
	if !scriptCommander.editor.IsRunning() {
		return nil, errors.New("editor has quit")
	}
	return scriptCommander, nil
}

func cursorString(e gott.Editor) *golisp.Data {
	cursor := e.GetCursor()
	return golisp.StringWithValue(fmt.Sprintf("%d,%d", cursor.Row, cursor.Col))
}

func perform(action gott.Action) (*golisp.Data, error) {
	c, err := target()
	if err != nil {
		return nil, err
	}
	if err = c.editor.Perform(action); err != nil {
		return nil, err
	}
	return cursorString(c.editor), nil
}

func stringArg(args *golisp.Data, name string) (string, error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(val), nil
}

// AddCharImpl performs (add-char "c") regardless of mode.
func AddCharImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	s, err := stringArg(args, "add-char")
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(s) != 1 {
		return nil, fmt.Errorf("add-char requires exactly one character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return perform(gott.AddChar(r))
}

// KeyImpl presses one key, named like "esc" or given as a single character.
func KeyImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	name, err := stringArg(args, "key")
	if err != nil {
		return nil, err
	}
	var event *gott.Event
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		event = gott.CharEvent(r)
	} else if k, ok := gott.KeyNamed(name); ok {
		event = gott.KeyEvent(k)
	} else {
		return nil, fmt.Errorf("unknown key %q", name)
	}
	c, err := target()
	if err != nil {
		return nil, err
	}
	if err = c.ProcessEvent(event); err != nil {
		return nil, err
	}
	return cursorString(c.editor), nil
}

// TypeImpl presses a key for each character of its argument, stopping early
// if one of them quits the editor.
func TypeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	text, err := stringArg(args, "type-text")
	if err != nil {
		return nil, err
	}
	c, err := target()
	if err != nil {
		return nil, err
	}
	for _, r := range text {
		if err = c.ProcessEvent(gott.CharEvent(r)); err != nil {
			return nil, err
		}
		if !c.editor.IsRunning() {
			break
		}
	}
	return cursorString(c.editor), nil
}

func CursorImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if scriptCommander == nil {
		return nil, errors.New("no editor is attached to the script")
	}
	return cursorString(scriptCommander.editor), nil
}

func ModeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	if scriptCommander == nil {
		return nil, errors.New("no editor is attached to the script")
	}
	return golisp.StringWithValue(scriptCommander.editor.GetMode().String()), nil
}

// ParseEval runs a lisp script against the commander's editor and returns
// the printed value of its last expression.
func (c *Commander) ParseEval(script string) (string, error) {
	scriptCommander = c
	defer func() { scriptCommander = nil }()

	value, err := golisp.ParseAndEval("(begin\n" + script + "\n)")
	if err != nil {
		c.logger.Error("script failed", "err", err)
		return "", err
	}
	if value == nil {
		return "", nil
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value), nil
	}
	return golisp.String(value), nil
}
