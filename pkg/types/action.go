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

import "fmt"

// ActionKind identifies an Action.
type ActionKind int

// Action kinds
const (
	ActionQuit ActionKind = iota
	ActionChangeMode
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight
	ActionAddChar
	ActionNewLine
)

// An Action is one unit of intended change, produced from an input event and
// consumed once by the editor. Mode is only meaningful for ActionChangeMode
// and Ch only for ActionAddChar.
type Action struct {
	Kind ActionKind
	Mode Mode
	Ch   rune
}

func Quit() Action { return Action{Kind: ActionQuit} }
func ChangeMode(m Mode) Action { return Action{Kind: ActionChangeMode, Mode: m} }
func MoveUp() Action { return Action{Kind: ActionMoveUp} }
func MoveDown() Action { return Action{Kind: ActionMoveDown} }
func MoveLeft() Action { return Action{Kind: ActionMoveLeft} }
func MoveRight() Action { return Action{Kind: ActionMoveRight} }
func AddChar(c rune) Action { return Action{Kind: ActionAddChar, Ch: c} }
func NewLine() Action { return Action{Kind: ActionNewLine} }

func (a Action) String() string {
	switch a.Kind {
	case ActionQuit:
		return "quit"
	case ActionChangeMode:
		return "change-mode " + a.Mode.String()
	case ActionMoveUp:
		return "up"
	case ActionMoveDown:
		return "down"
	case ActionMoveLeft:
		return "left"
	case ActionMoveRight:
		return "right"
	case ActionAddChar:
		return fmt.Sprintf("add-char %q", a.Ch)
	case ActionNewLine:
		return "newline"
	default:
		return fmt.Sprintf("action(%d)", int(a.Kind))
	}
}
