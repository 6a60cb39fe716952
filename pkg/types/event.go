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

// Event types
const (
	EventKey = iota
	EventResize
	EventMouse
	EventPaste
	EventOther
)

// Key identifies a non-character key. Character keys arrive with Key set to
// KeyNone and the character in Ch.
type Key int

// Keys
const (
	KeyNone Key = iota
	KeyEsc
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
	KeyCtrl
	KeyUnsupported
)

// An Event is one input event read from the terminal.
// For EventKey, Key is KeyNone when Ch holds a character; space is reported
// as the character ' '. Control chords are reported as KeyCtrl with the
// lower-case letter in Ch.
type Event struct {
	Type int
	Key  Key
	Ch   rune
	Size Size // for EventResize
}

// CharEvent returns the key event for typing c.
func CharEvent(c rune) *Event {
	return &Event{Type: EventKey, Ch: c}
}

// KeyEvent returns the key event for pressing k.
func KeyEvent(k Key) *Event {
	return &Event{Type: EventKey, Key: k}
}

var keyNames = map[string]Key{
	"esc":       KeyEsc,
	"escape":    KeyEsc,
	"enter":     KeyEnter,
	"return":    KeyEnter,
	"tab":       KeyTab,
	"backspace": KeyBackspace,
	"delete":    KeyDelete,
	"up":        KeyArrowUp,
	"down":      KeyArrowDown,
	"left":      KeyArrowLeft,
	"right":     KeyArrowRight,
	"home":      KeyHome,
	"end":       KeyEnd,
	"pgup":      KeyPgup,
	"pgdn":      KeyPgdn,
}

// KeyNamed looks up a key by its lower-case name, e.g. "esc" or "up".
func KeyNamed(name string) (Key, bool) {
	k, ok := keyNames[name]
	return k, ok
}
