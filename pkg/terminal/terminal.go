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

// Package terminal connects modal to terminal devices.
// Each backend implements types.Terminal; the Recorder implements it in
// memory for tests and headless scripts.
package terminal

import (
	"errors"
	"fmt"

	gott "github.com/timburks/modal/pkg/types"
)

// Backend names
const (
	BackendTcell   = "tcell"
	BackendTermbox = "termbox"
)

// New creates an uninitialized terminal for the named backend.
func New(backend string) (gott.Terminal, error) {
	switch backend {
	case BackendTcell, "":
		t, err := NewTcell()
		if err != nil {
			return nil, err
		}
		return t, nil
	case BackendTermbox:
		return NewTermbox(), nil
	default:
		return nil, fmt.Errorf("unknown terminal backend %q", backend)
	}
}

// Session initializes t, runs fn and restores t on every way out of fn,
// including panics. A failure to restore is joined to fn's error.
func Session(t gott.Terminal, fn func(gott.Terminal) error) (err error) {
	if err = t.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	defer func() {
		if cerr := t.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("restore terminal: %w", cerr))
		}
	}()
	return fn(t)
}

// cellWidth is the number of columns r occupies, never less than one.
func cellWidth(r rune) int {
	if w := runeWidth(r); w > 0 {
		return w
	}
	return 1
}
