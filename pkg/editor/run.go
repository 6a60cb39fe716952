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

	"github.com/timburks/modal/pkg/commander"
)

// Run clears the screen and processes events until a quit action or a
// terminal failure. The terminal must already be initialized.
func (e *Editor) Run() error {
	if err := e.Start(); err != nil {
		return err
	}
	c := commander.NewCommander(e, e.logger)
	for e.IsRunning() {
		if err := e.Render(); err != nil {
			return err
		}
		event, err := e.terminal.ReadEvent()
		if err != nil {
			return fmt.Errorf("read event: %w", err)
		}
		if err = c.ProcessEvent(event); err != nil {
			return err
		}
	}
	e.logger.Info("editor stopped", "cursor", e.cursor, "mode", e.mode)
	return nil
}

// Start clears the screen and shows the cursor style of the current mode.
func (e *Editor) Start() error {
	if err := e.terminal.Clear(); err != nil {
		return fmt.Errorf("clear screen: %w", err)
	}
	if err := e.terminal.SetCursorStyle(e.mode.CursorStyle()); err != nil {
		return fmt.Errorf("set cursor style: %w", err)
	}
	if err := e.terminal.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
