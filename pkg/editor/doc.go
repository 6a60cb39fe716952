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

// Package editor implements the modal editing state machine of modal.
// An editor owns a mode and a single cursor; it performs actions produced by
// the commander and writes their side effects to its terminal.
// There is no text buffer: characters are written straight to the screen and
// wrapped lines are purely visual.
package editor
