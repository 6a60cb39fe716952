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

// Package commander converts user input and scripts into actions for the editor.
// Key bindings are scoped to a mode: the arrows move in every mode, but a
// letter is a command in normal mode and text in insert mode.
// Scripts are lisp programs whose primitives perform actions directly or
// feed keys through the same bindings the keyboard uses.
package commander
