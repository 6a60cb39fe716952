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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModes(t *testing.T) {
	assert.Equal(t, "NORMAL", ModeNormal.String())
	assert.Equal(t, "INSERT", ModeInsert.String())
	assert.Equal(t, CursorSteadyBlock, ModeNormal.CursorStyle())
	assert.Equal(t, CursorBlinkingBar, ModeInsert.CursorStyle())
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("minimal")
	assert.NoError(t, err)
	assert.Equal(t, VariantMinimal, v)

	v, err = ParseVariant("statusline")
	assert.NoError(t, err)
	assert.Equal(t, VariantStatusLine, v)
	assert.Equal(t, "statusline", v.String())

	_, err = ParseVariant("fancy")
	assert.Error(t, err)
}

func TestKeyNamed(t *testing.T) {
	k, ok := KeyNamed("esc")
	assert.True(t, ok)
	assert.Equal(t, KeyEsc, k)

	_, ok = KeyNamed("hyper")
	assert.False(t, ok)
}

func TestActionStrings(t *testing.T) {
	assert.Equal(t, "change-mode INSERT", ChangeMode(ModeInsert).String())
	assert.Equal(t, `add-char 'x'`, AddChar('x').String())
	assert.Equal(t, "newline", NewLine().String())
}
