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
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timburks/modal/pkg/config"
	"github.com/timburks/modal/pkg/editor"
	gott "github.com/timburks/modal/pkg/types"
)

func writeScript(t *testing.T, source string) string {
	path := filepath.Join(t.TempDir(), "script.lisp")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))
	return path
}

func TestEvalScript(t *testing.T) {
	path := writeScript(t, `
(key "i")
(type-text "hello")
(key "esc")
(cursor)
`)
	var out bytes.Buffer
	err := evalScript(&out, path, config.ScriptConfig{Width: 40, Height: 6},
		editor.Options{Variant: gott.VariantStatusLine, Label: "[scratch]"})
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 8)
	assert.Equal(t, "hello", lines[0])
	assert.True(t, strings.HasPrefix(lines[4], " NORMAL "), lines[4])
	assert.True(t, strings.HasSuffix(lines[4], " 1:6"), lines[4])
	assert.Equal(t, "cursor 0,5", lines[6])
	assert.Equal(t, "=> 0,5", lines[7])
}

func TestEvalScriptMinimal(t *testing.T) {
	path := writeScript(t, `(insert-mode) (type-text "ab") (key "enter") (type-text "c")`)
	var out bytes.Buffer
	err := evalScript(&out, path, config.ScriptConfig{Width: 20, Height: 4},
		editor.Options{Variant: gott.VariantMinimal})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "abc\n\n\n\ncursor 0,3\n"), out.String())
}

func TestEvalScriptErrors(t *testing.T) {
	var out bytes.Buffer
	err := evalScript(&out, filepath.Join(t.TempDir(), "missing.lisp"), config.ScriptConfig{Width: 20, Height: 4}, editor.Options{})
	assert.Error(t, err)

	err = evalScript(&out, writeScript(t, `(add-char "too long")`), config.ScriptConfig{Width: 20, Height: 4}, editor.Options{})
	assert.Error(t, err)
	assert.Empty(t, out.String())
}
