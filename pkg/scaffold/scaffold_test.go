// Copyright 2023 Dash Manager Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestNewProject(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myboard")

	assert.NilError(t, New(dir))

	for _, f := range []string{
		"main.go",
		"go.mod",
		"config/core.yaml",
		"assets/custom.css",
		"views/first/first.go",
		"views/second/second.go",
	} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("expected %s to be generated: %v", f, err)
		}
	}

	// the module name is derived from the output directory
	b, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(b), "module myboard"), "unexpected go.mod:\n%s", b)
	assert.Assert(t, strings.Contains(string(b), "go mod edit -replace"), "missing replace instructions:\n%s", b)

	b, err = os.ReadFile(filepath.Join(dir, "main.go"))
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(string(b), "myboard/views/first"), "unexpected main.go:\n%s", b)
	assert.Assert(t, !strings.Contains(string(b), "MODULE"), "placeholder left in main.go:\n%s", b)
}

func TestExistingProjectUntouched(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "myboard")
	assert.NilError(t, New(dir))

	changed := filepath.Join(dir, "main.go")
	assert.NilError(t, os.WriteFile(changed, []byte("// local edits\n"), 0o644))

	assert.NilError(t, New(dir))

	b, err := os.ReadFile(changed)
	assert.NilError(t, err)
	assert.Equal(t, string(b), "// local edits\n")
}
