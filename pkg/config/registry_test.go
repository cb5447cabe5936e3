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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gotest.tools/assert"
)

func writeConfig(t *testing.T, dir string, name string, content string) {
	t.Helper()
	assert.NilError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoadRegistry(t *testing.T) {
	dir := t.TempDir()

	writeConfig(t, dir, "core.yaml", `
type: core
brand: Test Board
bind_address: ":9000"
session_ttl: 30m
`)

	writeConfig(t, dir, "links.yaml", `
type: link
name: Docs
category: Help
url: https://example.com/docs
`)

	writeConfig(t, dir, "access.yaml", `
type: access
views:
  - secret
policy: users
users:
  - alice
`)

	reg, err := LoadRegistryFromDirectory(dir)
	assert.NilError(t, err)

	core := reg.Core()
	assert.Equal(t, core.Brand, "Test Board")
	assert.Equal(t, core.BindAddress, ":9000")
	assert.Equal(t, core.SessionTTL, Duration(30*time.Minute))

	// unset fields keep the defaults
	assert.Equal(t, core.TemplateMode, "bootstrap")
	assert.Equal(t, core.HealthCheckTimeout, Duration(5*time.Second))

	links := reg.Records(LinkRecordType, "*")
	assert.Equal(t, len(links), 1)
	link := links[0].(*LinkRecord)
	assert.Equal(t, link.GetName(), "Docs")
	assert.Equal(t, link.Category, "Help")
	assert.Equal(t, link.URL, "https://example.com/docs")

	rec, ok := reg.SingleRecord(AccessRecordType, "secret")
	assert.Assert(t, ok)
	access := rec.(*AccessRecord)
	assert.Equal(t, access.Policy, AccessUsers)
	assert.DeepEqual(t, access.Users, []string{"alice"})

	// the access record targets only the secret view
	_, ok = reg.SingleRecord(AccessRecordType, "other")
	assert.Assert(t, !ok)

	assert.Equal(t, reg.OriginPath(), dir)
}

func TestUntargetedRecordsApplyEverywhere(t *testing.T) {
	dir := t.TempDir()

	writeConfig(t, dir, "core.yaml", "type: core\n")
	writeConfig(t, dir, "access.yaml", `
type: access
policy: authenticated
`)

	reg, err := LoadRegistryFromDirectory(dir)
	assert.NilError(t, err)

	rec, ok := reg.SingleRecord(AccessRecordType, "anything")
	assert.Assert(t, ok)
	assert.Equal(t, rec.(*AccessRecord).Policy, AccessAuthenticated)

	recs := reg.Records(AccessRecordType, "anything")
	assert.Equal(t, len(recs), 1)
}

func TestMissingCore(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "links.yaml", "type: link\nname: Docs\nurl: https://example.com\n")

	_, err := LoadRegistryFromDirectory(dir)
	assert.ErrorContains(t, err, "core configuration record")
}

func TestSingletonDuplicate(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "a.yaml", "type: core\n")
	writeConfig(t, dir, "b.yaml", "type: core\n")

	_, err := LoadRegistryFromDirectory(dir)
	assert.ErrorContains(t, err, "global singleton")
}

func TestOnePerViewDuplicate(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "core.yaml", "type: core\n")
	writeConfig(t, dir, "a.yaml", "type: access\nviews: [secret]\npolicy: public\n")
	writeConfig(t, dir, "b.yaml", "type: access\nviews: [secret]\npolicy: authenticated\n")

	_, err := LoadRegistryFromDirectory(dir)
	assert.ErrorContains(t, err, "multiple records of type access targeting the view secret")
}

func TestUnsupportedType(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bogus.yaml", "type: bogus\n")

	_, err := LoadRegistryFromDirectory(dir)
	assert.ErrorContains(t, err, "unsupported configuration type 'bogus'")
}

func TestDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{`"90s"`, 90 * time.Second},
		{`"1h30m"`, 90 * time.Minute},
		{"60000000000", time.Minute},
	}

	for _, test := range tests {
		var d Duration
		assert.NilError(t, d.UnmarshalJSON([]byte(test.in)))
		assert.Equal(t, d, Duration(test.want))
	}

	var d Duration
	err := d.UnmarshalJSON([]byte(`"not a duration"`))
	assert.ErrorContains(t, err, "invalid duration")

	b, err := Duration(time.Minute).MarshalJSON()
	assert.NilError(t, err)
	assert.Equal(t, string(b), `"1m0s"`)
}
