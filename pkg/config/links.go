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

// LinkRecordType identifies external navigation link records.
const LinkRecordType = "link"

// LinkRecord declares a navigation entry that points at an arbitrary URL and
// mounts nothing.
type LinkRecord struct {
	RecordBase

	// Menu category to group the link under, or empty for a top-level entry
	Category string `json:"category"`

	// Navigation target
	URL string `json:"url"`

	// Icon name to attach to the menu entry
	Icon string `json:"icon"`
}

func init() {
	RegisterType(LinkRecordType, MultiplePerView, func() Record {
		return &LinkRecord{}
	})
}
