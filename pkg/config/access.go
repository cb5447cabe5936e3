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

// AccessRecordType identifies view access policy records.
const AccessRecordType = "access"

// Access policy values.
const (
	AccessPublic        = "public"
	AccessAuthenticated = "authenticated"
	AccessUsers         = "users"
)

// AccessRecord declares who can see the targeted views. Views with no access
// record are public.
type AccessRecord struct {
	RecordBase

	// One of public, authenticated, or users
	Policy string `json:"policy"`

	// Logins allowed when the policy is users
	Users []string `json:"users"`
}

func init() {
	RegisterType(AccessRecordType, OnePerView, func() Record {
		return &AccessRecord{
			Policy: AccessPublic,
		}
	})
}
