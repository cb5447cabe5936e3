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

import "time"

const coreRecordType = "core"

// CoreRecord is the required singleton describing the board itself.
type CoreRecord struct {
	RecordBase

	// Address the server listens on
	BindAddress string `json:"bind_address"`

	// Brand shown in the navigation bar and in window titles
	Brand string `json:"brand"`

	// Template mode used to render the shell (bootstrap or mantine)
	TemplateMode string `json:"template_mode"`

	// Send an https redirect when x-forwarded-proto says the request arrived over plain HTTP
	HTTPSOnly bool `json:"https_only"`

	// Directory of static files served under /assets/
	AssetsDir string `json:"assets_dir"`

	// The amount of time a login session is kept around before being discarded
	SessionTTL Duration `json:"session_ttl"`

	// Cron schedule for the view health checker
	HealthCheckSchedule string `json:"health_check_schedule"`

	// How long to wait on a single health probe
	HealthCheckTimeout Duration `json:"health_check_timeout"`
}

func init() {
	RegisterType(coreRecordType, GlobalSingleton, func() Record {
		return &CoreRecord{
			BindAddress:         ":8080",
			Brand:               "Dash Manager",
			TemplateMode:        "bootstrap",
			AssetsDir:           "assets",
			SessionTTL:          Duration(12 * time.Hour),
			HealthCheckSchedule: "@every 1m",
			HealthCheckTimeout:  Duration(5 * time.Second),
		}
	})
}
