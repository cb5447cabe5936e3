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

var mainText = `package main

import (
	"os"

	"istio.io/pkg/log"

	"github.com/dashmgr/dashmgr/manager"
	"github.com/dashmgr/dashmgr/manager/templates"
	"github.com/dashmgr/dashmgr/pkg/config"

	"MODULE/views/first"
	"MODULE/views/second"
)

func main() {
	if err := log.Configure(log.DefaultOptions()); err != nil {
		log.Errorf("Unable to configure logging: %v", err)
	}

	reg, err := config.LoadRegistryFromDirectory("config")
	if err != nil {
		log.Errorf("Unable to load configuration: %v", err)
		os.Exit(1)
	}

	core := reg.Core()

	theme, err := templates.ByName(core.TemplateMode)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	m := manager.New(manager.Options{
		Brand:     core.Brand,
		Theme:     theme,
		AssetsDir: core.AssetsDir,
		HTTPSOnly: core.HTTPSOnly,
	})

	if err := m.AddView(first.New()); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if err := m.AddView(second.New()); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	// declared external links from config
	for _, rec := range reg.Records(config.LinkRecordType, "*") {
		l := rec.(*config.LinkRecord)
		if err := m.AddLink(l.GetName(), l.Category, l.URL); err != nil {
			log.Errorf("%v", err)
			os.Exit(1)
		}
	}

	if err := m.Run(core.BindAddress); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
`

var goModText = `module MODULE

go 1.24.0

require (
	github.com/dashmgr/dashmgr v1.0.0
	istio.io/pkg v0.0.0-20220906163156-71b6992ee9dc
)

// dashmgr isn't on a module proxy yet; point the build at a checkout:
//   go mod edit -replace github.com/dashmgr/dashmgr=/path/to/dashmgr
`

var coreConfigText = `type: core
brand: My Board
template_mode: bootstrap
bind_address: ":8050"
`

var customCSSText = `/* Project-wide style overrides served under /assets/. */
`

var firstViewText = `package first

import (
	"net/http"

	"github.com/dashmgr/dashmgr/manager"
)

// New returns the first dashboard: an ordinary http.Handler bound to menu
// metadata. The handler sees the full request path, mount prefix included.
func New() manager.View {
	h := http.NewServeMux()
	h.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h2>This is the first dashboard</h2>"))
	})

	return manager.NewBaseView("first", h,
		manager.WithTitle("First Dashboard"),
		manager.WithPrefix("/"),
	)
}
`

var secondViewText = `package second

import (
	"net/http"

	"github.com/dashmgr/dashmgr/manager"
)

// New returns the second dashboard, mounted under its own URL prefix.
func New() manager.View {
	h := http.NewServeMux()
	h.HandleFunc("/two/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<h2>This is the second dashboard</h2>"))
	})

	return manager.NewBaseView("second", h,
		manager.WithTitle("Second Dashboard"),
		manager.WithPrefix("/two"),
	)
}
`
