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

package cmd

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dashmgr/dashmgr/manager"
	"github.com/dashmgr/dashmgr/manager/templates"
	"github.com/dashmgr/dashmgr/manager/views/status"
	"github.com/dashmgr/dashmgr/pkg/auth"
	"github.com/dashmgr/dashmgr/pkg/cmdutil"
	"github.com/dashmgr/dashmgr/pkg/config"
	"github.com/dashmgr/dashmgr/pkg/health"
)

func demoCmd() *cobra.Command {
	return cmdutil.Run("demo", "Starts a demo board with two sample views", 0,
		cmdutil.ConfigPath|
			cmdutil.OAuthClientID|
			cmdutil.OAuthClientSecret, runDemo)
}

func runDemo(reg *config.Registry, secrets *cmdutil.Secrets) error {
	core := reg.Core()

	theme, err := templates.ByName(core.TemplateMode)
	if err != nil {
		return err
	}

	sessions := auth.NewSessionStore(time.Duration(core.SessionTTL))
	authorizer := auth.NewAuthorizer(sessions, reg)

	m := manager.New(manager.Options{
		Brand:     core.Brand,
		Theme:     theme,
		AssetsDir: core.AssetsDir,
		HTTPSOnly: core.HTTPSOnly,
		Deny:      auth.RedirectToLogin(sessions, auth.LoginPath),
	})

	// login flow
	login := auth.NewHandler(secrets.OAuthClientID, secrets.OAuthClientSecret, sessions)
	login.Routes(m.Router())

	// the two sample views
	for _, v := range []manager.View{
		manager.NewBaseView("first", textPage("This is the first dashboard"),
			manager.WithTitle("First Dashboard"),
			manager.WithCategory("Dashboards"),
			manager.WithAccessCheck(authorizer.AccessCheck("first"))),
		manager.NewBaseView("second", textPage("This is the second dashboard"),
			manager.WithTitle("Second Dashboard"),
			manager.WithCategory("Dashboards"),
			manager.WithPrefix("/two"),
			manager.WithAccessCheck(authorizer.AccessCheck("second"))),
	} {
		if err := m.AddView(v); err != nil {
			return fmt.Errorf("unable to add view: %v", err)
		}
	}

	// declared external links
	var targets []health.Target
	for _, rec := range reg.Records(config.LinkRecordType, "*") {
		l := rec.(*config.LinkRecord)
		if err := m.AddLink(l.GetName(), l.Category, l.URL); err != nil {
			return fmt.Errorf("unable to add link: %v", err)
		}
		targets = append(targets, health.Target{Name: l.GetName(), URL: l.URL})
	}

	// probe the mounted views through the front door
	base := "http://" + core.BindAddress
	if strings.HasPrefix(core.BindAddress, ":") {
		base = "http://localhost" + core.BindAddress
	}
	for _, v := range m.Views() {
		targets = append(targets, health.Target{Name: v.Name(), URL: base + v.Prefix()})
	}

	checker, err := health.NewChecker(targets, health.Options{
		Schedule: core.HealthCheckSchedule,
		Timeout:  time.Duration(core.HealthCheckTimeout),
	})
	if err != nil {
		return err
	}

	if err := m.AddView(status.New(checker)); err != nil {
		return fmt.Errorf("unable to add the status view: %v", err)
	}

	checker.Start()
	defer checker.Stop()

	return m.Run(core.BindAddress)
}

func textPage(text string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = fmt.Fprintf(w, "<h2>%s</h2>", text)
	})
}
