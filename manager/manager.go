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

package manager

import (
	"fmt"
	"net"
	"net/http"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/gorilla/mux"

	"github.com/dashmgr/dashmgr/manager/templates"
	"github.com/dashmgr/dashmgr/pkg/util"
)

// Manager is the collection of views mounted on a single server. It owns the
// route table, the shared navigation model built from the views' declared
// metadata, and the theme used to wrap every page.
type Manager struct {
	brand string
	theme templates.Theme

	primaryTemplates  *template.Template
	notFoundTemplates *template.Template
	errorTemplates    *template.Template

	htmlRouter *mux.Router
	apiRouter  *mux.Router

	menu     *menu
	views    []View
	items    map[string]*Item
	prefixes map[string]string

	rc   RenderContext
	deny http.Handler

	finalized bool
	listener  net.Listener
}

// Options configures a Manager.
type Options struct {
	// Brand is shown in the navigation bar and in window titles.
	Brand string

	// Theme selects the rendering strategy for the navigation bar, page
	// container, and footer. Defaults to the Bootstrap theme.
	Theme templates.Theme

	// Deny is invoked for requests to views the calling user cannot access.
	// Defaults to a themed 403 page; replace it to redirect unauthorized
	// users to a login page.
	Deny http.Handler

	// AssetsDir is a directory of static files served under /assets/.
	// Defaults to "assets".
	AssetsDir string

	// HTTPSOnly sends an https redirect when the X-Forwarded-Proto header
	// says the request arrived over plain HTTP.
	HTTPSOnly bool
}

// New creates an empty manager ready to accept views.
func New(opt Options) *Manager {
	theme := opt.Theme
	if theme.Base == "" {
		theme = templates.Bootstrap
	}

	router := mux.NewRouter()

	if opt.HTTPSOnly {
		// we only want https
		router.Headers("X-Forwarded-Proto", "HTTP").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, fmt.Sprintf("https://%s%s", r.Host, r.URL), http.StatusPermanentRedirect)
		})
	}

	m := &Manager{
		brand:      opt.Brand,
		theme:      theme,
		htmlRouter: router,
		apiRouter:  router.PathPrefix("/api").Subrouter(),
		menu:       newMenu(),
		items:      make(map[string]*Item),
		prefixes:   make(map[string]string),
	}

	funcs := template.FuncMap{
		"dict": dict,
	}

	// primary templates
	m.primaryTemplates = template.Must(template.New("base").Funcs(funcs).Parse(theme.Base))
	_ = template.Must(m.primaryTemplates.Parse(templates.PrimaryTemplate))
	_ = template.Must(m.primaryTemplates.Parse(theme.Navbar))
	_ = template.Must(m.primaryTemplates.Parse(theme.Footer))

	// 'not found' templates
	m.notFoundTemplates = template.Must(template.New("base").Funcs(funcs).Parse(theme.Base))
	_ = template.Must(m.notFoundTemplates.Parse(templates.NotFoundTemplate))
	_ = template.Must(m.notFoundTemplates.Parse(theme.Navbar))
	_ = template.Must(m.notFoundTemplates.Parse(theme.Footer))

	// error templates
	m.errorTemplates = template.Must(template.New("base").Funcs(funcs).Parse(theme.Base))
	_ = template.Must(m.errorTemplates.Parse(templates.ErrorTemplate))
	_ = template.Must(m.errorTemplates.Parse(theme.Navbar))
	_ = template.Must(m.errorTemplates.Parse(theme.Footer))

	m.rc = newRenderContext(nil, m.brand, m.menu, m.primaryTemplates, m.errorTemplates)

	m.deny = opt.Deny
	if m.deny == nil {
		m.deny = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			m.rc.RenderHTMLError(w, r, util.HTTPErrorf(http.StatusForbidden, "you do not have access to this page"))
		})
	}

	assets := opt.AssetsDir
	if assets == "" {
		assets = "assets"
	}
	m.RegisterStaticDir(assets, "/assets/")

	// manager-level API surface
	m.apiRouter.Path("/menu").Methods("GET").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.rc.RenderJSON(w, http.StatusOK, m.Menu(r))
	})
	m.apiRouter.Path("/views").Methods("GET").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.rc.RenderJSON(w, http.StatusOK, m.viewInfos(r))
	})

	return m
}

// ViewInfo describes a registered view to API clients.
type ViewInfo struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	Category   string `json:"category,omitempty"`
	Prefix     string `json:"prefix"`
	Accessible bool   `json:"accessible"`
}

func (m *Manager) viewInfos(req *http.Request) []ViewInfo {
	out := make([]ViewInfo, 0, len(m.views))
	for _, v := range m.views {
		out = append(out, ViewInfo{
			Name:       v.Name(),
			Title:      v.Title(),
			Category:   v.Category(),
			Prefix:     v.Prefix(),
			Accessible: v.IsAccessible(req),
		})
	}
	return out
}

// AddView registers a view: the view's routes are mounted under its prefix
// and a navigation entry is added under the view's category.
func (m *Manager) AddView(v View) error {
	if m.finalized {
		return fmt.Errorf("can't add view %s, the manager is already serving", v.Name())
	}

	if _, ok := m.items[v.Name()]; ok {
		return fmt.Errorf("a view named %s is already registered", v.Name())
	}

	prefix, err := normalizePrefix(v.Prefix())
	if err != nil {
		return fmt.Errorf("view %s: %v", v.Name(), err)
	}

	if other, ok := m.prefixes[prefix]; ok {
		return fmt.Errorf("view %s: mount prefix %s is already used by view %s", v.Name(), prefix, other)
	}
	m.prefixes[prefix] = v.Name()

	m.items[v.Name()] = m.menu.addView(v)
	m.views = append(m.views, v)

	return nil
}

// AddLink adds a bare navigation entry that points at an arbitrary URL,
// mounting nothing.
func (m *Manager) AddLink(name string, category string, url string) error {
	if m.finalized {
		return fmt.Errorf("can't add link %s, the manager is already serving", name)
	}

	m.menu.addLink(name, category, url)
	return nil
}

// Menu returns the navigation entries visible to the calling user.
func (m *Manager) Menu(req *http.Request) []*ItemInfo {
	return m.menu.visible(req)
}

// Views returns the registered views in registration order.
func (m *Manager) Views() []View {
	return m.views
}

// Router returns the manager's top-level router so additional handlers
// (login flows, webhooks) can be attached before the manager starts serving.
func (m *Manager) Router() *mux.Router {
	return m.htmlRouter
}

// Handler finalizes the route table and returns it, letting the manager be
// embedded in a larger server.
func (m *Manager) Handler() http.Handler {
	m.finalize()
	return m.htmlRouter
}

// finalize installs the view routes. Longer prefixes are installed first so a
// view mounted at "/" can't shadow its siblings, and the not-found fallback
// goes in last.
func (m *Manager) finalize() {
	if m.finalized {
		return
	}
	m.finalized = true

	ordered := make([]View, len(m.views))
	copy(ordered, m.views)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].Prefix()) > len(ordered[j].Prefix())
	})

	for _, v := range ordered {
		prefix, _ := normalizePrefix(v.Prefix())

		htmlSub := m.htmlRouter.PathPrefix(prefix).Subrouter()
		apiSub := m.apiRouter.PathPrefix("/" + v.Name()).Subrouter()

		guard := m.accessMiddleware(v)
		htmlSub.Use(guard)
		apiSub.Use(guard)

		rc := newRenderContext(m.items[v.Name()], m.brand, m.menu, m.primaryTemplates, m.errorTemplates)
		v.Configure(htmlSub, apiSub, rc)

		scope.Infof("Mounted view %s at %s", v.Name(), prefix)
	}

	m.htmlRouter.StrictSlash(true).
		PathPrefix("/").
		Methods("GET").
		Handler(notFound{brand: m.brand, menu: m.menu, templates: m.notFoundTemplates})
}

func (m *Manager) accessMiddleware(v View) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.IsAccessible(r) {
				m.deny.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RegisterStaticDir serves the files in fsPath under sitePath.
func (m *Manager) RegisterStaticDir(fsPath string, sitePath string) {
	m.htmlRouter.
		PathPrefix(sitePath).
		Methods("GET").
		HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.StripPrefix(sitePath, http.FileServer(http.Dir(fsPath))).ServeHTTP(w, r)
		})
}

// RegisterStaticFile serves the single file fsPath at sitePath.
func (m *Manager) RegisterStaticFile(fsPath string, sitePath string) {
	m.htmlRouter.
		Path(sitePath).
		Methods("GET").
		HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.RequestURI, ".json") {
				w.Header().Set("Content-Type", "application/json")
			}
			http.ServeFile(w, r, fsPath)
		})
}

// Run finalizes the route table and serves it on the given address until the
// manager is closed.
func (m *Manager) Run(addr string) error {
	handler := m.Handler()

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("unable to listen on %s: %v", addr, err)
	}
	m.listener = listener

	httpServer := http.Server{
		Addr:           listener.Addr().String(),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
		Handler:        handler,
	}

	scope.Infof("Listening on %s", listener.Addr())

	err = httpServer.Serve(listener)
	if err != http.ErrServerClosed {
		return fmt.Errorf("listening on %s failed: %v", addr, err)
	}

	return nil
}

// Close shuts down a running manager.
func (m *Manager) Close() {
	if m.listener != nil {
		if err := m.listener.Close(); err != nil {
			scope.Warnf("Error shutting down: %v", err)
		}
	}
}

func normalizePrefix(prefix string) (string, error) {
	if prefix == "" || !strings.HasPrefix(prefix, "/") {
		return "", fmt.Errorf("mount prefix %q must start with /", prefix)
	}

	if prefix == "/" {
		return "/", nil
	}

	return "/" + strings.Trim(prefix, "/"), nil
}
