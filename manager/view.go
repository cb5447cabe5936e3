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
	"net/http"

	"github.com/gorilla/mux"
)

// View represents a single sub-application mounted on a Manager. A view keeps
// its own routes; the manager only consumes the declared metadata to build
// the shared navigation model and to place the routes under the mount prefix.
type View interface {
	// The name of this view, used with URLs and config targeting.
	Name() string

	// Title returns the title for the view, which is used in the navigation
	// bar and window title.
	Title() string

	// Description returns a general description for the view.
	Description() string

	// Category returns the menu category the view is grouped under. An empty
	// category makes the view a top-level navigation entry.
	Category() string

	// Prefix returns the URL prefix the view's routes are mounted under.
	Prefix() string

	// IsAccessible reports whether the view may be shown to the calling user.
	IsAccessible(req *http.Request) bool

	// Configure installs the view's routes.
	Configure(htmlRouter *mux.Router, apiRouter *mux.Router, rc RenderContext)
}

// AccessCheck is a user-overridable accessibility predicate.
type AccessCheck func(req *http.Request) bool

// BaseView binds an existing http.Handler to menu metadata, producing a View.
// The handler receives the full request path, mount prefix included, so
// sub-applications built around absolute routes keep working unchanged.
type BaseView struct {
	name        string
	title       string
	description string
	category    string
	prefix      string
	icon        string
	handler     http.Handler
	accessible  AccessCheck
}

// ViewOption adjusts the metadata of a BaseView.
type ViewOption func(*BaseView)

// WithTitle overrides the navigation title (defaults to the view name).
func WithTitle(title string) ViewOption {
	return func(v *BaseView) { v.title = title }
}

// WithDescription sets the view description.
func WithDescription(description string) ViewOption {
	return func(v *BaseView) { v.description = description }
}

// WithCategory places the view under a menu category.
func WithCategory(category string) ViewOption {
	return func(v *BaseView) { v.category = category }
}

// WithPrefix overrides the mount prefix (defaults to "/" + name).
func WithPrefix(prefix string) ViewOption {
	return func(v *BaseView) { v.prefix = prefix }
}

// WithIcon attaches an icon name to the view's menu entry.
func WithIcon(icon string) ViewOption {
	return func(v *BaseView) { v.icon = icon }
}

// WithAccessCheck installs the accessibility predicate consulted for every
// request to the view and for every rendering of the menu.
func WithAccessCheck(check AccessCheck) ViewOption {
	return func(v *BaseView) { v.accessible = check }
}

// NewBaseView wraps a sub-application in view metadata.
func NewBaseView(name string, handler http.Handler, opts ...ViewOption) *BaseView {
	v := &BaseView{
		name:    name,
		title:   name,
		prefix:  "/" + name,
		handler: handler,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

func (v *BaseView) Name() string        { return v.name }
func (v *BaseView) Title() string       { return v.title }
func (v *BaseView) Description() string { return v.description }
func (v *BaseView) Category() string    { return v.category }
func (v *BaseView) Prefix() string      { return v.prefix }
func (v *BaseView) Icon() string        { return v.icon }

func (v *BaseView) IsAccessible(req *http.Request) bool {
	if v.accessible == nil {
		return true
	}
	return v.accessible(req)
}

func (v *BaseView) Configure(htmlRouter *mux.Router, apiRouter *mux.Router, rc RenderContext) {
	htmlRouter.PathPrefix("").Handler(v.handler)
}
