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
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"text/template"

	"github.com/dashmgr/dashmgr/pkg/util"
	"istio.io/pkg/log"
)

// RenderContext exposes methods to let views produce output wrapped in the
// shared shell (navigation bar, page container, footer).
type RenderContext interface {
	// Render an HTML page.
	//
	// The override title is optional and can be used to replace the canonical
	// title (which is supplied by the view).
	//
	// The content fragment represents the main chunk of view-HTML to insert
	// into the page container.
	//
	// The optional control fragment represents a chunk of HTML to insert into
	// the "control section" of the page container and is where page-level
	// commands & controls can be inserted.
	RenderHTML(w http.ResponseWriter, req *http.Request, overrideTitle string, contentFragment string, controlFragment string)

	// Generate an HTML error page, displaying the given error.
	RenderHTMLError(w http.ResponseWriter, req *http.Request, err error)

	// Generate a chunk of JSON.
	RenderJSON(w http.ResponseWriter, statusCode int, data interface{})
}

type renderContext struct {
	item             *Item // nil for manager-level pages
	brand            string
	menu             *menu
	primaryTemplates *template.Template
	errorTemplates   *template.Template
}

type templateInfo struct {
	Brand       string
	Title       string
	Description string
	URL         string
	Content     string
	Control     string
	Menu        []*ItemInfo
}

var scope = log.RegisterScope("manager", "The view and menu composition layer.", 0)

func newRenderContext(item *Item, brand string, menu *menu, primaryTemplates *template.Template, errorTemplates *template.Template) RenderContext {
	return renderContext{
		item:             item,
		brand:            brand,
		menu:             menu,
		primaryTemplates: primaryTemplates,
		errorTemplates:   errorTemplates,
	}
}

func (rc renderContext) RenderHTML(w http.ResponseWriter, req *http.Request, overrideTitle string, contentFragment string, controlFragment string) {
	info := templateInfo{
		Brand:   rc.brand,
		Title:   overrideTitle,
		Content: contentFragment,
		Control: controlFragment,
		Menu:    rc.menu.visible(req),
	}

	if rc.item != nil {
		if info.Title == "" {
			info.Title = rc.item.name
		}
		info.URL = rc.item.URL()
		if rc.item.kind == viewItem {
			info.Description = rc.item.view.Description()
		}
	}

	b := &bytes.Buffer{}
	if err := rc.primaryTemplates.Execute(b, info); err != nil {
		rc.RenderHTMLError(w, req, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = b.WriteTo(w)
}

// RenderHTMLError outputs an error message
func (rc renderContext) RenderHTMLError(w http.ResponseWriter, req *http.Request, err error) {
	info := templateInfo{
		Brand:       rc.brand,
		Title:       "ERROR",
		Description: "ERROR",
		Content:     fmt.Sprintf("%v", err),
		Menu:        rc.menu.visible(req),
	}

	b := &bytes.Buffer{}
	if err2 := rc.errorTemplates.Execute(b, info); err2 != nil {
		util.RenderError(w, err)
		return
	}

	statusCode := http.StatusInternalServerError
	if httpErr, ok := err.(util.HTTPError); ok {
		statusCode = httpErr.StatusCode
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = b.WriteTo(w)

	scope.Errorf("Returning error to client: %v", info.Content)
}

func (rc renderContext) RenderJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		util.RenderError(w, util.HTTPErrorf(http.StatusInternalServerError, "%v", err))
	}
}
