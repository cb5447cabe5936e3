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
	"net/http"
	"text/template"

	"github.com/dashmgr/dashmgr/pkg/util"
)

type notFound struct {
	brand     string
	menu      *menu
	templates *template.Template
}

func (nf notFound) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	info := templateInfo{
		Brand:       nf.brand,
		Title:       "Page Not Found",
		Description: "Page Not Found",
		Menu:        nf.menu.visible(req),
	}

	var b bytes.Buffer
	if err := nf.templates.Execute(&b, info); err != nil {
		util.RenderError(w, util.HTTPErrorf(http.StatusNotFound, "Page Not Found"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = b.WriteTo(w)
}
