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

package status

import (
	"net/http"
	"strings"
	"text/template"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"istio.io/pkg/log"

	"github.com/dashmgr/dashmgr/manager"
	"github.com/dashmgr/dashmgr/pkg/health"
	"github.com/dashmgr/dashmgr/pkg/util"
)

var scope = log.RegisterScope("status", "The built-in status view.", 0)

// View lets users see the health of every mounted view and declared link.
type View struct {
	checker *health.Checker
	page    *template.Template
}

// New creates a new status View instance.
func New(checker *health.Checker) *View {
	return &View{
		checker: checker,
		page:    template.Must(template.New("page").Parse(pageTemplate)),
	}
}

func (v *View) Name() string        { return "status" }
func (v *View) Title() string       { return "Status" }
func (v *View) Description() string { return "Health of the mounted views and declared links." }
func (v *View) Category() string    { return "" }
func (v *View) Prefix() string      { return "/status" }

func (v *View) IsAccessible(req *http.Request) bool { return true }

func (v *View) Configure(htmlRouter *mux.Router, apiRouter *mux.Router, rc manager.RenderContext) {
	htmlRouter.PathPrefix("").Methods("GET").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sb := &strings.Builder{}
		if err := v.page.Execute(sb, v.checker.Snapshot()); err != nil {
			rc.RenderHTMLError(w, r, err)
			return
		}

		rc.RenderHTML(w, r, "", sb.String(), "")
	})

	apiRouter.Path("/live").Methods("GET").HandlerFunc(v.serveUpdates)
	apiRouter.Path("").Methods("GET").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc.RenderJSON(w, http.StatusOK, v.checker.Snapshot())
	})
}

// serveUpdates pushes the current snapshot and then every status change over
// a websocket, until the client goes away.
func (v *View) serveUpdates(w http.ResponseWriter, req *http.Request) {
	var upgrader websocket.Upgrader
	c, err := upgrader.Upgrade(w, req, nil)
	if err != nil {
		util.RenderError(w, util.HTTPErrorf(http.StatusInternalServerError, "%v", err))
		return
	}
	defer c.Close()

	updates, cancel := v.checker.Subscribe()
	defer cancel()

	for _, st := range v.checker.Snapshot() {
		if err := c.WriteJSON(st); err != nil {
			scope.Debugf("Dropping status subscriber: %v", err)
			return
		}
	}

	for {
		select {
		case st := <-updates:
			if err := c.WriteJSON(st); err != nil {
				scope.Debugf("Dropping status subscriber: %v", err)
				return
			}

		case <-req.Context().Done():
			return
		}
	}
}

const pageTemplate = `
<h2>Board status</h2>

<table class="table" id="status-table">
    <thead>
        <tr>
            <th>Target</th>
            <th>URL</th>
            <th>Healthy</th>
            <th>Detail</th>
            <th>Checked</th>
        </tr>
    </thead>
    <tbody>
        {{ range . }}
        <tr data-target="{{ .Target.Name }}">
            <td>{{ .Target.Name }}</td>
            <td><a href="{{ .Target.URL }}">{{ .Target.URL }}</a></td>
            <td>{{ if .Healthy }}yes{{ else }}no{{ end }}</td>
            <td>{{ .Detail }}</td>
            <td>{{ .Checked.Format "2006-01-02 15:04:05" }}</td>
        </tr>
        {{ end }}
    </tbody>
</table>

<script>
    (function () {
        var proto = location.protocol === "https:" ? "wss://" : "ws://";
        var sock = new WebSocket(proto + location.host + "/api/status/live");
        sock.onmessage = function (ev) {
            var st = JSON.parse(ev.data);
            var row = document.querySelector('tr[data-target="' + st.target.name + '"]');
            if (!row) {
                return;
            }
            row.cells[2].textContent = st.healthy ? "yes" : "no";
            row.cells[3].textContent = st.detail || "";
            row.cells[4].textContent = new Date(st.checked).toLocaleString();
        };
    })();
</script>
`
