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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func textPage(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	})
}

func fetch(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url)
	assert.NilError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	assert.NilError(t, err)

	return resp.StatusCode, string(body)
}

func TestRouteAggregation(t *testing.T) {
	m := New(Options{Brand: "Test Board"})
	defer m.Close()

	assert.NilError(t, m.AddView(NewBaseView("first", textPage("first dashboard"), WithPrefix("/"))))
	assert.NilError(t, m.AddView(NewBaseView("second", textPage("second dashboard"), WithPrefix("/two"))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	tests := []struct {
		path string
		want string
	}{
		{"/", "first dashboard"},
		{"/two", "second dashboard"},
		{"/two/deeper/page", "second dashboard"},
		// the root view is a catch-all for everything no other view claims
		{"/anything", "first dashboard"},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			code, body := fetch(t, srv.URL+test.path)
			assert.Equal(t, code, http.StatusOK)
			assert.Equal(t, body, test.want)
		})
	}
}

func TestAddViewErrors(t *testing.T) {
	m := New(Options{})
	defer m.Close()

	assert.NilError(t, m.AddView(NewBaseView("one", textPage("one"))))

	err := m.AddView(NewBaseView("one", textPage("dup")))
	assert.ErrorContains(t, err, "already registered")

	err = m.AddView(NewBaseView("two", textPage("two"), WithPrefix("/one")))
	assert.ErrorContains(t, err, "already used")

	err = m.AddView(NewBaseView("three", textPage("three"), WithPrefix("no-slash")))
	assert.ErrorContains(t, err, "must start with /")

	_ = m.Handler()
	err = m.AddView(NewBaseView("late", textPage("late")))
	assert.ErrorContains(t, err, "already serving")

	err = m.AddLink("Docs", "", "https://example.com/docs")
	assert.ErrorContains(t, err, "already serving")
}

func TestPrefixNormalization(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/two", "/two"},
		{"/two/", "/two"},
		{"/a/b/", "/a/b"},
	}

	for _, test := range tests {
		got, err := normalizePrefix(test.in)
		assert.NilError(t, err)
		assert.Equal(t, got, test.want)
	}

	_, err := normalizePrefix("")
	assert.ErrorContains(t, err, "must start with /")
}

func TestAccessDenied(t *testing.T) {
	check := func(req *http.Request) bool {
		return req.Header.Get("X-User") != ""
	}

	m := New(Options{})
	defer m.Close()
	assert.NilError(t, m.AddView(NewBaseView("secret", textPage("secret page"), WithAccessCheck(check))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	code, body := fetch(t, srv.URL+"/secret")
	assert.Equal(t, code, http.StatusForbidden)
	assert.Assert(t, strings.Contains(body, "do not have access"), "unexpected body: %s", body)

	req, err := http.NewRequest("GET", srv.URL+"/secret", nil)
	assert.NilError(t, err)
	req.Header.Set("X-User", "alice")

	resp, err := http.DefaultClient.Do(req)
	assert.NilError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)
}

func TestCustomDeny(t *testing.T) {
	deny := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	m := New(Options{Deny: deny})
	defer m.Close()
	assert.NilError(t, m.AddView(NewBaseView("secret", textPage("secret page"), WithAccessCheck(func(*http.Request) bool { return false }))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	client := &http.Client{
		CheckRedirect: func(*http.Request, []*http.Request) error { return http.ErrUseLastResponse },
	}
	resp, err := client.Get(srv.URL + "/secret")
	assert.NilError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, resp.StatusCode, http.StatusFound)
	assert.Equal(t, resp.Header.Get("Location"), "/login")
}

func TestNotFound(t *testing.T) {
	m := New(Options{})
	defer m.Close()
	assert.NilError(t, m.AddView(NewBaseView("one", textPage("one"))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	code, body := fetch(t, srv.URL+"/nope")
	assert.Equal(t, code, http.StatusNotFound)
	assert.Assert(t, strings.Contains(body, "cannot be found"), "unexpected body: %s", body)
}

func TestErrorPageHeaders(t *testing.T) {
	m := New(Options{})
	defer m.Close()

	assert.NilError(t, m.AddView(NewBaseView("one", textPage("one"))))
	assert.NilError(t, m.AddView(NewBaseView("secret", textPage("s"), WithAccessCheck(func(*http.Request) bool { return false }))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/nope")
	assert.NilError(t, err)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusNotFound)
	assert.Equal(t, resp.Header.Get("Content-Type"), "text/html; charset=utf-8")

	resp, err = http.Get(srv.URL + "/secret")
	assert.NilError(t, err)
	resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusForbidden)
	assert.Equal(t, resp.Header.Get("Content-Type"), "text/html; charset=utf-8")
	assert.Equal(t, resp.Header.Get("X-Content-Type-Options"), "nosniff")
}

func TestMenuEndpoint(t *testing.T) {
	m := New(Options{})
	defer m.Close()

	assert.NilError(t, m.AddView(NewBaseView("alpha", textPage("a"), WithTitle("Alpha"), WithCategory("Tools"))))
	assert.NilError(t, m.AddView(NewBaseView("hidden", textPage("h"), WithAccessCheck(func(*http.Request) bool { return false }))))
	assert.NilError(t, m.AddLink("Docs", "", "https://example.com/docs"))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/menu")
	assert.NilError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, resp.StatusCode, http.StatusOK)

	var items []*ItemInfo
	assert.NilError(t, json.NewDecoder(resp.Body).Decode(&items))

	assert.Equal(t, len(items), 2)
	assert.Equal(t, items[0].Name, "Tools")
	assert.Equal(t, len(items[0].Items), 1)
	assert.Equal(t, items[0].Items[0].URL, "/alpha")
	assert.Equal(t, items[1].Name, "Docs")
}

func TestViewsEndpoint(t *testing.T) {
	m := New(Options{})
	defer m.Close()

	assert.NilError(t, m.AddView(NewBaseView("alpha", textPage("a"), WithTitle("Alpha"), WithCategory("Tools"))))
	assert.NilError(t, m.AddView(NewBaseView("hidden", textPage("h"), WithAccessCheck(func(*http.Request) bool { return false }))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/views")
	assert.NilError(t, err)
	defer resp.Body.Close()

	var views []ViewInfo
	assert.NilError(t, json.NewDecoder(resp.Body).Decode(&views))

	assert.Equal(t, len(views), 2)
	assert.Equal(t, views[0].Name, "alpha")
	assert.Equal(t, views[0].Prefix, "/alpha")
	assert.Assert(t, views[0].Accessible)
	assert.Equal(t, views[1].Name, "hidden")
	assert.Assert(t, !views[1].Accessible)
}

func TestThemedShell(t *testing.T) {
	m := New(Options{Brand: "Acme Board"})
	defer m.Close()

	rc := newRenderContext(nil, m.brand, m.menu, m.primaryTemplates, m.errorTemplates)
	assert.NilError(t, m.AddView(NewBaseView("report", renderedPage(rc, "report body"), WithTitle("Report"))))

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	code, body := fetch(t, srv.URL+"/report")
	assert.Equal(t, code, http.StatusOK)

	assert.Assert(t, strings.Contains(body, "Acme Board"), "brand missing from shell")
	assert.Assert(t, strings.Contains(body, "report body"), "content missing from shell")
	assert.Assert(t, strings.Contains(body, "href=\"/report\""), "nav entry missing from shell")
}

func renderedPage(rc RenderContext, content string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rc.RenderHTML(w, r, "", content, "")
	})
}
