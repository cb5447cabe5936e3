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
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMenuComposition(t *testing.T) {
	m := newMenu()
	m.addView(NewBaseView("alpha", nil, WithTitle("Alpha"), WithCategory("Tools")))
	m.addView(NewBaseView("beta", nil, WithTitle("Beta")))
	m.addLink("Docs", "Tools", "https://example.com/docs")
	m.addLink("Chat", "", "https://example.com/chat")

	req := httptest.NewRequest("GET", "/", nil)

	want := []*ItemInfo{
		{
			Name: "Tools",
			Items: []*ItemInfo{
				{Name: "Alpha", URL: "/alpha"},
				{Name: "Docs", URL: "https://example.com/docs"},
			},
		},
		{Name: "Beta", URL: "/beta"},
		{Name: "Chat", URL: "https://example.com/chat"},
	}

	if diff := cmp.Diff(want, m.visible(req)); diff != "" {
		t.Errorf("unexpected menu (-want +got):\n%s", diff)
	}
}

func TestMenuAccessFiltering(t *testing.T) {
	adminOnly := func(req *http.Request) bool {
		return req.Header.Get("X-User") == "admin"
	}

	m := newMenu()
	m.addView(NewBaseView("secret", nil, WithTitle("Secret"), WithCategory("Admin"), WithAccessCheck(adminOnly)))
	m.addView(NewBaseView("open", nil, WithTitle("Open")))

	// a category with no accessible children disappears entirely
	anon := httptest.NewRequest("GET", "/", nil)
	want := []*ItemInfo{
		{Name: "Open", URL: "/open"},
	}
	if diff := cmp.Diff(want, m.visible(anon)); diff != "" {
		t.Errorf("unexpected anonymous menu (-want +got):\n%s", diff)
	}

	admin := httptest.NewRequest("GET", "/", nil)
	admin.Header.Set("X-User", "admin")
	want = []*ItemInfo{
		{
			Name: "Admin",
			Items: []*ItemInfo{
				{Name: "Secret", URL: "/secret"},
			},
		},
		{Name: "Open", URL: "/open"},
	}
	if diff := cmp.Diff(want, m.visible(admin)); diff != "" {
		t.Errorf("unexpected admin menu (-want +got):\n%s", diff)
	}
}

func TestMenuItems(t *testing.T) {
	m := newMenu()
	viewIt := m.addView(NewBaseView("alpha", nil, WithTitle("Alpha"), WithCategory("Tools"), WithIcon("home")))
	linkIt := m.addLink("Docs", "", "https://example.com/docs")

	cat := m.category("Tools")

	req := httptest.NewRequest("GET", "/", nil)

	tests := []struct {
		name     string
		item     *Item
		category bool
		url      string
		access   bool
	}{
		{"view", viewIt, false, "/alpha", true},
		{"link", linkIt, false, "https://example.com/docs", true},
		{"category", cat, true, "", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if test.item.IsCategory() != test.category {
				t.Errorf("IsCategory: expected %v", test.category)
			}
			if test.item.URL() != test.url {
				t.Errorf("URL: expected %q, got %q", test.url, test.item.URL())
			}
			if test.item.CheckAccess(req) != test.access {
				t.Errorf("CheckAccess: expected %v", test.access)
			}
		})
	}

	if viewIt.icon != "home" {
		t.Errorf("expected the view's icon to reach its menu item")
	}
}
