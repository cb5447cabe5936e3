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
)

type itemKind int

const (
	categoryItem itemKind = iota
	viewItem
	linkItem
)

// Item is a single entry in the shared navigation model. Categories group
// other items and have no navigation target of their own; view items point at
// a mounted view's prefix; link items point at an arbitrary URL.
type Item struct {
	name     string
	kind     itemKind
	url      string
	icon     string
	view     View
	parent   *Item
	children []*Item
}

// menu is the navigation model shared by every view mounted on a manager.
// Items appear in registration order; categories appear where first
// referenced.
type menu struct {
	root       *Item
	categories map[string]*Item
}

func newMenu() *menu {
	return &menu{
		root:       &Item{kind: categoryItem},
		categories: make(map[string]*Item),
	}
}

// category returns the category item with the given name, creating it as a
// top-level entry on first reference.
func (m *menu) category(name string) *Item {
	if c, ok := m.categories[name]; ok {
		return c
	}

	c := &Item{name: name, kind: categoryItem}
	m.root.addChild(c)
	m.categories[name] = c

	return c
}

func (m *menu) addView(v View) *Item {
	it := &Item{
		name: v.Title(),
		kind: viewItem,
		url:  v.Prefix(),
		view: v,
	}

	if withIcon, ok := v.(interface{ Icon() string }); ok {
		it.icon = withIcon.Icon()
	}

	m.attach(v.Category(), it)
	return it
}

func (m *menu) addLink(name string, category string, url string) *Item {
	it := &Item{name: name, kind: linkItem, url: url}
	m.attach(category, it)
	return it
}

func (m *menu) attach(category string, it *Item) {
	parent := m.root
	if category != "" {
		parent = m.category(category)
	}
	parent.addChild(it)
}

func (it *Item) addChild(child *Item) {
	child.parent = it
	it.children = append(it.children, child)
}

// IsCategory reports whether the item only groups other items.
func (it *Item) IsCategory() bool {
	return it.kind == categoryItem
}

// URL returns the navigation target for the item. Categories have none.
func (it *Item) URL() string {
	if it.kind == categoryItem {
		return ""
	}
	return it.url
}

// Name returns the display name of the item.
func (it *Item) Name() string {
	return it.name
}

// CheckAccess reports whether the item should be shown to the calling user. A
// category is visible only while at least one of its children is; bare links
// are always visible.
func (it *Item) CheckAccess(req *http.Request) bool {
	switch it.kind {
	case categoryItem:
		return len(it.VisibleChildren(req)) > 0
	case viewItem:
		return it.view.IsAccessible(req)
	default:
		return true
	}
}

// VisibleChildren returns the children the calling user is allowed to see.
func (it *Item) VisibleChildren(req *http.Request) []*Item {
	var out []*Item
	for _, c := range it.children {
		if c.CheckAccess(req) {
			out = append(out, c)
		}
	}
	return out
}

// ItemInfo is the JSON- and template-facing projection of a menu item.
type ItemInfo struct {
	Name  string      `json:"name"`
	URL   string      `json:"url,omitempty"`
	Icon  string      `json:"icon,omitempty"`
	Items []*ItemInfo `json:"items,omitempty"`
}

// visible computes the access-filtered navigation tree for one request.
func (m *menu) visible(req *http.Request) []*ItemInfo {
	return itemInfos(m.root.VisibleChildren(req), req)
}

func itemInfos(items []*Item, req *http.Request) []*ItemInfo {
	var out []*ItemInfo
	for _, it := range items {
		out = append(out, &ItemInfo{
			Name:  it.name,
			URL:   it.URL(),
			Icon:  it.icon,
			Items: itemInfos(it.VisibleChildren(req), req),
		})
	}
	return out
}
