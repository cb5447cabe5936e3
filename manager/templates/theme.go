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

package templates

import "fmt"

// Theme is a pluggable rendering strategy: the page skeleton plus the
// navigation bar and footer fragments that wrap every view's content. You can
// completely customize the produced pages by supplying your own Theme.
type Theme struct {
	Name   string
	Base   string
	Navbar string
	Footer string
}

// ByName maps a template mode name from config to a built-in theme. An empty
// name selects the Bootstrap theme.
func ByName(name string) (Theme, error) {
	switch name {
	case "", "bootstrap":
		return Bootstrap, nil
	case "mantine":
		return Mantine, nil
	}

	return Theme{}, fmt.Errorf("unsupported template mode '%s'", name)
}
