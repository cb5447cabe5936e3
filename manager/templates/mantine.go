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

// Mantine renders the shell with Mantine core styles pulled from a CDN.
var Mantine = Theme{
	Name: "mantine",
	Base: `<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="utf-8">
        <meta name="viewport" content="width=device-width, initial-scale=1">

        <meta name="title" content="{{ .Title }}">
        <meta name="description" content="{{ .Description }}">

        <title>{{ if .Title }}{{ .Title }} · {{ end }}{{ .Brand }}</title>

        <!-- style sheets -->
        <link rel="stylesheet" href="https://unpkg.com/@mantine/core@7.3.2/styles.css">
        <link rel="stylesheet" href="/assets/custom.css">
    </head>

    <body>
        {{ template "navbar" . }}
        {{ template "main" . }}
        {{ template "footer" . }}
    </body>
</html>
`,
	Navbar: `
{{ define "navbar" }}
<header class="m-header" aria-label="Main Navigation">
    <div class="m-header-inner">
        <a class="m-brand" href="/">{{ .Brand }}</a>
        <nav class="m-nav">
            {{ template "navlevel" dict "Items" .Menu "Active" .URL }}
        </nav>
    </div>
</header>
{{ end }}

{{ define "navlevel" }}
    {{ $active := .Active }}
<ul class="m-nav-list">
    {{ range .Items }}
        {{ if .Items }}
    <li class="m-nav-group">
        <span class="m-nav-label">{{ .Name }}</span>
        {{ template "navlevel" dict "Items" .Items "Active" $active }}
    </li>
        {{ else }}
    <li class="m-nav-item{{ if eq .URL $active }} m-active{{ end }}">
        <a href="{{ .URL }}">{{ .Name }}</a>
    </li>
        {{ end }}
    {{ end }}
</ul>
{{ end }}
`,
	Footer: `
{{ define "footer" }}
<footer class="m-footer">
    <span>{{ .Brand }}</span>
</footer>
{{ end }}
`,
}
