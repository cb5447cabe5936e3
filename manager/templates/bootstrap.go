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

// Bootstrap renders the shell with Bootstrap 5 pulled from a CDN.
var Bootstrap = Theme{
	Name: "bootstrap",
	Base: `<!DOCTYPE html>
<html lang="en">
    <head>
        <meta charset="utf-8">
        <meta http-equiv="X-UA-Compatible" content="IE=edge">
        <meta name="viewport" content="width=device-width, initial-scale=1, shrink-to-fit=no">

        <meta name="title" content="{{ .Title }}">
        <meta name="description" content="{{ .Description }}">

        <title>{{ if .Title }}{{ .Title }} · {{ end }}{{ .Brand }}</title>

        <!-- style sheets -->
        <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/bootstrap@5.2.3/dist/css/bootstrap.min.css">
        <link rel="stylesheet" href="/assets/custom.css">
    </head>

    <body>
        {{ template "navbar" . }}
        {{ template "main" . }}
        {{ template "footer" . }}

        <script src="https://cdn.jsdelivr.net/npm/bootstrap@5.2.3/dist/js/bootstrap.bundle.min.js" defer></script>
    </body>
</html>
`,
	Navbar: `
{{ define "navbar" }}
<nav class="navbar navbar-expand-lg navbar-dark bg-dark" aria-label="Main Navigation">
    <div class="container-fluid">
        <a class="navbar-brand" href="/">{{ .Brand }}</a>
        <button class="navbar-toggler" type="button" data-bs-toggle="collapse" data-bs-target="#main-nav"
                aria-controls="main-nav" aria-expanded="false" aria-label="Toggle navigation">
            <span class="navbar-toggler-icon"></span>
        </button>

        <div class="collapse navbar-collapse" id="main-nav">
            <ul class="navbar-nav me-auto">
                {{ range .Menu }}
                    {{ if .Items }}
                <li class="nav-item dropdown">
                    <a class="nav-link dropdown-toggle" href="#" role="button" data-bs-toggle="dropdown" aria-expanded="false">{{ .Name }}</a>
                    <ul class="dropdown-menu">
                        {{ template "navitems" dict "Items" .Items "Active" $.URL }}
                    </ul>
                </li>
                    {{ else }}
                <li class="nav-item">
                    <a class="nav-link{{ if eq .URL $.URL }} active{{ end }}" href="{{ .URL }}">{{ .Name }}</a>
                </li>
                    {{ end }}
                {{ end }}
            </ul>
        </div>
    </div>
</nav>
{{ end }}

{{ define "navitems" }}
    {{ $active := .Active }}
    {{ range .Items }}
<li><a class="dropdown-item{{ if eq .URL $active }} active{{ end }}" href="{{ .URL }}">{{ .Name }}</a></li>
    {{ end }}
{{ end }}
`,
	Footer: `
{{ define "footer" }}
<footer class="footer mt-auto py-3 bg-light">
    <div class="container-fluid">
        <span class="text-muted">{{ .Brand }}</span>
    </div>
</footer>
{{ end }}
`,
}
