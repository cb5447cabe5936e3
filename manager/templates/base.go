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

// PrimaryTemplate is the page container all view content is inserted into,
// shared by every theme.
var PrimaryTemplate = `
{{ define "main" }}
<main class="page-content container-fluid" role="main">
    {{ if .Control }}
    <div class="page-control">
        {{ .Control }}
    </div>
    {{ end }}

    {{ .Content }}
</main>
{{ end }}
`
