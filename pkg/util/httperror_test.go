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

package util

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gotest.tools/assert"
)

func TestHTTPErrorf(t *testing.T) {
	err := HTTPErrorf(http.StatusNotFound, "no view named %s", "ghost")
	assert.Error(t, err, "Not Found (404): no view named ghost")

	httpErr, ok := err.(HTTPError)
	assert.Assert(t, ok)
	assert.Equal(t, httpErr.StatusCode, http.StatusNotFound)
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	RenderError(w, HTTPErrorf(http.StatusForbidden, "nope"))

	assert.Equal(t, w.Code, http.StatusForbidden)
	assert.Assert(t, strings.Contains(w.Body.String(), "nope"))

	// plain errors come back as internal server errors
	w = httptest.NewRecorder()
	RenderError(w, errors.New("boom"))
	assert.Equal(t, w.Code, http.StatusInternalServerError)
}
