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

package auth

import (
	"net/http"

	"github.com/dashmgr/dashmgr/pkg/config"
	"github.com/dashmgr/dashmgr/pkg/util"
)

// Authorizer turns access records into the per-view accessibility predicates
// the manager consults on every request and every menu rendering.
type Authorizer struct {
	sessions *SessionStore
	reg      *config.Registry
}

func NewAuthorizer(sessions *SessionStore, reg *config.Registry) *Authorizer {
	return &Authorizer{
		sessions: sessions,
		reg:      reg,
	}
}

// AccessCheck returns the accessibility predicate for the named view. Views
// without an access record are public.
func (a *Authorizer) AccessCheck(view string) func(*http.Request) bool {
	return func(req *http.Request) bool {
		rec, ok := a.reg.SingleRecord(config.AccessRecordType, view)
		if !ok {
			return true
		}

		ar := rec.(*config.AccessRecord)
		switch ar.Policy {
		case "", config.AccessPublic:
			return true

		case config.AccessAuthenticated:
			_, logged := a.sessions.User(req)
			return logged

		case config.AccessUsers:
			u, logged := a.sessions.User(req)
			if !logged {
				return false
			}
			for _, login := range ar.Users {
				if login == u.Login {
					return true
				}
			}
			return false

		default:
			return false
		}
	}
}

// RedirectToLogin is a deny handler that sends anonymous users to the login
// flow and answers logged-in users with a 403.
func RedirectToLogin(sessions *SessionStore, loginURL string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, logged := sessions.User(r); logged {
			util.RenderError(w, util.HTTPErrorf(http.StatusForbidden, "you do not have access to this page"))
			return
		}

		http.Redirect(w, r, loginURL, http.StatusFound)
	})
}
