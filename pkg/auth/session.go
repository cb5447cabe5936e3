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
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"time"

	rawcache "istio.io/pkg/cache"
)

const (
	sessionCookie    = "dashmgr_session"
	evictionInterval = time.Minute
)

// User identifies a logged-in user.
type User struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
}

// SessionStore keeps login sessions in an expiring in-memory cache, keyed by
// an opaque id carried in a cookie.
type SessionStore struct {
	sessions rawcache.ExpiringCache
	ttl      time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		sessions: rawcache.NewTTL(ttl, evictionInterval),
		ttl:      ttl,
	}
}

// Begin opens a session for the user and hands the id to the client.
func (s *SessionStore) Begin(w http.ResponseWriter, user User) string {
	id := newSessionID()
	s.sessions.Set(id, user)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return id
}

// User returns the logged-in user for the request, if there is one.
func (s *SessionStore) User(req *http.Request) (User, bool) {
	c, err := req.Cookie(sessionCookie)
	if err != nil {
		return User{}, false
	}

	v, ok := s.sessions.Get(c.Value)
	if !ok {
		return User{}, false
	}

	return v.(User), true
}

// End discards the request's session.
func (s *SessionStore) End(w http.ResponseWriter, req *http.Request) {
	if c, err := req.Cookie(sessionCookie); err == nil {
		s.sessions.Remove(c.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:   sessionCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}

func newSessionID() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
