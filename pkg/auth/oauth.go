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
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/dashmgr/dashmgr/pkg/util"
)

// Handler implements the GitHub OAuth flow used to identify users.
type Handler struct {
	config      *oauth2.Config
	sessions    *SessionStore
	secretState string
	userAPI     string
}

// LoginPath is where the login flow is mounted on the manager's router.
const LoginPath = "/login"

func NewHandler(clientID string, clientSecret string, sessions *SessionStore) *Handler {
	// secret state for OAuth exchanges
	secretState := make([]byte, 32)
	_, _ = rand.Read(secretState)

	return &Handler{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       []string{"read:user"},
			Endpoint:     github.Endpoint,
		},
		sessions:    sessions,
		secretState: base64.StdEncoding.EncodeToString(secretState),
		userAPI:     "https://api.github.com/user",
	}
}

// Routes installs the login flow endpoints.
func (h *Handler) Routes(router *mux.Router) {
	router.HandleFunc(LoginPath, h.ServeLogin)
	router.HandleFunc("/oauthcallback", h.ServeCallback)
	router.HandleFunc("/logout", h.ServeLogout)
}

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.config.AuthCodeURL(h.secretState), http.StatusTemporaryRedirect)
}

func (h *Handler) ServeCallback(w http.ResponseWriter, r *http.Request) {
	if err := h.callback(w, r); err != nil {
		util.RenderError(w, util.HTTPErrorf(http.StatusInternalServerError, "%v", err))
	}
}

func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.End(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *Handler) callback(w http.ResponseWriter, r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("unable to parse query: %v", err)
	}

	if r.FormValue("state") != h.secretState {
		return fmt.Errorf("unable to verify request state")
	}

	token, err := h.config.Exchange(r.Context(), r.FormValue("code"))
	if err != nil {
		return fmt.Errorf("unable to exchange authorization code: %v", err)
	}

	user, err := h.fetchUser(r.Context(), token)
	if err != nil {
		return err
	}

	h.sessions.Begin(w, user)

	// finally, send the user back to the home page
	http.Redirect(w, r, "/", http.StatusFound)

	return nil
}

func (h *Handler) fetchUser(ctx context.Context, token *oauth2.Token) (User, error) {
	client := h.config.Client(ctx, token)

	res, err := client.Get(h.userAPI)
	if err != nil {
		return User{}, fmt.Errorf("unable to fetch the logged-in user: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return User{}, fmt.Errorf("unable to fetch the logged-in user: HTTP error %v", res.StatusCode)
	}

	var user User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return User{}, fmt.Errorf("unable to parse the logged-in user: %v", err)
	}

	return user, nil
}
