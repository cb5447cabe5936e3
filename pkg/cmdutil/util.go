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

package cmdutil

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dashmgr/dashmgr/pkg/config"
	"istio.io/pkg/env"
	"istio.io/pkg/log"
)

const (
	configPath        = "Path to a directory of configuration files"
	oauthClientID     = "Client ID for the OAuth login flow"
	oauthClientSecret = "Client secret for the OAuth login flow"
)

type CommonFlags int

const (
	ConfigPath        CommonFlags = 1 << 0
	OAuthClientID     CommonFlags = 1 << 1
	OAuthClientSecret CommonFlags = 1 << 2
)

// Secrets carries the sensitive startup options, never written to config files.
type Secrets struct {
	OAuthClientID     string
	OAuthClientSecret string
}

// Run assembles a command that configures logging, loads the configuration
// registry, and then hands control to the callback. Every option can be
// supplied as a flag or as an environment variable.
func Run(name string, desc string, numArgs int, flags CommonFlags, cb func(reg *config.Registry, secrets *Secrets) error) *cobra.Command {
	secrets := Secrets{}
	cmd := &cobra.Command{}
	cfgPath := "config"

	if flags&ConfigPath != 0 {
		cfgPath = env.RegisterStringVar("CONFIG_PATH", cfgPath, configPath).Get()
		cmd.PersistentFlags().StringVarP(&cfgPath, "config_path", "", cfgPath, configPath)
	}

	if flags&OAuthClientID != 0 {
		secrets.OAuthClientID = env.RegisterStringVar("OAUTH_CLIENT_ID", secrets.OAuthClientID, oauthClientID).Get()
		cmd.PersistentFlags().StringVarP(&secrets.OAuthClientID,
			"oauth_client_id", "", secrets.OAuthClientID, oauthClientID)
	}

	if flags&OAuthClientSecret != 0 {
		secrets.OAuthClientSecret = env.RegisterStringVar("OAUTH_CLIENT_SECRET", secrets.OAuthClientSecret, oauthClientSecret).Get()
		cmd.PersistentFlags().StringVarP(&secrets.OAuthClientSecret,
			"oauth_client_secret", "", secrets.OAuthClientSecret, oauthClientSecret)
	}

	loggingOptions := log.DefaultOptions()

	cmd.Use = name
	cmd.Short = desc
	cmd.Args = cobra.ExactArgs(numArgs)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := log.Configure(loggingOptions); err != nil {
			log.Errorf("Unable to configure logging: %v", err)
		}

		cmd.SilenceUsage = true

		reg, err := config.LoadRegistryFromDirectory(cfgPath)
		if err != nil {
			return fmt.Errorf("unable to load configuration: %v", err)
		}

		return cb(reg, &secrets)
	}

	loggingOptions.AttachCobraFlags(cmd)

	return cmd
}
