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

package cmd

import (
	"github.com/spf13/cobra"

	"istio.io/pkg/log"

	"github.com/dashmgr/dashmgr/pkg/scaffold"
)

func newCmd() *cobra.Command {
	loggingOptions := log.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "new PROJECT_DIRECTORY",
		Short: "Create a new board project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Configure(loggingOptions); err != nil {
				log.Errorf("Unable to configure logging: %v", err)
			}

			cmd.SilenceUsage = true
			return scaffold.New(args[0])
		},
	}

	loggingOptions.AttachCobraFlags(cmd)

	return cmd
}
