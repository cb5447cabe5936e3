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

package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"istio.io/pkg/log"
)

var scope = log.RegisterScope("scaffold", "The project generator.", 0)

// New generates a runnable board project skeleton in outputDir: a config
// directory, an assets directory, two sample views, and a main.go wiring
// them onto a manager. An existing project is left untouched.
func New(outputDir string) error {
	module := filepath.Base(outputDir)

	assetsDir := filepath.Join(outputDir, "assets")
	configDir := filepath.Join(outputDir, "config")
	viewsDir := filepath.Join(outputDir, "views")
	firstDir := filepath.Join(viewsDir, "first")
	secondDir := filepath.Join(viewsDir, "second")

	if _, err := os.Stat(viewsDir); err == nil {
		scope.Infof("Project already exists.")
		return nil
	}

	if _, err := os.Stat(outputDir); os.IsNotExist(err) {
		scope.Infof("Creating project directory: %s", outputDir)
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("unable to create project directory %s: %v", outputDir, err)
		}
	}

	var errs *multierror.Error

	for _, dir := range []string{assetsDir, configDir, viewsDir, firstDir, secondDir} {
		scope.Infof("Writing: %s", dir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to create %s: %v", dir, err))
		}
	}

	files := map[string]string{
		filepath.Join(outputDir, "main.go"):    strings.ReplaceAll(mainText, "MODULE", module),
		filepath.Join(outputDir, "go.mod"):     strings.ReplaceAll(goModText, "MODULE", module),
		filepath.Join(configDir, "core.yaml"):  coreConfigText,
		filepath.Join(assetsDir, "custom.css"): customCSSText,
		filepath.Join(firstDir, "first.go"):    firstViewText,
		filepath.Join(secondDir, "second.go"):  secondViewText,
	}

	for path, text := range files {
		scope.Infof("Writing: %s", path)
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("unable to write %s: %v", path, err))
		}
	}

	return errs.ErrorOrNil()
}
