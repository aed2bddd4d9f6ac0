/*
Copyright 2025 The Sigfig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// These are set at build time with -ldflags.
var (
	buildVersion = "dev"
	buildGitRev  = ""
	buildTime    = ""
)

func versionString() string {
	s := fmt.Sprintf("%s %s %s/%s", buildVersion, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	if buildGitRev != "" {
		s += fmt.Sprintf(" (Git revision %s)", buildGitRev)
	}
	if buildTime != "" {
		s += fmt.Sprintf(" built on %s", buildTime)
	}
	return s
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of sigfig.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "sigfig version %s\n", versionString())
		},
	}
}
