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

// Package cli implements the sigfig command tree.
package cli

import (
	"errors"
	goflag "flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sigfig.dev/sigfig/go/log"
	"sigfig.dev/sigfig/go/sigerrors"
)

var configFile string

// Main returns the root sigfig command.
func Main() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sigfig",
		Short: "Significant-figure aware decimal arithmetic and formatting",
		Long: `sigfig performs decimal arithmetic that tracks significant figures the
way hand calculation does: operands are kept exact, the least precise
operand decides the precision of the result, and formatting follows
the usual counting rules ("1.230" carries four figures, "100" one).`,
		Example: `  sigfig add 1.23 4.5
  sigfig mul 100 2.5
  sigfig round 123.456 3 --threshold 3
  sigfig count 1.230
  sigfig batch requests.json --format json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Version:      versionString(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			trickGlog()

			if err := applyConfig(cmd); err != nil {
				return err
			}

			return log.Init(cmd.Flags())
		},
		Run: func(cmd *cobra.Command, _ []string) { cmd.Help() },
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./sigfig.yaml, then $HOME/.config/sigfig/sigfig.yaml)")
	_ = rootCmd.MarkPersistentFlagFilename("config", "yaml", "yml")
	log.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(addCmd())
	rootCmd.AddCommand(subCmd())
	rootCmd.AddCommand(mulCmd())
	rootCmd.AddCommand(divCmd())
	rootCmd.AddCommand(idivCmd())
	rootCmd.AddCommand(modCmd())
	rootCmd.AddCommand(powCmd())
	rootCmd.AddCommand(sqrtCmd())
	rootCmd.AddCommand(absCmd())
	rootCmd.AddCommand(maxCmd())
	rootCmd.AddCommand(minCmd())

	rootCmd.AddCommand(roundCmd())
	rootCmd.AddCommand(truncateCmd())
	rootCmd.AddCommand(precisionCmd())
	rootCmd.AddCommand(fixedCmd())
	rootCmd.AddCommand(sciCmd())
	rootCmd.AddCommand(engCmd())
	rootCmd.AddCommand(percentageCmd())

	rootCmd.AddCommand(countCmd())
	rootCmd.AddCommand(placesCmd())

	rootCmd.AddCommand(batchCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// trickGlog makes glog believe flags were parsed so it stops
// complaining on first use, and points it at stderr, where a CLI's
// diagnostics belong (glog writes to files by default).
func trickGlog() {
	args := os.Args[1:]
	os.Args = os.Args[0:1]
	goflag.Parse()
	os.Args = append(os.Args, args...)

	_ = goflag.Set("logtostderr", "true")
}

// applyConfig folds config-file and environment values into any flag
// the user did not set explicitly. Keys match the long flag names;
// the environment uses the SIGFIG_ prefix with dashes as underscores
// (threshold -> SIGFIG_THRESHOLD, log-fmt -> SIGFIG_LOG_FMT).
func applyConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetConfigName("sigfig")
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "sigfig"))
		}
	}
	v.SetEnvPrefix("SIGFIG")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return err
		}
	} else {
		log.DebugS("configuration loaded", "file", v.ConfigFileUsed())
	}

	var applyErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if applyErr != nil || f.Changed || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, v.GetString(f.Name)); err != nil {
			applyErr = sigerrors.Wrapf(err, "config value for %q", f.Name)
		}
	})
	return applyErr
}

// ExitCode maps an error to the process exit code: each error kind
// gets a stable code so scripts can tell a parse failure from a
// domain failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch sigerrors.CodeOf(err) {
	case sigerrors.CodeInvalidInput:
		return 2
	case sigerrors.CodeInvalidArgument:
		return 3
	case sigerrors.CodeDivisionByZero:
		return 4
	case sigerrors.CodeInvalidDomain:
		return 5
	case sigerrors.CodeInvalidResult:
		return 6
	case sigerrors.CodeNoValidInput:
		return 7
	default:
		return 1
	}
}
