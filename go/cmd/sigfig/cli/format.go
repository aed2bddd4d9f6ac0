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
	"strconv"

	"github.com/spf13/cobra"

	"sigfig.dev/sigfig/go/flagutil"
	"sigfig.dev/sigfig/go/sigerrors"
	"sigfig.dev/sigfig/go/sigfig"
)

// intArg parses a positional integer argument.
func intArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s must be an integer, got %q", name, s)
	}
	return n, nil
}

func roundCmd() *cobra.Command {
	var threshold flagutil.ThresholdValue
	cmd := &cobra.Command{
		Use:   "round <value> <sigfigs>",
		Short: "Round a value to a number of significant figures.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg("sigfigs", args[1])
			if err != nil {
				return err
			}
			out, err := sigfig.Round(args[0], n, threshold.Digit())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.ThresholdVar(cmd.Flags(), &threshold, "threshold", sigfig.DefaultThreshold, "decision digit at or above which rounding moves away from zero")
	return cmd
}

func truncateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "truncate <value> <sigfigs>",
		Short: "Cut a value to a number of significant figures without rounding up.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg("sigfigs", args[1])
			if err != nil {
				return err
			}
			out, err := sigfig.Truncate(args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func precisionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "precision <value> <sigfigs>",
		Aliases: []string{"tosigfigs"},
		Short:   "Round a value to a number of significant figures with half-up rounding.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg("sigfigs", args[1])
			if err != nil {
				return err
			}
			out, err := sigfig.ToSigfigs(args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func fixedCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fixed <value> <places>",
		Aliases: []string{"places-to"},
		Short:   "Render a value with a fixed number of decimal places.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := intArg("places", args[1])
			if err != nil {
				return err
			}
			out, err := sigfig.ToFixed(args[0], n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func sciCmd() *cobra.Command {
	var sigfigs flagutil.SigfigsValue
	cmd := &cobra.Command{
		Use:     "sci <value>",
		Aliases: []string{"exp"},
		Short:   "Render a value in scientific notation.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sigfig.ToScientific(args[0], sigfigs.Args()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	return cmd
}

func engCmd() *cobra.Command {
	var sigfigs flagutil.SigfigsValue
	cmd := &cobra.Command{
		Use:   "eng <value>",
		Short: "Render a value in engineering notation (exponent a multiple of three).",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := sigfig.ToEngineering(args[0], sigfigs.Args()...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	return cmd
}

func percentageCmd() *cobra.Command {
	var (
		sigfigs flagutil.SigfigsValue
		plain   bool
	)
	cmd := &cobra.Command{
		Use:     "percentage <part> <whole>",
		Aliases: []string{"pct"},
		Short:   "Print part as a percentage of whole.",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := sigfig.PercentageOptions{OmitPercentSign: plain}
			if a := sigfigs.Args(); len(a) == 1 {
				opts.Sigfigs = a[0]
			}
			out, err := sigfig.Percentage(args[0], args[1], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	cmd.Flags().BoolVar(&plain, "plain", false, "omit the trailing percent sign")
	return cmd
}
