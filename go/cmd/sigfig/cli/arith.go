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

	"github.com/spf13/cobra"

	"sigfig.dev/sigfig/go/flagutil"
	"sigfig.dev/sigfig/go/log"
	"sigfig.dev/sigfig/go/sigfig"
)

const sigfigsUsage = "significant figures in the result, or \"auto\" to derive the count from the operands"

// binaryCommand builds a subcommand around a two-operand operation
// from the sigfig package.
func binaryCommand(use, short string, fn func(a, b any, sigfigs ...int) (string, error)) *cobra.Command {
	var sigfigs flagutil.SigfigsValue
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fn(args[0], args[1], sigfigs.Args()...)
			if err != nil {
				return err
			}
			log.DebugS("computed", "op", cmd.Name(), "a", args[0], "b", args[1], "result", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	return cmd
}

// unaryCommand builds a subcommand around a single-operand operation.
func unaryCommand(use, short string, fn func(v any, sigfigs ...int) (string, error)) *cobra.Command {
	var sigfigs flagutil.SigfigsValue
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fn(args[0], sigfigs.Args()...)
			if err != nil {
				return err
			}
			log.DebugS("computed", "op", cmd.Name(), "value", args[0], "result", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	return cmd
}

// reduceCommand builds a subcommand around an operation that reduces a
// list of values to one result.
func reduceCommand(use, short string, fn func(values any, sigfigs ...int) (string, error)) *cobra.Command {
	var sigfigs flagutil.SigfigsValue
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := fn(args, sigfigs.Args()...)
			if err != nil {
				return err
			}
			log.DebugS("computed", "op", cmd.Name(), "values", args, "result", out)
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	flagutil.SigfigsVar(cmd.Flags(), &sigfigs, "sigfigs", sigfigsUsage)
	return cmd
}

func addCmd() *cobra.Command {
	return binaryCommand("add <a> <b>", "Add two values, keeping the coarser operand's decimal places.", sigfig.Add)
}

func subCmd() *cobra.Command {
	return binaryCommand("sub <a> <b>", "Subtract b from a, keeping the coarser operand's decimal places.", sigfig.Sub)
}

func mulCmd() *cobra.Command {
	return binaryCommand("mul <a> <b>", "Multiply two values, keeping the smaller significant-figure count.", sigfig.Mul)
}

func divCmd() *cobra.Command {
	return binaryCommand("div <dividend> <divisor>", "Divide one value by another, keeping the smaller significant-figure count.", sigfig.Div)
}

func idivCmd() *cobra.Command {
	return binaryCommand("idiv <dividend> <divisor>", "Divide one value by another and floor the quotient.", sigfig.IntDiv)
}

func modCmd() *cobra.Command {
	return binaryCommand("mod <dividend> <divisor>", "Take the remainder of truncated division, with the dividend's sign.", sigfig.Mod)
}

func powCmd() *cobra.Command {
	return binaryCommand("pow <base> <exponent>", "Raise a base to an exponent.", sigfig.Pow)
}

func sqrtCmd() *cobra.Command {
	return unaryCommand("sqrt <value>", "Take the square root of a value.", sigfig.Sqrt)
}

func absCmd() *cobra.Command {
	return unaryCommand("abs <value>", "Take the absolute value of a value.", sigfig.Abs)
}

func maxCmd() *cobra.Command {
	return reduceCommand("max <value>...", "Print the largest of the given values, skipping unparsable ones.", sigfig.Max)
}

func minCmd() *cobra.Command {
	return reduceCommand("min <value>...", "Print the smallest of the given values, skipping unparsable ones.", sigfig.Min)
}
