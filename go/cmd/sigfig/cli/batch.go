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
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"sigfig.dev/sigfig/go/log"
	"sigfig.dev/sigfig/go/sigerrors"
	"sigfig.dev/sigfig/go/sigfig"
)

// batchRequest is one operation to run. A request that was already
// malformed when parsed carries the parse error and fails without
// reaching the engine.
type batchRequest struct {
	op        string
	input     string // operands as given, for reporting
	args      []string
	sigfigs   []int
	threshold []int
	places    []int
	err       error
}

// batchResult is one row of batch output.
type batchResult struct {
	Op     string `json:"op"`
	Input  string `json:"input"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Code   string `json:"code,omitempty"`
}

var binaryOps = map[string]func(a, b any, sigfigs ...int) (string, error){
	"add":  sigfig.Add,
	"sub":  sigfig.Sub,
	"mul":  sigfig.Mul,
	"div":  sigfig.Div,
	"idiv": sigfig.IntDiv,
	"mod":  sigfig.Mod,
	"pow":  sigfig.Pow,
}

var unaryOps = map[string]func(v any, sigfigs ...int) (string, error){
	"sqrt": sigfig.Sqrt,
	"abs":  sigfig.Abs,
	"sci":  sigfig.ToScientific,
	"eng":  sigfig.ToEngineering,
}

var reduceOps = map[string]func(values any, sigfigs ...int) (string, error){
	"max": sigfig.Max,
	"min": sigfig.Min,
}

func batchCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Run a file of requests and report every result.",
		Long: `batch runs a list of requests from a file, or from standard input when no
file is given, and reports one result per request. A failed request is
reported in its row and does not stop the batch.

Input starting with '{' or '[' is parsed as JSON: an array of request
objects, or an object with a "requests" array. Each request has an "op",
an "args" array, and optional "sigfigs", "threshold" and "places" keys.
Numeric arguments keep their literal text, so 1.20 keeps its trailing
zero.

Any other input is parsed line by line: an operation name followed by
its operands, separated by whitespace. Blank lines and lines starting
with '#' are skipped. round, truncate and precision take the
significant-figure count as their second field, fixed takes the
decimal-place count, and round accepts an optional threshold as its
third field.`,
		Example: `  sigfig batch requests.txt
  sigfig batch requests.json --format json
  echo "add 1.2 3.45" | sigfig batch`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return sigerrors.Wrap(err, "reading requests")
			}
			var reqs []batchRequest
			if looksLikeJSON(data) {
				reqs, err = parseJSONRequests(data)
			} else {
				reqs, err = parsePlainRequests(data)
			}
			if err != nil {
				return err
			}
			results := runRequests(reqs)
			switch format {
			case "table":
				writeTable(cmd.OutOrStdout(), results)
				return nil
			case "json":
				return writeJSON(cmd.OutOrStdout(), results)
			default:
				return sigerrors.Errorf(sigerrors.CodeInvalidArgument, "unknown output format %q", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format (table or json)")
	return cmd
}

func looksLikeJSON(data []byte) bool {
	for _, c := range data {
		switch c {
		case ' ', '\t', '\r', '\n':
		case '{', '[':
			return true
		default:
			return false
		}
	}
	return false
}

func parseJSONRequests(data []byte) ([]batchRequest, error) {
	if !gjson.ValidBytes(data) {
		return nil, sigerrors.New(sigerrors.CodeInvalidInput, "malformed JSON")
	}
	list := gjson.ParseBytes(data)
	if list.IsObject() {
		list = list.Get("requests")
	}
	if !list.IsArray() {
		return nil, sigerrors.New(sigerrors.CodeInvalidInput, "expected an array of requests or an object with a requests array")
	}
	var reqs []batchRequest
	for _, item := range list.Array() {
		reqs = append(reqs, jsonRequest(item))
	}
	return reqs, nil
}

func jsonRequest(item gjson.Result) batchRequest {
	r := batchRequest{op: item.Get("op").String()}
	if r.op == "" {
		r.err = sigerrors.New(sigerrors.CodeInvalidArgument, "request has no op")
		return r
	}
	args := item.Get("args")
	if !args.IsArray() {
		r.err = sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s request has no args array", r.op)
		return r
	}
	for _, a := range args.Array() {
		switch a.Type {
		case gjson.Number:
			// Raw keeps the literal text, and with it the trailing
			// zeros that carry significance.
			r.args = append(r.args, a.Raw)
		case gjson.String:
			r.args = append(r.args, a.Str)
		default:
			r.err = sigerrors.Errorf(sigerrors.CodeInvalidArgument, "unsupported argument %s", a.Raw)
			return r
		}
	}
	r.input = strings.Join(r.args, " ")
	if v := item.Get("sigfigs"); v.Exists() {
		r.sigfigs = []int{int(v.Int())}
	}
	if v := item.Get("threshold"); v.Exists() {
		r.threshold = []int{int(v.Int())}
	}
	if v := item.Get("places"); v.Exists() {
		r.places = []int{int(v.Int())}
	}
	return r
}

func parsePlainRequests(data []byte) ([]batchRequest, error) {
	var reqs []batchRequest
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		reqs = append(reqs, plainRequest(strings.Fields(text)))
	}
	return reqs, sc.Err()
}

// plainRequest maps the positional fields of one line onto a request.
// The digit counts that ride in named keys in the JSON form are
// positional here, mirroring the command line.
func plainRequest(fields []string) batchRequest {
	r := batchRequest{op: fields[0], args: fields[1:]}
	r.input = strings.Join(r.args, " ")
	switch r.op {
	case "round":
		if len(r.args) != 2 && len(r.args) != 3 {
			r.err = sigerrors.Errorf(sigerrors.CodeInvalidArgument, "round takes a value, a significant-figure count and an optional threshold")
			return r
		}
		n, err := intArg("sigfigs", r.args[1])
		if err != nil {
			r.err = err
			return r
		}
		r.sigfigs = []int{n}
		if len(r.args) == 3 {
			t, err := intArg("threshold", r.args[2])
			if err != nil {
				r.err = err
				return r
			}
			r.threshold = []int{t}
		}
		r.args = r.args[:1]
	case "truncate", "precision":
		if len(r.args) != 2 {
			r.err = sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes a value and a significant-figure count", r.op)
			return r
		}
		n, err := intArg("sigfigs", r.args[1])
		if err != nil {
			r.err = err
			return r
		}
		r.sigfigs = []int{n}
		r.args = r.args[:1]
	case "fixed":
		if len(r.args) != 2 {
			r.err = sigerrors.Errorf(sigerrors.CodeInvalidArgument, "fixed takes a value and a decimal-place count")
			return r
		}
		n, err := intArg("places", r.args[1])
		if err != nil {
			r.err = err
			return r
		}
		r.places = []int{n}
		r.args = r.args[:1]
	}
	return r
}

func (r *batchRequest) run() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if fn, ok := binaryOps[r.op]; ok {
		if len(r.args) != 2 {
			return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes two operands, got %d", r.op, len(r.args))
		}
		return fn(r.args[0], r.args[1], r.sigfigs...)
	}
	if fn, ok := unaryOps[r.op]; ok {
		if len(r.args) != 1 {
			return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes one operand, got %d", r.op, len(r.args))
		}
		return fn(r.args[0], r.sigfigs...)
	}
	if fn, ok := reduceOps[r.op]; ok {
		if len(r.args) == 0 {
			return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes at least one operand", r.op)
		}
		return fn(r.args, r.sigfigs...)
	}
	switch r.op {
	case "round":
		n, err := r.requiredCount("sigfigs", r.sigfigs)
		if err != nil {
			return "", err
		}
		return sigfig.Round(r.args[0], n, r.threshold...)
	case "truncate":
		n, err := r.requiredCount("sigfigs", r.sigfigs)
		if err != nil {
			return "", err
		}
		return sigfig.Truncate(r.args[0], n)
	case "precision":
		n, err := r.requiredCount("sigfigs", r.sigfigs)
		if err != nil {
			return "", err
		}
		return sigfig.ToSigfigs(r.args[0], n)
	case "fixed":
		n, err := r.requiredCount("places", r.places)
		if err != nil {
			return "", err
		}
		return sigfig.ToFixed(r.args[0], n)
	case "percentage":
		if len(r.args) != 2 {
			return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "percentage takes two operands, got %d", len(r.args))
		}
		var opts sigfig.PercentageOptions
		if len(r.sigfigs) == 1 {
			opts.Sigfigs = r.sigfigs[0]
		}
		return sigfig.Percentage(r.args[0], r.args[1], opts)
	case "count":
		return r.inspect(sigfig.Count)
	case "places":
		return r.inspect(sigfig.DecimalPlaces)
	}
	return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "unknown operation %q", r.op)
}

func (r *batchRequest) requiredCount(name string, counts []int) (int, error) {
	if len(r.args) != 1 {
		return 0, sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes one operand, got %d", r.op, len(r.args))
	}
	if len(counts) == 0 {
		return 0, sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s needs a %s count", r.op, name)
	}
	return counts[0], nil
}

func (r *batchRequest) inspect(fn func(v any) (int, error)) (string, error) {
	if len(r.args) != 1 {
		return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%s takes one operand, got %d", r.op, len(r.args))
	}
	n, err := fn(r.args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

func runRequests(reqs []batchRequest) []batchResult {
	results := make([]batchResult, 0, len(reqs))
	for i := range reqs {
		r := &reqs[i]
		res := batchResult{Op: r.op, Input: r.input}
		out, err := r.run()
		if err != nil {
			res.Error = err.Error()
			res.Code = sigerrors.CodeOf(err).String()
			log.WarnS("request failed", "request", i+1, "op", r.op, "input", r.input, "err", err)
		} else {
			res.Result = out
		}
		results = append(results, res)
	}
	return results
}

func writeTable(w io.Writer, results []batchResult) {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Op", "Input", "Result", "Error"})
	for _, r := range results {
		table.Append([]string{r.Op, r.Input, r.Result, r.Error})
	}
	table.Render()
}

func writeJSON(w io.Writer, results []batchResult) error {
	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(out, '\n'))
	return err
}
