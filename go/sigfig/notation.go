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

package sigfig

// ToScientific renders v in scientific notation, [-]D.DDDe±X, with
// exactly sigfigs coefficient digits. The count defaults to Count(v),
// so ToScientific("1.230") is "1.230e+0". The exponent sign is always
// written and never padded. Zero renders as "0e+0", or with a padded
// coefficient when a count is given.
func ToScientific(v any, sigfigs ...int) (string, error) {
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(val.Count(), sigfigs)
	if err != nil {
		return "", err
	}
	if val.num.IsZero() {
		return renderSci(val.num, n), nil
	}
	r, err := roundToSig(val.num, n, DefaultThreshold)
	if err != nil {
		return "", err
	}
	return renderSci(r, n), nil
}

// ToExponential is an alias for ToScientific.
func ToExponential(v any, sigfigs ...int) (string, error) {
	return ToScientific(v, sigfigs...)
}

// ToEngineering renders v in engineering notation: the value is first
// rounded to sigfigs significant figures (default Count(v)), then the
// exponent is constrained to a multiple of three with the coefficient
// in [1, 1000), so ToEngineering(0.000123) is "123e-6". Zero renders
// as "0e+0", or with a padded coefficient when a count is given.
func ToEngineering(v any, sigfigs ...int) (string, error) {
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(val.Count(), sigfigs)
	if err != nil {
		return "", err
	}
	if val.num.IsZero() {
		return renderEng(val.num, n), nil
	}
	r, err := roundToSig(val.num, n, DefaultThreshold)
	if err != nil {
		return "", err
	}
	return renderEng(r, n), nil
}
