// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package codec

import (
	"strconv"
	"strings"
)

// Encode converts a dotted version string into its numeric equivalent
// under the profile. All components except the last must be non-negative
// base-10 integers; the last component may carry a hyphen-separated
// suffix (e.g. "4-rc1") whose numeric prefix is used and whose suffix is
// discarded. Component values that exceed their allotted width are not
// rejected; they carry into neighboring bits exactly as prior instances
// of the scheme did. Use EncodeStrict to reject them instead.
func (p Profile) Encode(version string) (uint64, error) {
	num, err := p.encode(version, false)
	observeOp(opEncode, err)
	return num, err
}

// EncodeStrict behaves like Encode but additionally fails with
// ErrCodeRange when any component value does not fit its width.
func (p Profile) EncodeStrict(version string) (uint64, error) {
	num, err := p.encode(version, true)
	observeOp(opEncodeStrict, err)
	return num, err
}

func (p Profile) encode(version string, strict bool) (uint64, error) {
	components := strings.Split(version, ".")

	values := make([]uint64, 0, len(components))
	for _, comp := range components[:len(components)-1] {
		v, err := strconv.ParseUint(comp, 10, 64)
		if err != nil {
			return 0, wrapErrorf(ErrCodeParse, err,
				"all version components except the last one must be a numeric value, got %q", comp)
		}
		values = append(values, v)
	}

	// The last component may be a hyphen separated alphanumeric like
	// "8-rc1"; only the numeric prefix before the first hyphen counts.
	last := components[len(components)-1]
	numeric, _, _ := strings.Cut(last, "-")
	v, err := strconv.ParseUint(numeric, 10, 64)
	if err != nil {
		return 0, wrapErrorf(ErrCodeParse, err,
			"last component must be numeric or a hyphen separated alphanumeric like 8-rc1, got %q", last)
	}
	values = append(values, v)

	if len(values) != len(p.widths) {
		return 0, newErrorf(ErrCodeArity,
			"%q must have as many dot separated components as profile %q", version, p.String())
	}

	// Accumulate most-significant first. The shift applied before adding
	// component i is that component's own width; the first component is
	// added without a shift. This ordering is load-bearing: changing it
	// breaks bit-exact compatibility with already-encoded values.
	var num uint64
	for i, val := range values {
		w := p.widths[i]
		if strict && w < 64 && val >= 1<<w {
			return 0, newErrorf(ErrCodeRange,
				"component %d value %d does not fit in %d bits", i+1, val, w)
		}
		if i > 0 {
			num <<= w
		}
		num += val
	}
	return num, nil
}

// Decode converts an encoded integer back into its dotted version string
// under the profile. It fails with ErrCodeOverflow when the value holds
// nonzero bits beyond the profile's total capacity. Any suffix discarded
// during Encode is not reproduced.
func (p Profile) Decode(value uint64) (string, error) {
	s, err := p.decode(value)
	observeOp(opDecode, err)
	return s, err
}

func (p Profile) decode(value uint64) (string, error) {
	num := value
	components := make([]string, len(p.widths))
	for i := len(p.widths) - 1; i >= 0; i-- {
		w := p.widths[i]
		if w >= 64 {
			components[i] = strconv.FormatUint(num, 10)
			num = 0
			continue
		}
		mask := uint64(1)<<w - 1
		components[i] = strconv.FormatUint(num&mask, 10)
		num >>= w
	}

	if num != 0 {
		return "", newErrorf(ErrCodeOverflow,
			"%d is not compatible with profile %q", value, p.String())
	}
	return strings.Join(components, "."), nil
}
