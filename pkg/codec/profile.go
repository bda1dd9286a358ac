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

	"gopkg.in/yaml.v3"
)

// Profile defines the shape of the encoding scheme: an ordered list of
// bit-widths, one per version component, most-significant first.
// A Profile is immutable once constructed and safe for concurrent use.
type Profile struct {
	widths []uint
}

// NewProfile creates a Profile from an ordered list of per-component
// bit-widths. At least one width is required and every width must be
// positive; violations are reported as ErrCodeConfig.
func NewProfile(widths ...uint) (Profile, error) {
	if len(widths) == 0 {
		return Profile{}, newError(ErrCodeConfig, "profile requires at least one component width")
	}
	ws := make([]uint, len(widths))
	for i, w := range widths {
		if w == 0 {
			return Profile{}, newErrorf(ErrCodeConfig, "component width at position %d must be positive", i+1)
		}
		ws[i] = w
	}
	return Profile{widths: ws}, nil
}

// ParseProfile parses the dot-separated shorthand form of a Profile,
// e.g. "8.8.16.8". Each token must be a positive base-10 integer;
// anything else is reported as ErrCodeConfig.
func ParseProfile(s string) (Profile, error) {
	tokens := strings.Split(s, ".")
	widths := make([]uint, 0, len(tokens))
	for _, tok := range tokens {
		w, err := strconv.ParseUint(tok, 10, strconv.IntSize)
		if err != nil {
			return Profile{}, wrapErrorf(ErrCodeConfig, err, "invalid component width %q in profile %q", tok, s)
		}
		widths = append(widths, uint(w))
	}
	return NewProfile(widths...)
}

// Default returns the profile used when none is configured: three
// 16-bit components ("16.16.16").
func Default() Profile {
	return Profile{widths: []uint{16, 16, 16}}
}

// Len returns the number of version components the profile expects.
func (p Profile) Len() int {
	return len(p.widths)
}

// Widths returns a copy of the per-component bit-widths.
func (p Profile) Widths() []uint {
	ws := make([]uint, len(p.widths))
	copy(ws, p.widths)
	return ws
}

// Bits returns the total number of bits the profile occupies. Values
// above 64 exceed the capacity of the encoded integer and will silently
// truncate on encode; callers should bounds-check before using such
// profiles.
func (p Profile) Bits() uint {
	var total uint
	for _, w := range p.widths {
		total += w
	}
	return total
}

// String renders the dot-separated shorthand form, the inverse of
// ParseProfile.
func (p Profile) String() string {
	tokens := make([]string, len(p.widths))
	for i, w := range p.widths {
		tokens[i] = strconv.FormatUint(uint64(w), 10)
	}
	return strings.Join(tokens, ".")
}

// MarshalText encodes the profile in its shorthand form for JSON.
func (p Profile) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses the shorthand form.
func (p *Profile) UnmarshalText(text []byte) error {
	parsed, err := ParseProfile(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// MarshalYAML encodes the profile in its shorthand form.
func (p Profile) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML parses the shorthand form.
func (p *Profile) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return p.UnmarshalText([]byte(s))
}
