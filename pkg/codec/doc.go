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

// Package codec converts dotted version strings to single unsigned
// integers and back.
//
// # Overview
//
// For any version a.b.c.d the codec derives a numeric equivalent such
// that:
//
//   - the number is unique for all possible values of a, b, c and d
//   - each component is bounded by the bits allotted to it in a Profile
//   - the original a.b.c.d can be derived back from the number
//   - if a.b.c.d => x and p.q.r.s => y, then a.b.c.d < p.q.r.s => x < y
//
// The ordering property lets callers compare and sort build identifiers
// with plain integer comparison instead of multi-field comparison.
//
// # Usage
//
//	p, err := codec.ParseProfile("16.16.16.16")
//	if err != nil {
//	    return err
//	}
//	num, err := p.Encode("8.20.1300.14")
//	ver, err := p.Decode(num) // "8.20.1300.14"
//
// The last component may carry a hyphen-separated suffix ("0.6.4-rc1");
// only its numeric prefix participates in the encoding, so Decode of
// the resulting integer yields "0.6.4". Round-trip equality holds
// against the suffix-stripped form.
//
// # Failure Modes
//
// All failures are *codec.Error values tagged with an ErrorCode:
// CONFIG for malformed profiles, PARSE for non-numeric components,
// ARITY for component-count mismatches, OVERFLOW for decode values
// wider than the profile, and RANGE for strict-mode width violations.
//
// Encode and Decode are pure functions of their inputs and the
// immutable Profile, and are safe for concurrent use.
package codec
