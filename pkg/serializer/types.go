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

// Package serializer renders conversion results to various output formats.
//
// The package supports three structured formats:
//   - JSON: machine-readable with proper indentation
//   - YAML: human-readable configuration format
//   - Table: tabular output with flattened keys
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close() // release file handles for file-backed writers
//	if err := writer.Serialize(ctx, results); err != nil {
//		return err
//	}
package serializer

import "context"

// Serializer renders a value to its configured destination.
//
// The context parameter is accepted for interface consistency; current
// implementations write to local files or stdout and do not block.
type Serializer interface {
	Serialize(ctx context.Context, v any) error
}

// Closer is an optional interface Serializers implement when they hold
// resources such as file handles.
type Closer interface {
	Close() error
}
