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

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "  Error  ", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLevelEnvFallback(t *testing.T) {
	t.Setenv(logLevelEnvVar, "warn")

	got, err := ParseLevel("")
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	if got != slog.LevelWarn {
		t.Errorf("ParseLevel with LOG_LEVEL=warn = %v, want %v", got, slog.LevelWarn)
	}
}

func TestNewLogLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))

	logger := NewLogLogger(slog.LevelInfo)
	if logger == nil {
		t.Fatal("NewLogLogger returned nil")
	}
	logger.Println("legacy log message")

	if !strings.Contains(buf.String(), "legacy log message") {
		t.Errorf("log output missing message:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"INFO"`) {
		t.Errorf("log output missing level:\n%s", buf.String())
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("hashver", "v1.0.0", "debug")
	if logger == nil {
		t.Fatal("NewStructuredLogger returned nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level logger should have debug enabled")
	}

	// Bad level degrades to INFO rather than failing.
	logger = NewStructuredLogger("hashver", "v1.0.0", "bogus")
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("fallback logger should not have debug enabled")
	}
	if !logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("fallback logger should have info enabled")
	}
}
