// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name         string
		level        string
		debugEnabled bool
		warnEnabled  bool
	}{
		{
			name:         "debug level",
			level:        "DEBUG",
			debugEnabled: true,
			warnEnabled:  true,
		},
		{
			name:         "warn level",
			level:        "warn",
			debugEnabled: false,
			warnEnabled:  true,
		},
		{
			name:         "invalid level falls back to error",
			level:        "invalid",
			debugEnabled: false,
			warnEnabled:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := NewLogger(tt.level)

			if logger == nil {
				t.Fatal("expected a logger")
			}

			core := logger.Desugar().Core()

			if enabled := core.Enabled(zapcore.DebugLevel); enabled != tt.debugEnabled {
				t.Fatalf("expected debug enabled = %v, got %v", tt.debugEnabled, enabled)
			}

			if enabled := core.Enabled(zapcore.WarnLevel); enabled != tt.warnEnabled {
				t.Fatalf("expected warn enabled = %v, got %v", tt.warnEnabled, enabled)
			}

			if logger.Security() == nil {
				t.Fatal("expected a security logger")
			}
		})
	}
}
