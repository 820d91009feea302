package log

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_StructuredFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap(zap.New(core))
	ctx := context.Background()

	l.Info(ctx, "http exchange", "method", "GET", "status", 200)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "http exchange" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "GET" {
		t.Errorf("expected method field, got %v", fields)
	}
	if fields["status"] != int64(200) {
		t.Errorf("expected status field 200, got %v (%T)", fields["status"], fields["status"])
	}
}

func TestZapLogger_PlainArgs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewWithZap(zap.New(core))
	ctx := context.Background()

	l.Warn(ctx, "plain ", "message")
	l.Errorf(ctx, "failed: %d", 3)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "plain message" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	if entries[1].Message != "failed: 3" || entries[1].Level != zapcore.ErrorLevel {
		t.Errorf("unexpected entry: %+v", entries[1].Entry)
	}
}

func TestSplitKV(t *testing.T) {
	tests := []struct {
		name string
		arg  []any
		ok   bool
	}{
		{"message only", []any{"hello"}, false},
		{"even args", []any{"a", "b"}, false},
		{"pairs", []any{"msg", "k", 1}, true},
		{"non-string key", []any{"msg", 1, 2}, false},
		{"non-string message", []any{1, "k", 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := splitKV(tt.arg); ok != tt.ok {
				t.Errorf("splitKV(%v) ok = %v, want %v", tt.arg, ok, tt.ok)
			}
		})
	}
}

func TestInit_UnknownLevelFallsBack(t *testing.T) {
	l := Init(ZapConfig{Level: "loud", Mode: ModeProduction, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
}
