package logx

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFrom_FallsBackToProcessLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := L
	L = zap.New(core)
	defer func() { L = prev }()

	From(context.Background()).Info("hello")

	if logs.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", logs.Len())
	}
}

func TestWith_BindsFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	prev := L
	L = zap.New(core)
	defer func() { L = prev }()

	ctx := With(context.Background(), zap.String("path", "/"))
	ctx = With(ctx, zap.String("method", "GET"))
	From(ctx).Info("http_request")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["path"] != "/" {
		t.Errorf("expected path '/', got %v", fields["path"])
	}
	if fields["method"] != "GET" {
		t.Errorf("expected method GET, got %v", fields["method"])
	}
}
