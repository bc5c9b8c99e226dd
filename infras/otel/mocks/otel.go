// Package mocks provides no-op tracing for tests.
package mocks

import (
	"context"
	"rantoo/infras/otel"
)

type noopOtel struct{}

// NewScope implements otel.Otel.
func (o *noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

// Shutdown implements otel.Otel.
func (o *noopOtel) Shutdown(_ context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return &noopOtel{}
}
