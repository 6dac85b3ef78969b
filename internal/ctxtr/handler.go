package ctxtr

import (
	"context"
	"log/slog"

	"github.com/evgeniy-krivenko/minds/pkg/logger/slogx"
)

type handler struct {
	next slog.Handler
}

// Handler wraps next so that every record logged with a tracked context carries request_id.
func Handler(next slog.Handler) slog.Handler {
	return &handler{next: next}
}

func (h *handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *handler) Handle(ctx context.Context, r slog.Record) error {
	if id, ok := RequestID(ctx); ok {
		r = r.Clone()
		r.AddAttrs(slogx.RequestID(id))
	}

	return h.next.Handle(ctx, r)
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &handler{next: h.next.WithAttrs(attrs)}
}

func (h *handler) WithGroup(name string) slog.Handler {
	return &handler{next: h.next.WithGroup(name)}
}
