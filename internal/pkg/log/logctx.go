// log переносит *slog.Logger через context.Context, чтобы пакеты
// пайплайна логировали с атрибутами текущего прогона (run_id и т.п.).
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// WithRunID привязывает к контексту логгер с атрибутом run_id,
// которым помечаются все события одного прогона.
func WithRunID(ctx context.Context, runID string) (context.Context, *slog.Logger) {
	return With(ctx, slog.String("run_id", runID))
}

// With дополняет логгер из контекста атрибутами и возвращает
// дочерний контекст вместе с новым логгером.
func With(ctx context.Context, args ...any) (context.Context, *slog.Logger) {
	l := From(ctx).With(args...)
	return Into(ctx, l), l
}
