package dbmetrics

import "context"

type ctxKey struct{}

// WithExecutor кладет executor (обычно активную транзакцию) в контекст
// Репозитории, получившие такой контекст, выполняют запросы через него
func WithExecutor(ctx context.Context, executor DBExecutor) context.Context {
	return context.WithValue(ctx, ctxKey{}, executor)
}

// GetExecutor возвращает executor из контекста или fallback, если его там нет
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if executor, ok := ctx.Value(ctxKey{}).(DBExecutor); ok {
		return executor
	}
	return fallback
}
