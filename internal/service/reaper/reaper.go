package reaper

import (
	"context"
	"time"
)

// DraftRepository интерфейс репозитория для сборки заброшенных черновиков
type DraftRepository interface {
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Reaper фоновая сборка заброшенных черновиков
// Диалог, закрытый вкладкой браузера, не присылает DELETE - его черновик
// удаляется после TTL без активности
type Reaper struct {
	draftRepo DraftRepository
	ttl       time.Duration
	interval  time.Duration
	logger    Logger
}

// New создает новый экземпляр сборщика
func New(draftRepo DraftRepository, ttl, interval time.Duration, logger Logger) *Reaper {
	return &Reaper{
		draftRepo: draftRepo,
		ttl:       ttl,
		interval:  interval,
		logger:    logger,
	}
}

// Run запускает цикл сборки; блокирует до отмены контекста
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("Draft reaper started (ttl=%s, interval=%s)", r.ttl, r.interval)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Draft reaper stopped")
			return
		case <-ticker.C:
			r.reapOnce(ctx)
		}
	}
}

func (r *Reaper) reapOnce(ctx context.Context) {
	cutoff := time.Now().Add(-r.ttl)

	deleted, err := r.draftRepo.DeleteExpired(ctx, cutoff)
	if err != nil {
		r.logger.Error("Draft reaper: failed to delete expired drafts: %v", err)
		return
	}

	if deleted > 0 {
		r.logger.Info("Draft reaper: deleted %d abandoned drafts", deleted)
	}
}
