package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/pkg/log"
)

// Run — Aggregate + метрики + сохранение результата в s.sink.
//
// Особенности:
//   - пустой дайджест тоже сохраняется (приёмник получает пустой список);
//   - ошибка приёмника возвращается вызывающему, дайджест при этом не теряется.
func (s *Service) Run(ctx context.Context) (*models.Digest, error) {
	const op = "service/run/Run"

	digest, err := s.Aggregate(ctx)
	if err != nil {
		return nil, err
	}

	if s.recorder != nil {
		s.recorder.ObserveRun(RunStats{
			FeedsOK:     digest.Stats.FeedsOK,
			FeedsFailed: digest.Stats.FeedsFailed,
			EntriesSeen: digest.Stats.EntriesSeen,
			Relevant:    digest.Stats.Relevant,
			Selected:    len(digest.Articles),
			FinishedAt:  s.now().UTC(),
		})
	}

	if s.sink == nil {
		return digest, nil
	}

	if err := s.sink.SaveArticles(ctx, digest.Articles); err != nil {
		return digest, fmt.Errorf("%s: save_articles: %w", op, err)
	}

	log.From(ctx).Info("digest_saved",
		slog.String("op", op),
		slog.String("run_id", digest.RunID.String()),
		slog.Int("articles", len(digest.Articles)),
	)

	return digest, nil
}
