package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/pkg/log"
	"github.com/pribylovaa/news-digest/internal/relevance"
)

// Aggregate выполняет один прогон: загружает все источники из s.cfg.Fetcher,
// отбрасывает нерелевантные записи, оценивает остальные и возвращает
// top-N по убыванию quality_score.
//
// Особенности:
//   - ошибка ленты или записи не прерывает прогон: лента просто даёт ноль статей;
//   - момент оценки фиксируется один раз на прогон;
//   - при равных оценках сохраняется порядок поступления, который зависит
//     от порядка завершения загрузок и не воспроизводим.
func (s *Service) Aggregate(ctx context.Context) (*models.Digest, error) {
	const op = "service/aggregate/Aggregate"

	runID := uuid.New()
	ctx, lg := log.WithRunID(ctx, runID.String())

	now := s.now().UTC()
	sources := s.cfg.Fetcher.Sources

	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrNoSources)
	}

	lg.Info("aggregate_start",
		slog.String("op", op),
		slog.Int("sources", len(sources)),
		slog.Int("max_concurrent", s.cfg.Fetcher.MaxConcurrent),
	)

	stats := models.Stats{FeedsTotal: len(sources)}
	var pool []models.Article

	for result := range s.parser.ParseMany(ctx, sources) {
		if result.Err != nil || result.Feed == nil {
			stats.FeedsFailed++
			if result.Err != nil {
				lg.Warn("feed_skipped",
					slog.String("op", op),
					slog.String("url", result.URL),
					slog.String("err", result.Err.Error()),
				)
			}
			continue
		}

		stats.FeedsOK++
		stats.EntriesSeen += len(result.Feed.Entries)

		articles := s.collect(result.Feed, now)
		stats.Relevant += len(articles)
		pool = append(pool, articles...)
	}

	ranked := rank(pool, s.cfg.Limits.Top)

	lg.Info("aggregate_done",
		slog.String("op", op),
		slog.Int("feeds_ok", stats.FeedsOK),
		slog.Int("feeds_err", stats.FeedsFailed),
		slog.Int("entries", stats.EntriesSeen),
		slog.Int("relevant", stats.Relevant),
		slog.Int("selected", len(ranked)),
	)

	return &models.Digest{
		RunID:       runID,
		GeneratedAt: now,
		Articles:    ranked,
		Stats:       stats,
	}, nil
}

// collect фильтрует и оценивает записи одной ленты.
// Нерелевантные записи до скорера не доходят.
func (s *Service) collect(feed *models.RawFeed, now time.Time) []models.Article {
	var output []models.Article

	for _, entry := range feed.Entries {
		if !s.matcher.IsRelevant(relevance.Text(entry.Title, entry.Summary)) {
			continue
		}

		score := s.scorer.Score(entry, feed.Title, now)
		output = append(output, buildArticle(entry, feed.Title, score, s.cfg.Limits.SummaryChars))
	}

	return output
}

// rank стабильно сортирует статьи по убыванию оценки и обрезает до top.
// top <= 0 означает «без ограничения».
func rank(pool []models.Article, top int) []models.Article {
	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].QualityScore > pool[j].QualityScore
	})

	if top > 0 && len(pool) > top {
		pool = pool[:top]
	}

	if pool == nil {
		return []models.Article{}
	}

	return pool
}
