package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pribylovaa/news-digest/internal/config"
	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/storage"
)

// fixedNow — момент оценки во всех тестах пакета.
var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

// stubParser — минимальный Parser: отдаёт заранее заданные результаты по порядку.
type stubParser struct {
	mu     sync.Mutex
	gotURL []string
	res    []ParseResult
}

func (s *stubParser) ParseMany(ctx context.Context, urls []string) <-chan ParseResult {
	s.mu.Lock()
	s.gotURL = append([]string(nil), urls...)
	s.mu.Unlock()

	ch := make(chan ParseResult)
	go func() {
		defer close(ch)
		for _, r := range s.res {
			select {
			case <-ctx.Done():
				return
			case ch <- r:
			}
		}
	}()
	return ch
}

func (s *stubParser) got() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.gotURL...)
}

// testConfig — конфигурация с узким набором ключевых слов,
// чтобы подстрочное совпадение не цепляло случайные слова.
func testConfig(top int) config.Config {
	return config.Config{
		Fetcher: config.FetcherConfig{
			Sources:       []string{"https://a.example/feed", "https://b.example/feed"},
			MaxConcurrent: 10,
		},
		Filter:  config.FilterConfig{Keywords: []string{"llm", "neural"}},
		Scoring: config.ScoringConfig{KnownSources: []string{"deepmind"}},
		Limits:  config.LimitsConfig{Top: top, SummaryChars: 300},
	}
}

// newTestService — фабрика сервиса с фиксированными часами.
func newTestService(t *testing.T, p Parser, sink storage.ArticleSink, cfg config.Config, opts ...Option) *Service {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	return New(p, sink, cfg, opts...)
}

// feed собирает ленту из записей.
func feed(title string, entries ...models.RawEntry) *models.RawFeed {
	return &models.RawFeed{Title: title, Entries: entries}
}

// daysAgo — валидная дата публикации относительно fixedNow.
func daysAgo(d int) models.Timestamp {
	at := fixedNow.AddDate(0, 0, -d)
	return models.ValidTimestamp(at, at.Format(time.RFC1123Z))
}
