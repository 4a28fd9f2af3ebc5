// service содержит пайплайн news-digest: загрузка лент, фильтрация,
// скоринг, ранжирование и передача результата в приёмник.
package service

import (
	"errors"
	"time"

	"github.com/pribylovaa/news-digest/internal/config"
	"github.com/pribylovaa/news-digest/internal/relevance"
	"github.com/pribylovaa/news-digest/internal/scoring"
	"github.com/pribylovaa/news-digest/internal/storage"
)

// ErrNoSources — в конфигурации нет ни одной ленты.
var ErrNoSources = errors.New("no sources configured")

// Recorder принимает счётчики прогона (реализация — internal/metrics).
type Recorder interface {
	ObserveRun(stats RunStats)
}

// RunStats — данные для метрик одного прогона.
type RunStats struct {
	FeedsOK     int
	FeedsFailed int
	EntriesSeen int
	Relevant    int
	Selected    int
	FinishedAt  time.Time
}

// Service — описывает пайплайн news-digest.
type Service struct {
	parser   Parser
	sink     storage.ArticleSink
	matcher  *relevance.Matcher
	scorer   *scoring.Scorer
	recorder Recorder
	cfg      config.Config
	now      func() time.Time
}

// Option — необязательная настройка Service.
type Option func(*Service)

// WithRecorder подключает сбор метрик.
func WithRecorder(r Recorder) Option {
	return func(s *Service) { s.recorder = r }
}

// WithClock подменяет источник текущего времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New создает новый экземпляр Service.
// Фильтр и скорер строятся из cfg.Filter и cfg.Scoring.
func New(parser Parser, sink storage.ArticleSink, cfg config.Config, opts ...Option) *Service {
	matcher := relevance.New(cfg.Filter.Keywords)

	s := &Service{
		parser:  parser,
		sink:    sink,
		matcher: matcher,
		scorer:  scoring.New(matcher, cfg.Scoring.KnownSources),
		cfg:     cfg,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
