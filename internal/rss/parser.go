// rss реализует service.Parser для RSS/Atom лент поверх gofeed.
package rss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/pkg/log"
	"github.com/pribylovaa/news-digest/internal/service"
)

const (
	defaultTimeout       = 10 * time.Second
	defaultMaxConcurrent = 10
	defaultMaxBodyBytes  = 10 << 20
	defaultUserAgent     = "news-digest/1.0"
)

var (
	// ErrFetch — сетевая ошибка, таймаут или не-2xx ответ.
	ErrFetch = errors.New("fetch failed")
	// ErrParse — тело ответа не удалось разобрать как RSS/Atom.
	ErrParse = errors.New("parse failed")
)

// Options — параметры Parser. Нулевые значения заменяются дефолтами.
type Options struct {
	MaxConcurrent int
	UserAgent     string
	MaxBodyBytes  int64
}

// Parser реализует service.Parser для RSS 2.0 и Atom.
//
// Параллелизм ограничен семафором maxConc. HTTP-клиент настраивается извне
// (таймауты, прокси и т.д.); повторных попыток нет.
type Parser struct {
	client    *http.Client
	maxConc   int
	userAgent string
	maxBody   int64
}

// New создаёт новый парсер лент.
func New(client *http.Client, opts Options) *Parser {
	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}

	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}

	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}

	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &Parser{
		client:    client,
		maxConc:   opts.MaxConcurrent,
		userAgent: opts.UserAgent,
		maxBody:   opts.MaxBodyBytes,
	}
}

// ParseMany загружает несколько лент конкурентно и отдаёт результаты в канал.
// На каждый URL приходит ровно один ParseResult; канал закрывается,
// когда завершились все загрузки.
func (p *Parser) ParseMany(ctx context.Context, urls []string) <-chan service.ParseResult {
	output := make(chan service.ParseResult)

	go func() {
		defer close(output)

		sem := make(chan struct{}, p.maxConc)
		var wg sync.WaitGroup

		for i, u := range urls {
			select {
			case <-ctx.Done():
				for _, rest := range urls[i:] {
					output <- service.ParseResult{URL: rest, Err: ctx.Err()}
				}
				wg.Wait()
				return
			case sem <- struct{}{}:
			}

			wg.Add(1)
			go func(url string) {
				defer func() {
					<-sem
					wg.Done()
				}()

				feed, err := p.fetchOne(ctx, url)

				output <- service.ParseResult{URL: url, Feed: feed, Err: err}
			}(u)
		}

		wg.Wait()
	}()

	return output
}

// fetchOne загружает и разбирает одну ленту по URL.
func (p *Parser) fetchOne(ctx context.Context, src string) (*models.RawFeed, error) {
	const op = "rss.fetchOne"

	lg := log.From(ctx)
	lg.Info("feed_fetch", slog.String("url", src))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: new_request: %w: %w", op, ErrFetch, err)
	}
	req.Header.Set("User-Agent", p.userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		lg.Warn("feed_fetch_failed",
			slog.String("op", op),
			slog.String("url", src),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: do: %w: %w", op, ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, p.maxBody))
		lg.Warn("feed_fetch_failed",
			slog.String("op", op),
			slog.String("url", src),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%s: %w: status=%d", op, ErrFetch, resp.StatusCode)
	}

	doc, err := gofeed.NewParser().Parse(io.LimitReader(resp.Body, p.maxBody))
	if err != nil {
		lg.Warn("feed_parse_failed",
			slog.String("op", op),
			slog.String("url", src),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: decode: %w: %w", op, ErrParse, err)
	}

	feed := toRawFeed(doc)

	lg.Debug("feed_parsed",
		slog.String("url", src),
		slog.String("title", feed.Title),
		slog.Int("entries", len(feed.Entries)),
	)

	return feed, nil
}
