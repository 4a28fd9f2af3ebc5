package rss

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/mmcdole/gofeed"
	"github.com/pribylovaa/news-digest/internal/models"
)

// toRawFeed переводит универсальную модель gofeed в доменную RawFeed.
// Записи сохраняют исходный порядок; nil-элементы пропускаются.
func toRawFeed(doc *gofeed.Feed) *models.RawFeed {
	feed := &models.RawFeed{Title: strings.TrimSpace(doc.Title)}

	feed.Entries = make([]models.RawEntry, 0, len(doc.Items))
	for _, item := range doc.Items {
		if item == nil {
			continue
		}

		feed.Entries = append(feed.Entries, models.RawEntry{
			Title:     strings.TrimSpace(item.Title),
			Link:      strings.TrimSpace(item.Link),
			Author:    authorName(item),
			Summary:   summaryText(item),
			Published: toTimestamp(item.Published, item.PublishedParsed),
			Updated:   toTimestamp(item.Updated, item.UpdatedParsed),
		})
	}

	return feed
}

// authorName берёт первого автора: сначала Name, затем Email.
func authorName(item *gofeed.Item) string {
	people := make([]*gofeed.Person, 0, 1+len(item.Authors))
	if item.Author != nil {
		people = append(people, item.Author)
	}
	people = append(people, item.Authors...)

	for _, p := range people {
		if p == nil {
			continue
		}

		if name := strings.TrimSpace(p.Name); name != "" {
			return name
		}

		if email := strings.TrimSpace(p.Email); email != "" {
			return email
		}
	}

	return ""
}

// summaryText — summary/description, а если его нет — полное содержимое.
func summaryText(item *gofeed.Item) string {
	if s := strings.TrimSpace(item.Description); s != "" {
		return s
	}

	return strings.TrimSpace(item.Content)
}

// toTimestamp превращает пару «строка + результат gofeed» в явный Timestamp.
// Если gofeed дату не распознал, пробуем dateparse как вторую попытку.
func toTimestamp(raw string, parsed *time.Time) models.Timestamp {
	raw = strings.TrimSpace(raw)

	if parsed != nil && !parsed.IsZero() {
		return models.ValidTimestamp(*parsed, raw)
	}

	if raw == "" {
		return models.Timestamp{}
	}

	if t, err := parseDate(raw); err == nil {
		return models.ValidTimestamp(t, raw)
	}

	return models.InvalidTimestamp(raw)
}

// parseDate пробует набор популярных форматов, затем эвристики dateparse.
// Значения без зоны трактуются как UTC.
func parseDate(value string) (time.Time, error) {
	layouts := []string{
		time.RFC1123Z,                   // Mon, 02 Jan 2006 15:04:05 -0700
		time.RFC1123,                    // Mon, 02 Jan 2006 15:04:05 MST
		"Mon, 02 Jan 06 15:04:05 -0700", // 2-digit year
		"Mon, 02 Jan 2006 15:04 MST",    // без секунд
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, l := range layouts {
		if t, err := time.Parse(l, value); err == nil {
			return t.UTC(), nil
		}
	}

	t, err := dateparse.ParseIn(value, time.UTC)
	if err != nil {
		return time.Time{}, err
	}

	return t.UTC(), nil
}
