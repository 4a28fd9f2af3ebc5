package service

import (
	"github.com/pribylovaa/news-digest/internal/models"
)

// dateLayout — формат поля published.
const dateLayout = "2006-01-02"

// buildArticle собирает итоговую запись:
//   - Title := Title || "No title";
//   - Author := Author || feedTitle;
//   - Published := YYYY-MM-DD (UTC) / "Unknown date" / "";
//   - Summary обрезается до summaryChars символов (не байт).
func buildArticle(entry models.RawEntry, feedTitle string, score, summaryChars int) models.Article {
	title := entry.Title
	if title == "" {
		title = models.NoTitle
	}

	author := entry.Author
	if author == "" {
		author = feedTitle
	}

	return models.Article{
		Title:        title,
		Link:         entry.Link,
		Author:       author,
		Published:    formatPublished(entry.Timestamp()),
		Summary:      truncateRunes(entry.Summary, summaryChars),
		Source:       feedTitle,
		QualityScore: score,
	}
}

func formatPublished(ts models.Timestamp) string {
	switch ts.State {
	case models.TimestampValid:
		return ts.Time.UTC().Format(dateLayout)
	case models.TimestampInvalid:
		return models.UnknownDate
	default:
		return ""
	}
}

// truncateRunes обрезает s до n символов. n <= 0 — без обрезки.
func truncateRunes(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}

	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}

	return s
}
