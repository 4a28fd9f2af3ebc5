// scoring считает эвристическую оценку качества записи ленты.
package scoring

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/relevance"
)

// Баллы аддитивной системы. Максимум: 10+5+10+3+15+8+20 = 71.
const (
	pointsBase = 10

	pointsTitleGood = 5
	pointsTitleLong = 2

	pointsSummaryLong   = 10
	pointsSummaryMedium = 5

	pointsAuthor = 3

	pointsRecentWeek    = 15
	pointsRecentMonth   = 10
	pointsRecentQuarter = 5

	pointsKnownSource = 8
	pointsRelevant    = 20
)

// MinRelevantScore — минимальная оценка статьи, прошедшей фильтр релевантности.
const MinRelevantScore = pointsBase + pointsRelevant

// MaxScore — сумма максимальных бонусов всех компонентов.
const MaxScore = pointsBase + pointsTitleGood + pointsSummaryLong + pointsAuthor +
	pointsRecentWeek + pointsKnownSource + pointsRelevant

// Scorer вычисляет quality_score.
//
// Бонус релевантности (+20) начисляется каждой статье, дошедшей до ранжирования,
// поэтому внутри выдачи он работает как постоянное смещение, а не как различитель.
type Scorer struct {
	matcher      *relevance.Matcher
	knownSources []string
}

// New создаёт Scorer. knownSources сравниваются с заголовком ленты
// без учёта регистра, подстрокой, после отбрасывания пробелов и пунктуации
// ("Simon Willison's Weblog" совпадает с "simonwillison").
func New(matcher *relevance.Matcher, knownSources []string) *Scorer {
	ks := make([]string, 0, len(knownSources))
	for _, s := range knownSources {
		s = compact(s)
		if s != "" {
			ks = append(ks, s)
		}
	}

	return &Scorer{matcher: matcher, knownSources: ks}
}

// Score возвращает оценку записи entry из ленты feedTitle относительно момента now.
// Результат детерминирован при фиксированном now.
func (s *Scorer) Score(entry models.RawEntry, feedTitle string, now time.Time) int {
	score := pointsBase
	score += titlePoints(entry.Title)
	score += summaryPoints(entry.Summary)

	if entry.Author != "" {
		score += pointsAuthor
	}

	score += recencyPoints(entry.Timestamp(), now)

	if s.isKnownSource(feedTitle) {
		score += pointsKnownSource
	}

	if s.matcher != nil && s.matcher.IsRelevant(relevance.Text(entry.Title, entry.Summary)) {
		score += pointsRelevant
	}

	return score
}

func titlePoints(title string) int {
	n := utf8.RuneCountInString(title)

	switch {
	case n >= 20 && n <= 100:
		return pointsTitleGood
	case n > 100:
		return pointsTitleLong
	default:
		return 0
	}
}

func summaryPoints(summary string) int {
	n := utf8.RuneCountInString(summary)

	switch {
	case n > 500:
		return pointsSummaryLong
	case n > 200:
		return pointsSummaryMedium
	default:
		return 0
	}
}

// recencyPoints учитывает только валидную дату. Возраст — целые сутки
// с округлением вниз, поэтому даты из будущего попадают в первую ступень.
func recencyPoints(ts models.Timestamp, now time.Time) int {
	if ts.State != models.TimestampValid {
		return 0
	}

	days := AgeDays(ts.Time, now)

	switch {
	case days <= 7:
		return pointsRecentWeek
	case days <= 30:
		return pointsRecentMonth
	case days <= 90:
		return pointsRecentQuarter
	default:
		return 0
	}
}

// AgeDays — возраст публикации в целых сутках (floor) относительно now.
func AgeDays(published, now time.Time) int {
	d := now.UTC().Sub(published.UTC())
	days := int(d / (24 * time.Hour))
	if d < 0 && d%(24*time.Hour) != 0 {
		days--
	}

	return days
}

func (s *Scorer) isKnownSource(feedTitle string) bool {
	if feedTitle == "" {
		return false
	}

	title := compact(feedTitle)
	for _, src := range s.knownSources {
		if strings.Contains(title, src) {
			return true
		}
	}

	return false
}

// compact приводит строку к нижнему регистру и оставляет только буквы и цифры.
func compact(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	return b.String()
}
