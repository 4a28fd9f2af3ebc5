package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/pribylovaa/news-digest/internal/models"
	"github.com/pribylovaa/news-digest/internal/relevance"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

func published(t time.Time) models.Timestamp {
	return models.ValidTimestamp(t, t.Format(time.RFC3339))
}

// TestScore_Scenario_AllBonuses — заголовок, длинный summary, автор, свежая дата,
// известный источник и релевантность: 10+5+10+3+15+8+20 = 71.
func TestScore_Scenario_AllBonuses(t *testing.T) {
	t.Parallel()

	s := New(
		relevance.New([]string{"gpt", "model"}),
		[]string{"simonwillison", "paulgraham"},
	)

	entry := models.RawEntry{
		Title:     "New GPT-5 Model Released Today",
		Summary:   strings.Repeat("x", 600),
		Author:    "Simon",
		Published: published(now.Add(-48 * time.Hour)),
	}

	require.Equal(t, 71, s.Score(entry, "Simon Willison's Weblog", now))
}

// TestScore_BaseOnly — пустая запись из неизвестной ленты получает только базу.
func TestScore_BaseOnly(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"ai"}), []string{"gwern"})
	require.Equal(t, pointsBase, s.Score(models.RawEntry{}, "Unknown Blog", now))
}

func TestScore_TitleTiers(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"zzz"}), nil)

	tests := []struct {
		n    int
		want int
	}{
		{0, pointsBase},
		{19, pointsBase},
		{20, pointsBase + pointsTitleGood},
		{100, pointsBase + pointsTitleGood},
		{101, pointsBase + pointsTitleLong},
	}

	for _, tt := range tests {
		entry := models.RawEntry{Title: strings.Repeat("x", tt.n)}
		require.Equal(t, tt.want, s.Score(entry, "", now), "title len=%d", tt.n)
	}
}

// TestScore_TitleCountsRunes — длина считается в символах, а не байтах.
func TestScore_TitleCountsRunes(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"zzz"}), nil)

	// 19 символов кириллицы — 38 байт, но бонуса быть не должно.
	entry := models.RawEntry{Title: strings.Repeat("я", 19)}
	require.Equal(t, pointsBase, s.Score(entry, "", now))
}

func TestScore_SummaryTiers(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"zzz"}), nil)

	tests := []struct {
		n    int
		want int
	}{
		{200, pointsBase},
		{201, pointsBase + pointsSummaryMedium},
		{500, pointsBase + pointsSummaryMedium},
		{501, pointsBase + pointsSummaryLong},
	}

	for _, tt := range tests {
		entry := models.RawEntry{Summary: strings.Repeat("x", tt.n)}
		require.Equal(t, tt.want, s.Score(entry, "", now), "summary len=%d", tt.n)
	}
}

func TestScore_Recency(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"zzz"}), nil)
	day := 24 * time.Hour

	tests := []struct {
		name  string
		entry models.RawEntry
		want  int
	}{
		{"future date", models.RawEntry{Published: published(now.Add(3 * day))}, pointsRecentWeek},
		{"7 days and some hours", models.RawEntry{Published: published(now.Add(-7*day - 5*time.Hour))}, pointsRecentWeek},
		{"8 days", models.RawEntry{Published: published(now.Add(-8 * day))}, pointsRecentMonth},
		{"30 days", models.RawEntry{Published: published(now.Add(-30 * day))}, pointsRecentMonth},
		{"31 days", models.RawEntry{Published: published(now.Add(-31 * day))}, pointsRecentQuarter},
		{"90 days", models.RawEntry{Published: published(now.Add(-90 * day))}, pointsRecentQuarter},
		{"91 days", models.RawEntry{Published: published(now.Add(-91 * day))}, 0},
		{"absent", models.RawEntry{}, 0},
		{"invalid", models.RawEntry{Published: models.InvalidTimestamp("yesterday-ish")}, 0},
		{
			"updated used when published invalid",
			models.RawEntry{
				Published: models.InvalidTimestamp("garbage"),
				Updated:   published(now.Add(-10 * day)),
			},
			pointsRecentMonth,
		},
		{
			"published wins over updated",
			models.RawEntry{
				Published: published(now.Add(-1 * day)),
				Updated:   published(now.Add(-60 * day)),
			},
			pointsRecentWeek,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, pointsBase+tt.want, s.Score(tt.entry, "", now))
		})
	}
}

// TestScore_KnownSource_CountedOnce — несколько совпадений дают один бонус.
func TestScore_KnownSource_CountedOnce(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"zzz"}), []string{"mitchellh", "overreacted", ""})

	require.Equal(t, pointsBase+pointsKnownSource, s.Score(models.RawEntry{}, "MitchellH & Overreacted", now))
	require.Equal(t, pointsBase+pointsKnownSource, s.Score(models.RawEntry{}, "mitchellh.com", now))
	require.Equal(t, pointsBase, s.Score(models.RawEntry{}, "Daring Fireball", now))
	require.Equal(t, pointsBase, s.Score(models.RawEntry{}, "", now))
}

func TestScore_RelevanceBonus(t *testing.T) {
	t.Parallel()

	s := New(relevance.New([]string{"llm"}), nil)

	require.Equal(t, MinRelevantScore, s.Score(models.RawEntry{Summary: "An LLM"}, "", now))
	require.Equal(t, pointsBase, s.Score(models.RawEntry{Summary: "Compilers"}, "", now))
}

// TestScore_Bounds — максимум и минимум релевантной статьи.
func TestScore_Bounds(t *testing.T) {
	t.Parallel()

	require.Equal(t, 30, MinRelevantScore)
	require.Equal(t, 71, MaxScore)
	require.LessOrEqual(t, MaxScore, 76)

	s := New(relevance.New([]string{"ai"}), []string{"gwern"})
	entry := models.RawEntry{
		Title:     "AI " + strings.Repeat("x", 40),
		Summary:   strings.Repeat("y", 800),
		Author:    "gwern",
		Published: published(now),
	}
	require.Equal(t, MaxScore, s.Score(entry, "Gwern.net Newsletter", now))
}

func TestAgeDays(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, AgeDays(now, now))
	require.Equal(t, 0, AgeDays(now.Add(-23*time.Hour), now))
	require.Equal(t, 1, AgeDays(now.Add(-25*time.Hour), now))
	require.Equal(t, -1, AgeDays(now.Add(time.Hour), now))
	require.Equal(t, -1, AgeDays(now.Add(24*time.Hour), now))
	require.Equal(t, 2, AgeDays(now.Add(-48*time.Hour).In(time.FixedZone("MSK", 3*3600)), now))
}
