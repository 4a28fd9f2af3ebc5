package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// UnknownDate — значение published, если дата есть, но не распознана.
	UnknownDate = "Unknown date"
	// NoTitle — заголовок статьи, если у записи его нет.
	NoTitle = "No title"
)

// Article — итоговая запись дайджеста. Создаётся один раз и не меняется.
type Article struct {
	Title        string `json:"title"`
	Link         string `json:"link"`
	Author       string `json:"author"`
	Published    string `json:"published"`
	Summary      string `json:"summary"`
	Source       string `json:"source"`
	QualityScore int    `json:"quality_score"`
}

// Stats — счётчики одного прогона.
type Stats struct {
	FeedsTotal  int
	FeedsOK     int
	FeedsFailed int
	EntriesSeen int
	Relevant    int
}

// Digest — результат прогона: ранжированный список статей и статистика.
//
// Особенности:
//   - Articles отсортированы по QualityScore по убыванию и обрезаны до лимита;
//   - GeneratedAt — момент оценки (UTC), относительно которого считалась свежесть.
type Digest struct {
	RunID       uuid.UUID
	GeneratedAt time.Time
	Articles    []Article
	Stats       Stats
}
