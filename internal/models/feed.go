// models содержит доменные сущности news-digest.
// Эти типы используются слоями загрузки лент, ранжирования и вывода.
package models

import "time"

// RawFeed — разобранная лента одного источника.
// Живёт только в пределах обработки одного ParseResult.
type RawFeed struct {
	// Title — заголовок ленты (используется как source и fallback для author).
	Title string
	// Entries — записи ленты в исходном порядке.
	Entries []RawEntry
}

// RawEntry — одна запись ленты (RSS item / Atom entry).
type RawEntry struct {
	Title string
	Link  string
	// Author — пустая строка означает «автор не указан».
	Author string
	// Summary — summary/description, при их отсутствии — content.
	Summary   string
	Published Timestamp
	Updated   Timestamp
}

// Timestamp выбирает дату записи: первая валидная из Published/Updated.
// Если ни одна не распарсилась, но хотя бы одна присутствовала — Invalid,
// иначе Absent.
func (e RawEntry) Timestamp() Timestamp {
	for _, ts := range []Timestamp{e.Published, e.Updated} {
		if ts.State == TimestampValid {
			return ts
		}
	}

	if e.Published.State == TimestampInvalid || e.Updated.State == TimestampInvalid {
		return Timestamp{State: TimestampInvalid}
	}

	return Timestamp{}
}

// TimestampState — результат конвертации даты записи.
type TimestampState int

const (
	// TimestampAbsent — поле даты отсутствует или пустое.
	TimestampAbsent TimestampState = iota
	// TimestampValid — дата успешно распознана.
	TimestampValid
	// TimestampInvalid — поле есть, но распознать его не удалось.
	TimestampInvalid
)

// Timestamp — явный результат разбора даты вместо молчаливого проглатывания ошибки.
//
// Особенности:
//   - Time заполнено только при State == TimestampValid и всегда в UTC;
//   - Raw хранит исходную строку для логов.
type Timestamp struct {
	Time  time.Time
	Raw   string
	State TimestampState
}

// ValidTimestamp — конструктор валидной даты (приводит к UTC).
func ValidTimestamp(t time.Time, raw string) Timestamp {
	return Timestamp{Time: t.UTC(), Raw: raw, State: TimestampValid}
}

// InvalidTimestamp — конструктор нераспознанной даты.
func InvalidTimestamp(raw string) Timestamp {
	return Timestamp{Raw: raw, State: TimestampInvalid}
}
