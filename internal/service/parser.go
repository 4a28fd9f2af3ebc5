package service

import (
	"context"

	"github.com/pribylovaa/news-digest/internal/models"
)

// Parser описывает источник лент (RSS/Atom), который загружает несколько
// URL и возвращает разобранные ленты.
//
// Требования к реализации:
// 1) число одновременных загрузок ограничено;
// 2) ошибка одной ленты не влияет на остальные и не прерывает ParseMany;
// 3) реализация уважает ctx (отмена/таймауты).
//
// ParseMany должен отправить по одному ParseResult на каждый URL и затем закрыть канал.
// Порядок результатов не гарантируется.
type Parser interface {
	ParseMany(ctx context.Context, urls []string) <-chan ParseResult
}

// ParseResult — результат загрузки одной ленты.
// Ровно одно из полей Feed/Err содержательно: при Err != nil лента
// считается пустой.
type ParseResult struct {
	URL  string
	Feed *models.RawFeed
	Err  error
}
