// storage определяет контракт приёмника результатов news-digest.
package storage

import (
	"context"

	"github.com/pribylovaa/news-digest/internal/models"
)

// ArticleSink сохраняет итоговый ранжированный список статей.
type ArticleSink interface {
	// SaveArticles записывает список целиком; порядок элементов сохраняется.
	SaveArticles(ctx context.Context, articles []models.Article) error
}
