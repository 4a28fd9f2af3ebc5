// jsonfile реализует storage.ArticleSink: JSON-массив статей в одном файле.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pribylovaa/news-digest/internal/models"
)

// Storage пишет дайджест в файл path.
// Файл перезаписывается целиком: запись идёт во временный файл рядом
// и затем переименовывается.
type Storage struct {
	path string
}

// New создаёт приёмник для файла path.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Path возвращает путь итогового файла.
func (s *Storage) Path() string {
	return s.path
}

// SaveArticles сериализует articles с отступом в 2 пробела.
// Не-ASCII символы и HTML сохраняются как есть.
func (s *Storage) SaveArticles(ctx context.Context, articles []models.Article) error {
	const op = "storage.jsonfile.SaveArticles"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if articles == nil {
		articles = []models.Article{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(articles); err != nil {
		return fmt.Errorf("%s: encode: %w", op, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%s: mkdir: %w", op, err)
	}

	tmp, err := os.CreateTemp(dir, ".digest-*.json")
	if err != nil {
		return fmt.Errorf("%s: create_temp: %w", op, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("%s: write: %w", op, err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%s: close: %w", op, err)
	}

	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("%s: chmod: %w", op, err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%s: rename: %w", op, err)
	}

	return nil
}
