package log

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Тесты меняют slog.Default(), поэтому t.Parallel() не используется.

func newSilent() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestFrom_ReturnsDefault_WhenNoLoggerInContext — пустой контекст -> slog.Default().
func TestFrom_ReturnsDefault_WhenNoLoggerInContext(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })

	def := newSilent()
	slog.SetDefault(def)

	require.Equal(t, def, From(context.Background()))
}

// TestIntoAndFrom_RoundTrip — Into/From возвращают тот же логгер.
func TestIntoAndFrom_RoundTrip(t *testing.T) {
	l := newSilent()
	ctx := Into(context.Background(), l)

	require.Equal(t, l, From(ctx))
}

// TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil — мусор под нашим ключом игнорируется.
func TestFrom_ReturnsDefault_WhenStoredValueIsWrongTypeOrNil(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() { slog.SetDefault(old) })
	def := newSilent()
	slog.SetDefault(def)

	ctxWrong := context.WithValue(context.Background(), ctxKey{}, "not-a-logger")
	require.Equal(t, def, From(ctxWrong))

	var nilLogger *slog.Logger
	ctxNil := context.WithValue(context.Background(), ctxKey{}, nilLogger)
	require.Equal(t, def, From(ctxNil))
}

// TestWithRunID_TagsEveryEvent — все события прогона несут run_id, родитель не меняется.
func TestWithRunID_TagsEveryEvent(t *testing.T) {
	var buf bytes.Buffer
	parentL := slog.New(slog.NewTextHandler(&buf, nil))
	parent := Into(context.Background(), parentL)

	child, lg := WithRunID(parent, "7f1c")
	require.Equal(t, lg, From(child))
	require.Equal(t, parentL, From(parent))

	From(child).Info("feed_fetch")
	From(child).Warn("feed_skipped")
	From(parent).Info("outside")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "run_id=7f1c")
	require.Contains(t, lines[1], "run_id=7f1c")
	require.NotContains(t, lines[2], "run_id")
}

// TestWith_AddsAttrsAndKeepsParent — With добавляет атрибуты только в дочерний контекст.
func TestWith_AddsAttrsAndKeepsParent(t *testing.T) {
	var buf bytes.Buffer
	parentL := slog.New(slog.NewTextHandler(&buf, nil))
	parent := Into(context.Background(), parentL)

	child, childL := With(parent, "run_id", "r-1")
	require.Equal(t, childL, From(child))
	require.Equal(t, parentL, From(parent))

	From(child).Info("hello")
	require.Contains(t, buf.String(), "run_id=r-1")
	require.Contains(t, buf.String(), "msg=hello")
}
