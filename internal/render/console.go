// render печатает дайджест в человекочитаемом виде.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pribylovaa/news-digest/internal/models"
)

const (
	ruleWidth      = 80
	previewRunes   = 150
	headerTemplate = "TOP %d AI-RELATED HIGH-QUALITY ARTICLES"
)

// Console пишет дайджест в w.
type Console struct {
	w io.Writer
}

// NewConsole создаёт рендерер поверх w (обычно os.Stdout).
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Render выводит шапку, затем по блоку на статью:
// номер и заголовок, дата | автор | оценка, ссылка и превью summary без HTML.
func (c *Console) Render(digest *models.Digest) error {
	var b strings.Builder

	fmt.Fprintf(&b, "Found %d relevant articles in %d/%d feeds\n\n",
		digest.Stats.Relevant, digest.Stats.FeedsOK, digest.Stats.FeedsTotal)

	rule := strings.Repeat("=", ruleWidth)
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, headerTemplate+"\n", len(digest.Articles))
	b.WriteString(rule + "\n")

	for i, a := range digest.Articles {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, a.Title)
		fmt.Fprintf(&b, "   %s | %s | Score: %d\n", orDash(a.Published), orDash(a.Author), a.QualityScore)
		fmt.Fprintf(&b, "   %s\n", a.Link)
		if p := Preview(a.Summary, previewRunes); p != "" {
			fmt.Fprintf(&b, "   %s...\n", p)
		}
		b.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	}

	_, err := io.WriteString(c.w, b.String())
	return err
}

// Preview превращает HTML-фрагмент в одну строку текста длиной не более n символов.
func Preview(html string, n int) string {
	text := html
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(html)); err == nil {
		text = doc.Text()
	}

	text = strings.Join(strings.Fields(text), " ")

	r := []rune(text)
	if n > 0 && len(r) > n {
		r = r[:n]
	}

	return strings.TrimSpace(string(r))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
