// relevance решает, относится ли текст к интересующей теме.
package relevance

import "strings"

// Matcher — регистронезависимый поиск ключевых фраз подстрокой.
//
// Сопоставление именно по подстроке, а не по границам слов:
// "ai" совпадёт внутри "again" или "said". Это известная неточность,
// от неё зависят абсолютные значения скоринга.
type Matcher struct {
	keywords []string
}

// New создаёт Matcher. Ключевые слова приводятся к нижнему регистру,
// пустые отбрасываются.
func New(keywords []string) *Matcher {
	kw := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		kw = append(kw, k)
	}

	return &Matcher{keywords: kw}
}

// IsRelevant возвращает true, если text содержит хотя бы одну ключевую фразу.
// Для пустого текста всегда false.
func (m *Matcher) IsRelevant(text string) bool {
	if text == "" {
		return false
	}

	lower := strings.ToLower(text)
	for _, k := range m.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}

	return false
}

// Text склеивает заголовок и summary так же, как их проверяет пайплайн.
func Text(title, summary string) string {
	return title + " " + summary
}
