package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^a-zа-я0-9\s]`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeProfession приводит название профессии к ключу для поиска алиаса:
// - нижний регистр, ё → е
// - всё кроме латиницы, кириллицы, цифр и пробелов заменяется пробелом
// - пробелы схлопываются
func NormalizeProfession(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "ё", "е")
	s = reNonWord.ReplaceAllString(s, " ")
	return CollapseSpaces(s)
}

// CollapseSpaces схлопывает пробельные последовательности и обрезает края.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(reSpaces.ReplaceAllString(s, " "))
}
