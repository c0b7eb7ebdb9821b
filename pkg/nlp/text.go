package nlp

import "strings"

// ContainsFold проверяет вхождение фразы без учёта регистра.
// В отличие от сравнения по словам, пунктуация вокруг фразы не мешает.
func ContainsFold(text, phrase string) bool {
	if phrase == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(phrase))
}
