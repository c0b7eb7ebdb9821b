package reply

import (
	"regexp"
	"strings"

	"github.com/artem13815/workvibe/pkg/nlp"
)

// Marker отделяет текст ответа от прикреплённого JSON.
const Marker = "<<JSON>>"

// CompletionPhrase — признак того, что ассистент закончил опрос и назвал профессию.
const CompletionPhrase = "спасибо за ответы"

// Parts — ответ ассистента, разделённый на текст и сырой JSON.
type Parts struct {
	Text    string
	JSON    string
	HasJSON bool
}

// Split cuts a reply at the first marker. The JSON part is not validated.
func Split(raw string) Parts {
	before, after, found := strings.Cut(raw, Marker)
	if !found {
		return Parts{Text: strings.TrimSpace(raw)}
	}
	js := strings.TrimSpace(after)
	return Parts{
		Text:    strings.TrimSpace(before),
		JSON:    js,
		HasJSON: js != "",
	}
}

var (
	reProfession = regexp.MustCompile(`(?i)профессию\s+([^.!?\n]+)`)
	reQuotes     = regexp.MustCompile(`[«»"()]`)
)

// ProfessionHint extracts the profession named in a closing reply such as
// "Спасибо за ответы! Тебе подойдёт профессию «бухгалтер»." Replies without the
// completion phrase never yield a hint.
func ProfessionHint(text string) (string, bool) {
	if !nlp.ContainsFold(text, CompletionPhrase) {
		return "", false
	}
	m := reProfession.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	name := nlp.CollapseSpaces(reQuotes.ReplaceAllString(m[1], ""))
	return name, name != ""
}
