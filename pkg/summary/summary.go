package summary

import (
	"strings"

	"github.com/artem13815/workvibe/pkg/career"
)

const (
	scheduleLines = 4

	sectionSeparator = " | "
)

// Section — один раздел сводки: заголовок и строки, склеиваемые через Joiner.
type Section struct {
	Title  string   `json:"title"`
	Lines  []string `json:"lines"`
	Joiner string   `json:"-"`
}

// Text joins the section lines.
func (s Section) Text() string { return strings.Join(s.Lines, s.Joiner) }

// Summary — сводка по профессии. Text уходит в историю для бэкенда,
// Sections рисуются в чате.
type Summary struct {
	Profession string    `json:"profession"`
	Text       string    `json:"text"`
	Sections   []Section `json:"sections"`
}

// Build produces the structured and plain-text digest in one pass.
// Sections without lines are left out of both forms.
func Build(p *career.Payload) (Summary, bool) {
	if p == nil {
		return Summary{}, false
	}
	profession := p.Profession
	if profession == "" {
		profession = "специалиста"
	}

	sections := []Section{
		{Title: "Результат", Lines: []string{profession}},
		{Title: "Типичный день", Lines: dayLines(career.NormalizeSchedule(p.Schedule)), Joiner: "; "},
		{Title: "Стек", Lines: matrixLines(p.TechStack, "Стек"), Joiner: ", "},
		{Title: "Польза", Lines: matrixLines(p.CompanyBenefits, "Польза"), Joiner: "; "},
		{Title: "Рост", Lines: matrixLines(p.CareerGrowth, "Рост"), Joiner: " → "},
	}

	out := Summary{Profession: profession, Sections: make([]Section, 0, len(sections))}
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		if len(s.Lines) == 0 {
			continue
		}
		out.Sections = append(out.Sections, s)
		parts = append(parts, s.Title+": "+s.Text())
	}
	out.Text = strings.Join(parts, sectionSeparator)
	return out, true
}

func dayLines(day career.DaySchedule) []string {
	lines := make([]string, 0, scheduleLines)
	for _, slot := range day.All() {
		if len(lines) == scheduleLines {
			break
		}
		lines = append(lines, slot.Time+" — "+slot.Title)
	}
	return lines
}

func matrixLines(list []career.Entry, prefix string) []string {
	items := career.NormalizeMatrix(list, prefix)
	lines := make([]string, 0, len(items))
	for _, it := range items {
		if it.Description != "" {
			lines = append(lines, it.Title+": "+it.Description)
			continue
		}
		lines = append(lines, it.Title)
	}
	return lines
}
