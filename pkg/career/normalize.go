package career

import (
	"fmt"
	"strings"
)

const (
	// ListSize — сколько элементов показывает каждая колонка карточки.
	ListSize = 3

	PlaceholderTime  = "—"
	PlaceholderTitle = "Задача в разработке"

	DefaultSalary   = "З/п по договорённости"
	DefaultProvider = "Провайдер уточняется"
	DefaultHref     = "#"

	StatPrefix = "Показатель"
)

// ParseSlot разбирает строку вида "09:00 — Стендап" в слот расписания.
// Разделитель — длинное тире, при его отсутствии дефис. Пустой ввод даёт ok=false.
func ParseSlot(e Entry) (Slot, bool) {
	if e.IsObject() {
		t, hasTime := e.Field("time")
		title, hasTitle := e.Field("title", "name", "task")
		if !hasTime && !hasTitle {
			return Slot{}, false
		}
		return Slot{Time: orDefault(strings.TrimSpace(t), PlaceholderTime), Title: strings.TrimSpace(title)}, true
	}
	return parseSlotText(e.String())
}

func parseSlotText(raw string) (Slot, bool) {
	if raw == "" {
		return Slot{}, false
	}
	parts := strings.Split(raw, "—")
	if len(parts) == 1 {
		parts = strings.Split(raw, "-")
	}
	t := strings.TrimSpace(parts[0])
	title := strings.TrimSpace(strings.Join(parts[1:], "—"))
	return Slot{
		Time:  orDefault(t, PlaceholderTime),
		Title: orDefault(title, strings.TrimSpace(raw)),
	}, true
}

// NormalizeSchedule returns exactly ListSize slots per period.
func NormalizeSchedule(s Schedule) DaySchedule {
	return DaySchedule{
		Morning:   fillSlots(s.Morning),
		Afternoon: fillSlots(s.Midday()),
		Evening:   fillSlots(s.Evening),
	}
}

func fillSlots(list []Entry) []Slot {
	out := make([]Slot, 0, ListSize)
	for _, e := range list {
		if len(out) == ListSize {
			break
		}
		if slot, ok := ParseSlot(e); ok {
			out = append(out, slot)
		}
	}
	for len(out) < ListSize {
		out = append(out, Slot{Time: PlaceholderTime, Title: PlaceholderTitle})
	}
	return out
}

// ToMatrixItems converts raw entries without padding.
func ToMatrixItems(list []Entry, prefix string) []MatrixItem {
	out := make([]MatrixItem, 0, len(list))
	for i, e := range list {
		if e.IsText() {
			out = append(out, MatrixItem{Title: e.String()})
			continue
		}
		out = append(out, MatrixItem{
			Title:       e.FieldOr(placeholder(prefix, i), "title", "name"),
			Description: e.FieldOr("", "description", "detail", "note"),
		})
	}
	return out
}

// PadToThree truncates or pads items to ListSize with "<prefix> N" titles.
func PadToThree(items []MatrixItem, prefix string) []MatrixItem {
	out := make([]MatrixItem, 0, ListSize)
	for _, it := range items {
		if len(out) == ListSize {
			break
		}
		out = append(out, it)
	}
	for len(out) < ListSize {
		out = append(out, MatrixItem{Title: placeholder(prefix, len(out))})
	}
	return out
}

// NormalizeMatrix is ToMatrixItems followed by PadToThree.
func NormalizeMatrix(list []Entry, prefix string) []MatrixItem {
	return PadToThree(ToMatrixItems(list, prefix), prefix)
}

// NormalizeStats splits "label: value" strings on the first colon.
func NormalizeStats(list []Entry) []StatItem {
	out := make([]StatItem, 0, ListSize)
	for i, e := range list {
		if len(out) == ListSize {
			break
		}
		if e.IsText() {
			label, value, _ := strings.Cut(e.String(), ":")
			out = append(out, StatItem{Label: strings.TrimSpace(label), Value: strings.TrimSpace(value)})
			continue
		}
		out = append(out, StatItem{
			Label: e.FieldOr(placeholder(StatPrefix, i), "label", "title"),
			Value: e.FieldOr("", "value", "detail"),
		})
	}
	for len(out) < ListSize {
		out = append(out, StatItem{Label: placeholder(StatPrefix, len(out))})
	}
	return out
}

// NormalizeVacancies keeps at most ListSize vacancies and never pads.
func NormalizeVacancies(list []Entry) []VacancyItem {
	out := make([]VacancyItem, 0, min(len(list), ListSize))
	for i, e := range list {
		if len(out) == ListSize {
			break
		}
		fallback := placeholder("Вакансия", i)
		if e.IsText() {
			p := pipeFields(e.String(), 3)
			out = append(out, VacancyItem{
				Title:  orDefault(p[0], fallback),
				Salary: orDefault(p[1], DefaultSalary),
				Href:   orDefault(p[2], DefaultHref),
			})
			continue
		}
		out = append(out, VacancyItem{
			Title:  e.FieldOr(fallback, "title"),
			Salary: e.FieldOr(DefaultSalary, "salary", "pay"),
			Href:   e.FieldOr(DefaultHref, "link", "href"),
		})
	}
	return out
}

// NormalizeCourses keeps at most ListSize courses and never pads.
func NormalizeCourses(list []Entry) []CourseItem {
	out := make([]CourseItem, 0, min(len(list), ListSize))
	for i, e := range list {
		if len(out) == ListSize {
			break
		}
		fallback := placeholder("Курс", i)
		if e.IsText() {
			p := pipeFields(e.String(), 3)
			out = append(out, CourseItem{
				Title:    orDefault(p[0], fallback),
				Provider: orDefault(p[1], DefaultProvider),
				Href:     orDefault(p[2], DefaultHref),
			})
			continue
		}
		out = append(out, CourseItem{
			Title:    e.FieldOr(fallback, "title"),
			Provider: e.FieldOr(DefaultProvider, "provider", "school"),
			Href:     e.FieldOr(DefaultHref, "link", "href"),
		})
	}
	return out
}

// NormalizeMessages drops empty entries and caps long/medium/short at 1/2/3.
func NormalizeMessages(m Messages) MessageSet {
	return MessageSet{
		Long:   pickMessages(m.Long, 1),
		Medium: pickMessages(m.Medium, 2),
		Short:  pickMessages(m.Short, 3),
	}
}

func pickMessages(list []Entry, limit int) []string {
	out := make([]string, 0, limit)
	for _, e := range list {
		if len(out) == limit {
			break
		}
		if !e.truthy() {
			continue
		}
		text := e.String()
		if e.IsObject() {
			text = e.FieldOr("", "text", "message")
		}
		out = append(out, text)
	}
	return out
}

func pipeFields(s string, n int) []string {
	parts := strings.Split(s, "|")
	out := make([]string, n)
	for i := 0; i < n && i < len(parts); i++ {
		out[i] = strings.TrimSpace(parts[i])
	}
	return out
}

func placeholder(prefix string, index int) string {
	return fmt.Sprintf("%s %d", prefix, index+1)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
