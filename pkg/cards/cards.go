package cards

import (
	"fmt"

	"github.com/artem13815/workvibe/pkg/career"
)

// Kind — тип карточки карусели.
type Kind string

const (
	KindPlaceholder Kind = "placeholder"
	KindSchedule    Kind = "schedule"
	KindGrowth      Kind = "growth"
	KindMessages    Kind = "messages"
	KindOpportunity Kind = "opportunity"
)

// Префиксы заглушек для колонок матрицы.
const (
	StackPrefix  = "Стек"
	ImpactPrefix = "Эффект"
	GrowthPrefix = "Рост"

	DefaultProfession = "специалиста"
)

// Card — данные одной карточки. Заполнено ровно одно из полей-тел согласно Kind.
type Card struct {
	Kind     Kind   `json:"kind"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`

	Schedule    *ScheduleBody    `json:"schedule,omitempty"`
	Growth      *GrowthBody      `json:"growth,omitempty"`
	Messages    *MessagesBody    `json:"messages,omitempty"`
	Opportunity *OpportunityBody `json:"opportunity,omitempty"`
}

type ScheduleBody struct {
	Columns []ScheduleColumn `json:"columns"`
}

type ScheduleColumn struct {
	Key    string        `json:"key"`
	Label  string        `json:"label"`
	Events []career.Slot `json:"events"`
}

type GrowthBody struct {
	Columns []MatrixColumn `json:"columns"`
}

type MatrixColumn struct {
	Key   string              `json:"key"`
	Label string              `json:"label"`
	Items []career.MatrixItem `json:"items"`
}

type MessagesBody struct {
	Long   *Bubble  `json:"long,omitempty"`
	Short  []Bubble `json:"short"`
	Medium []Bubble `json:"medium"`
}

type Bubble struct {
	Variant string `json:"variant"`
	Author  string `json:"author"`
	Text    string `json:"text"`
}

type OpportunityBody struct {
	Stats     []career.StatItem    `json:"stats"`
	Vacancies []career.VacancyItem `json:"vacancies"`
	Courses   []career.CourseItem  `json:"courses"`
}

// Placeholder is shown while no profession is resolved.
func Placeholder() Card {
	return Card{
		Kind:     KindPlaceholder,
		Title:    "Ожидаем ваше воображение...",
		Subtitle: "Расскажите немного о себе, и мы подберём идеальные карточки с расписанием, задачами и вдохновением для вашей новой профессии.",
	}
}

// Build returns the carousel for a payload: a single placeholder for nil,
// otherwise schedule, growth, messages and opportunity cards in that order.
func Build(p *career.Payload) []Card {
	if p == nil {
		return []Card{Placeholder()}
	}
	profession := p.Profession
	if profession == "" {
		profession = DefaultProfession
	}
	return []Card{
		scheduleCard(profession, career.NormalizeSchedule(p.Schedule)),
		growthCard(p),
		messagesCard(profession, career.NormalizeMessages(p.ColleagueMessages)),
		opportunityCard(p.GrowthTable),
	}
}

func scheduleCard(profession string, day career.DaySchedule) Card {
	return Card{
		Kind:     KindSchedule,
		Title:    "Типичный день " + profession,
		Subtitle: "Гибкое расписание на весь рабочий день — чем живёт специалист на практике.",
		Schedule: &ScheduleBody{Columns: []ScheduleColumn{
			{Key: "morning", Label: "Утро", Events: day.Morning},
			{Key: "afternoon", Label: "День", Events: day.Afternoon},
			{Key: "evening", Label: "Вечер", Events: day.Evening},
		}},
	}
}

func growthCard(p *career.Payload) Card {
	return Card{
		Kind:     KindGrowth,
		Title:    "Карта развития компетенций",
		Subtitle: "Какие навыки растишь, какой эффект приносишь и куда движешься дальше.",
		Growth: &GrowthBody{Columns: []MatrixColumn{
			{Key: "stack", Label: "Стек технологий", Items: career.NormalizeMatrix(p.TechStack, StackPrefix)},
			{Key: "impact", Label: "Польза для компании", Items: career.NormalizeMatrix(p.CompanyBenefits, ImpactPrefix)},
			{Key: "growth", Label: "Пути роста", Items: career.NormalizeMatrix(p.CareerGrowth, GrowthPrefix)},
		}},
	}
}

func messagesCard(profession string, set career.MessageSet) Card {
	body := &MessagesBody{
		Short:  make([]Bubble, 0, len(set.Short)),
		Medium: make([]Bubble, 0, len(set.Medium)),
	}
	if len(set.Long) > 0 {
		body.Long = &Bubble{Variant: "long", Author: "Руководитель", Text: set.Long[0]}
	}
	for i, text := range set.Short {
		body.Short = append(body.Short, Bubble{Variant: "short", Author: fmt.Sprintf("Команда %d", i+1), Text: text})
	}
	for i, text := range set.Medium {
		body.Medium = append(body.Medium, Bubble{Variant: "medium", Author: fmt.Sprintf("Коллега %d", i+1), Text: text})
	}
	return Card{
		Kind:     KindMessages,
		Title:    "Команда приветствует " + profession,
		Subtitle: "Испытай атмосферу — задачи, вопросы и поддержка на лету.",
		Messages: body,
	}
}

func opportunityCard(t career.GrowthTable) Card {
	return Card{
		Kind:     KindOpportunity,
		Title:    "Перспективы и точки роста",
		Subtitle: "Куда двигаться дальше и где применять навыки прямо сейчас.",
		Opportunity: &OpportunityBody{
			Stats:     career.NormalizeStats(t.GrowthPoints),
			Vacancies: career.NormalizeVacancies(t.Vacancies),
			Courses:   career.NormalizeCourses(t.Courses),
		},
	}
}
