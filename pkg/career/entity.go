package career

// Payload — структурированное описание профессии, из которого строятся карточки.
// Приходит из пресета, из ответа бэкенда или из файла карточек.
type Payload struct {
	Profession        string      `json:"profession" yaml:"profession"`
	Schedule          Schedule    `json:"schedule" yaml:"schedule"`
	TechStack         []Entry     `json:"tech_stack,omitempty" yaml:"tech_stack"`
	CompanyBenefits   []Entry     `json:"company_benefits,omitempty" yaml:"company_benefits"`
	CareerGrowth      []Entry     `json:"career_growth,omitempty" yaml:"career_growth"`
	ColleagueMessages Messages    `json:"colleague_messages" yaml:"colleague_messages"`
	GrowthTable       GrowthTable `json:"growth_table" yaml:"growth_table"`
	ImageDescription  string      `json:"image_description,omitempty" yaml:"image_description"`
	SoundDescription  string      `json:"sound_description,omitempty" yaml:"sound_description"`
}

// Schedule — сырые записи расписания по периодам дня.
// Lunch и Afternoon синонимы: если Lunch задан (даже пустым списком), он главнее.
type Schedule struct {
	Morning   []Entry `json:"morning,omitempty" yaml:"morning"`
	Lunch     []Entry `json:"lunch,omitempty" yaml:"lunch"`
	Afternoon []Entry `json:"afternoon,omitempty" yaml:"afternoon"`
	Evening   []Entry `json:"evening,omitempty" yaml:"evening"`
}

// Midday returns the afternoon period source.
func (s Schedule) Midday() []Entry {
	if s.Lunch != nil {
		return s.Lunch
	}
	return s.Afternoon
}

type Messages struct {
	Short  []Entry `json:"short,omitempty" yaml:"short"`
	Medium []Entry `json:"medium,omitempty" yaml:"medium"`
	Long   []Entry `json:"long,omitempty" yaml:"long"`
}

type GrowthTable struct {
	GrowthPoints []Entry `json:"growth_points,omitempty" yaml:"growth_points"`
	Vacancies    []Entry `json:"vacancies,omitempty" yaml:"vacancies"`
	Courses      []Entry `json:"courses,omitempty" yaml:"courses"`
}

// Usable reports whether the payload can drive the card carousel.
func (p *Payload) Usable() bool {
	return p != nil && p.Profession != ""
}

// Clone returns a deep copy; callers may mutate the result freely.
func (p *Payload) Clone() *Payload {
	if p == nil {
		return nil
	}
	out := *p
	out.Schedule = Schedule{
		Morning:   cloneEntries(p.Schedule.Morning),
		Lunch:     cloneEntries(p.Schedule.Lunch),
		Afternoon: cloneEntries(p.Schedule.Afternoon),
		Evening:   cloneEntries(p.Schedule.Evening),
	}
	out.TechStack = cloneEntries(p.TechStack)
	out.CompanyBenefits = cloneEntries(p.CompanyBenefits)
	out.CareerGrowth = cloneEntries(p.CareerGrowth)
	out.ColleagueMessages = Messages{
		Short:  cloneEntries(p.ColleagueMessages.Short),
		Medium: cloneEntries(p.ColleagueMessages.Medium),
		Long:   cloneEntries(p.ColleagueMessages.Long),
	}
	out.GrowthTable = GrowthTable{
		GrowthPoints: cloneEntries(p.GrowthTable.GrowthPoints),
		Vacancies:    cloneEntries(p.GrowthTable.Vacancies),
		Courses:      cloneEntries(p.GrowthTable.Courses),
	}
	return &out
}

func cloneEntries(in []Entry) []Entry {
	if in == nil {
		return nil
	}
	out := make([]Entry, len(in))
	for i, e := range in {
		out[i] = e.clone()
	}
	return out
}

// Slot — один пункт расписания.
type Slot struct {
	Time  string `json:"time"`
	Title string `json:"title"`
}

// DaySchedule — нормализованное расписание: ровно три слота в каждом периоде.
type DaySchedule struct {
	Morning   []Slot `json:"morning"`
	Afternoon []Slot `json:"afternoon"`
	Evening   []Slot `json:"evening"`
}

// All returns slots of all periods in day order.
func (d DaySchedule) All() []Slot {
	out := make([]Slot, 0, len(d.Morning)+len(d.Afternoon)+len(d.Evening))
	out = append(out, d.Morning...)
	out = append(out, d.Afternoon...)
	return append(out, d.Evening...)
}

type MatrixItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type StatItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type VacancyItem struct {
	Title  string `json:"title"`
	Salary string `json:"salary"`
	Href   string `json:"href"`
}

type CourseItem struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Href     string `json:"href"`
}

// MessageSet — сообщения коллег, разложенные по длине.
type MessageSet struct {
	Long   []string `json:"long"`
	Medium []string `json:"medium"`
	Short  []string `json:"short"`
}
