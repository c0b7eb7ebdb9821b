package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/artem13815/workvibe/pkg/cards"
	"github.com/artem13815/workvibe/pkg/session"
	"github.com/artem13815/workvibe/pkg/summary"
)

// RenderCard draws one carousel card in width columns (without the frame).
func RenderCard(c cards.Card, width int, st Styles) string {
	width = max(20, width)
	block := lipgloss.NewStyle().Width(width)
	lines := []string{
		block.Inherit(st.Title).Render(c.Title),
		block.Inherit(st.Subtitle).Render(c.Subtitle),
		"",
	}
	switch c.Kind {
	case cards.KindSchedule:
		if c.Schedule != nil {
			for _, col := range c.Schedule.Columns {
				lines = append(lines, st.Label.Render(col.Label))
				for _, ev := range col.Events {
					lines = append(lines, block.Render(fmt.Sprintf("  %s  %s", st.Muted.Render(ev.Time), st.Text.Render(ev.Title))))
				}
			}
		}
	case cards.KindGrowth:
		if c.Growth != nil {
			for _, col := range c.Growth.Columns {
				lines = append(lines, st.Label.Render(col.Label))
				for _, it := range col.Items {
					line := "  • " + st.Text.Render(it.Title)
					if it.Description != "" {
						line += st.Muted.Render(" — " + it.Description)
					}
					lines = append(lines, block.Render(line))
				}
			}
		}
	case cards.KindMessages:
		if c.Messages != nil {
			if b := c.Messages.Long; b != nil {
				lines = append(lines, renderBubble(*b, block, st))
			}
			for _, b := range c.Messages.Medium {
				lines = append(lines, renderBubble(b, block, st))
			}
			for _, b := range c.Messages.Short {
				lines = append(lines, renderBubble(b, block, st))
			}
		}
	case cards.KindOpportunity:
		if c.Opportunity != nil {
			o := c.Opportunity
			lines = append(lines, st.Label.Render("Точки роста"))
			for _, s := range o.Stats {
				lines = append(lines, block.Render(fmt.Sprintf("  %s: %s", st.Muted.Render(s.Label), st.Text.Render(s.Value))))
			}
			if len(o.Vacancies) > 0 {
				lines = append(lines, st.Label.Render("Вакансии"))
				for _, v := range o.Vacancies {
					lines = append(lines, block.Render(fmt.Sprintf("  • %s · %s %s", st.Text.Render(v.Title), v.Salary, st.Muted.Render(v.Href))))
				}
			}
			if len(o.Courses) > 0 {
				lines = append(lines, st.Label.Render("Курсы"))
				for _, cr := range o.Courses {
					lines = append(lines, block.Render(fmt.Sprintf("  • %s · %s %s", st.Text.Render(cr.Title), cr.Provider, st.Muted.Render(cr.Href))))
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

func renderBubble(b cards.Bubble, block lipgloss.Style, st Styles) string {
	return block.Render(st.Label.Render(b.Author+": ") + st.Text.Render(b.Text))
}

// RenderSummary prints a summary section per line.
func RenderSummary(s summary.Summary, width int, st Styles) string {
	block := lipgloss.NewStyle().Width(max(20, width))
	lines := make([]string, 0, len(s.Sections))
	for _, sec := range s.Sections {
		lines = append(lines, block.Render(st.Label.Render(sec.Title+": ")+st.Text.Render(sec.Text())))
	}
	return strings.Join(lines, "\n")
}

// RenderMessage draws one transcript entry.
func RenderMessage(m session.Message, width int, st Styles) string {
	block := lipgloss.NewStyle().Width(max(20, width))
	author := st.Bot.Render("бот")
	if m.Role == session.RoleUser {
		author = st.User.Render("вы")
	}
	switch m.Kind {
	case session.KindSummary:
		if m.Summary != nil {
			return author + "\n" + RenderSummary(*m.Summary, width, st)
		}
	case session.KindJSON:
		return author + "\n" + st.Code.Render(m.Text)
	}
	text := st.Text
	if m.Role == session.RoleBot && m.Text == session.ConnectionError {
		text = st.Error
	}
	return author + "\n" + block.Inherit(text).Render(m.Text)
}

// RenderTranscript joins all messages with blank lines between them.
func RenderTranscript(msgs []session.Message, width int, st Styles) string {
	parts := make([]string, 0, len(msgs))
	for _, m := range msgs {
		parts = append(parts, RenderMessage(m, width, st))
	}
	return strings.Join(parts, "\n\n")
}
