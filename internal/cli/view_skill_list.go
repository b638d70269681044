package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type skillsLoadedMsg struct {
	levelID string
	skills  []*domain.Skill
	err     error
}

// skillListView lists one level's skills in order.
type skillListView struct {
	state   *SharedState
	level   *domain.Level
	skills  []*domain.Skill
	cursor  listCursor
	loading bool
	err     error
}

func newSkillListView(state *SharedState, level *domain.Level) *skillListView {
	return &skillListView{state: state, level: level, loading: true}
}

func (v *skillListView) ID() ViewID    { return ViewSkillList }
func (v *skillListView) Title() string { return v.level.Name }

func (v *skillListView) ShortHelp() []key.Binding {
	return []key.Binding{keyOpen, keyAdd, keyEdit, keyDelete}
}

func (v *skillListView) Init() tea.Cmd {
	return v.load()
}

func (v *skillListView) load() tea.Cmd {
	app, levelID := v.state.App, v.level.ID
	return func() tea.Msg {
		skills, err := app.Skills.ListByLevel(context.Background(), levelID)
		return skillsLoadedMsg{levelID: levelID, skills: skills, err: err}
	}
}

func (v *skillListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case skillsLoadedMsg:
		if msg.levelID != v.level.ID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.skills = msg.skills
			v.cursor.clamp(len(v.skills))
		}
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *skillListView) selected() *domain.Skill {
	if int(v.cursor) < len(v.skills) {
		return v.skills[v.cursor]
	}
	return nil
}

func (v *skillListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.cursor.move(msg.String(), len(v.skills)) {
		return nil
	}
	app := v.state.App
	switch msg.String() {
	case "a":
		fields := &skillFields{}
		levelID := v.level.ID
		return startWizardCmd(v.state, "New Skill", skillForm(fields), func() tea.Cmd {
			s := &domain.Skill{LevelID: levelID}
			fields.apply(s)
			return mutationCmd(func(ctx context.Context) error { return app.Skills.Create(ctx, s) }, "Added "+s.Name)
		})
	case "e":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		s := *sel
		fields := skillFieldsFrom(&s)
		return startWizardCmd(v.state, "Edit Skill", skillForm(fields), func() tea.Cmd {
			fields.apply(&s)
			return mutationCmd(func(ctx context.Context) error { return app.Skills.Update(ctx, &s) }, "Saved "+s.Name)
		})
	case "d":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		return deleteWizard(v.state, "skill", sel.Name, func(ctx context.Context) error {
			return app.Skills.Delete(ctx, sel.ID)
		})
	case "enter":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		v.state.Skill = sel
		return pushView(newProgressListView(v.state, sel))
	}
	return nil
}

func (v *skillListView) View() string {
	if v.loading {
		return loadingView("skills")
	}
	if v.err != nil {
		return errorView(v.err)
	}
	rows := make([]string, len(v.skills))
	for i, s := range v.skills {
		rows[i] = fmt.Sprintf("%2d. %s  %s", s.Order,
			formatter.PadRight(s.Name, 24), formatter.Dim(formatter.Truncate(s.Description, 50)))
	}
	return renderList(rows, v.cursor, "No skills yet. Press a to add one.")
}
