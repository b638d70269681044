package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type progressLoadedMsg struct {
	skillID string
	points  []*domain.Progress
	err     error
}

// progressListView lists one skill's progress points.
type progressListView struct {
	state   *SharedState
	skill   *domain.Skill
	points  []*domain.Progress
	cursor  listCursor
	loading bool
	err     error
}

func newProgressListView(state *SharedState, skill *domain.Skill) *progressListView {
	return &progressListView{state: state, skill: skill, loading: true}
}

func (v *progressListView) ID() ViewID    { return ViewProgressList }
func (v *progressListView) Title() string { return v.skill.Name }

func (v *progressListView) ShortHelp() []key.Binding {
	return []key.Binding{keyAdd, keyEdit, keyDelete}
}

func (v *progressListView) Init() tea.Cmd {
	return v.load()
}

func (v *progressListView) load() tea.Cmd {
	app, skillID := v.state.App, v.skill.ID
	return func() tea.Msg {
		points, err := app.Progress.ListBySkill(context.Background(), skillID)
		return progressLoadedMsg{skillID: skillID, points: points, err: err}
	}
}

func (v *progressListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.skillID != v.skill.ID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.points = msg.points
			v.cursor.clamp(len(v.points))
		}
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *progressListView) selected() *domain.Progress {
	if int(v.cursor) < len(v.points) {
		return v.points[v.cursor]
	}
	return nil
}

func (v *progressListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.cursor.move(msg.String(), len(v.points)) {
		return nil
	}
	app := v.state.App
	switch msg.String() {
	case "a":
		fields := &progressFields{Points: "5"}
		skillID := v.skill.ID
		return startWizardCmd(v.state, "New Progress Point", progressForm(fields), func() tea.Cmd {
			p := &domain.Progress{SkillID: skillID}
			if err := fields.apply(p); err != nil {
				return failure(err)
			}
			return mutationCmd(func(ctx context.Context) error { return app.Progress.Create(ctx, p) }, "Added "+p.Name)
		})
	case "e":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		p := *sel
		fields := progressFieldsFrom(&p)
		return startWizardCmd(v.state, "Edit Progress Point", progressForm(fields), func() tea.Cmd {
			if err := fields.apply(&p); err != nil {
				return failure(err)
			}
			return mutationCmd(func(ctx context.Context) error { return app.Progress.Update(ctx, &p) }, "Saved "+p.Name)
		})
	case "d":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		return deleteWizard(v.state, "progress point", sel.Name, func(ctx context.Context) error {
			return app.Progress.Delete(ctx, sel.ID)
		})
	}
	return nil
}

func (v *progressListView) View() string {
	if v.loading {
		return loadingView("progress points")
	}
	if v.err != nil {
		return errorView(v.err)
	}
	rows := make([]string, len(v.points))
	for i, p := range v.points {
		rows[i] = fmt.Sprintf("%2d. %s  %s  %s", p.Order,
			formatter.PadRight(p.Name, 34),
			formatter.StyleYellow.Render(fmt.Sprintf("%2d pts", p.PointValue)),
			formatter.Dim(formatter.Truncate(p.Criteria, 40)))
	}
	return renderList(rows, v.cursor, "No progress points yet. Press a to add one.")
}
