package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type programsLoadedMsg struct {
	programs []*domain.Program
	summary  *service.DashboardSummary
	err      error
}

// programListView is the home view: every program plus the dashboard
// counts.
type programListView struct {
	state    *SharedState
	programs []*domain.Program
	summary  *service.DashboardSummary
	cursor   listCursor
	loading  bool
	err      error
}

func newProgramListView(state *SharedState) *programListView {
	return &programListView{state: state, loading: true}
}

func (v *programListView) ID() ViewID    { return ViewProgramList }
func (v *programListView) Title() string { return "Programs" }

func (v *programListView) ShortHelp() []key.Binding {
	return []key.Binding{keyOpen, keyAdd, keyEdit, keyDelete}
}

func (v *programListView) Init() tea.Cmd {
	return v.load()
}

func (v *programListView) load() tea.Cmd {
	app := v.state.App
	return func() tea.Msg {
		ctx := context.Background()
		programs, err := app.Programs.List(ctx)
		if err != nil {
			return programsLoadedMsg{err: err}
		}
		summary, err := app.Dashboard.Summary(ctx)
		return programsLoadedMsg{programs: programs, summary: summary, err: err}
	}
}

func (v *programListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case programsLoadedMsg:
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.programs, v.summary = msg.programs, msg.summary
			v.cursor.clamp(len(v.programs))
		}
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *programListView) selected() *domain.Program {
	if int(v.cursor) < len(v.programs) {
		return v.programs[v.cursor]
	}
	return nil
}

func (v *programListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.cursor.move(msg.String(), len(v.programs)) {
		return nil
	}
	app := v.state.App
	switch msg.String() {
	case "a":
		fields := &programFields{Students: "0"}
		return startWizardCmd(v.state, "New Program", programForm(fields), func() tea.Cmd {
			p := &domain.Program{}
			if err := fields.apply(p); err != nil {
				return failure(err)
			}
			return mutationCmd(func(ctx context.Context) error { return app.Programs.Create(ctx, p) }, "Added "+p.Name)
		})
	case "e":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		p := *sel
		fields := programFieldsFrom(&p)
		return startWizardCmd(v.state, "Edit Program", programForm(fields), func() tea.Cmd {
			if err := fields.apply(&p); err != nil {
				return failure(err)
			}
			return mutationCmd(func(ctx context.Context) error { return app.Programs.Update(ctx, &p) }, "Saved "+p.Name)
		})
	case "d":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		return deleteWizard(v.state, "program", sel.Name, func(ctx context.Context) error {
			return app.Programs.Delete(ctx, sel.ID)
		})
	case "enter":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		v.state.Program = sel
		return pushView(newLevelListView(v.state, sel))
	}
	return nil
}

func (v *programListView) View() string {
	if v.loading {
		return loadingView("programs")
	}
	if v.err != nil {
		return errorView(v.err)
	}

	var b strings.Builder
	if v.summary != nil {
		b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("%d programs · %d levels · %d skills · %d progress points",
			v.summary.Programs, v.summary.Levels, v.summary.Skills, v.summary.Progress)) + "\n")
	}
	rows := make([]string, len(v.programs))
	for i, p := range v.programs {
		instructors := "no instructors"
		if len(p.Instructors) > 0 {
			instructors = strings.Join(p.Instructors, ", ")
		}
		rows[i] = fmt.Sprintf("%s  %s  %3d students",
			formatter.PadRight(p.Name, 24), formatter.PadRight(instructors, 30), p.StudentCount)
	}
	b.WriteString(renderList(rows, v.cursor, "No programs yet. Press a to add one."))
	return b.String()
}
