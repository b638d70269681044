package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type levelsLoadedMsg struct {
	programID string
	levels    []*domain.Level
	err       error
}

// levelListView lists one program's levels in order.
type levelListView struct {
	state   *SharedState
	program *domain.Program
	levels  []*domain.Level
	cursor  listCursor
	loading bool
	err     error
}

func newLevelListView(state *SharedState, program *domain.Program) *levelListView {
	return &levelListView{state: state, program: program, loading: true}
}

func (v *levelListView) ID() ViewID    { return ViewLevelList }
func (v *levelListView) Title() string { return v.program.Name }

func (v *levelListView) ShortHelp() []key.Binding {
	return []key.Binding{keyOpen, keyMap, keyAdd, keyEdit, keyDelete}
}

func (v *levelListView) Init() tea.Cmd {
	return v.load()
}

func (v *levelListView) load() tea.Cmd {
	app, programID := v.state.App, v.program.ID
	return func() tea.Msg {
		levels, err := app.Levels.ListByProgram(context.Background(), programID)
		return levelsLoadedMsg{programID: programID, levels: levels, err: err}
	}
}

func (v *levelListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case levelsLoadedMsg:
		if msg.programID != v.program.ID {
			return v, nil
		}
		v.loading = false
		v.err = msg.err
		if msg.err == nil {
			v.levels = msg.levels
			v.cursor.clamp(len(v.levels))
		}
	case refreshViewMsg:
		return v, v.load()
	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *levelListView) selected() *domain.Level {
	if int(v.cursor) < len(v.levels) {
		return v.levels[v.cursor]
	}
	return nil
}

func (v *levelListView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.cursor.move(msg.String(), len(v.levels)) {
		return nil
	}
	app := v.state.App
	switch msg.String() {
	case "a":
		fields := &levelFields{}
		programID := v.program.ID
		return startWizardCmd(v.state, "New Level", levelForm(fields), func() tea.Cmd {
			l := &domain.Level{ProgramID: programID}
			fields.apply(l)
			return mutationCmd(func(ctx context.Context) error { return app.Levels.Create(ctx, l) }, "Added "+l.Name)
		})
	case "e":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		l := *sel
		fields := levelFieldsFrom(&l)
		return startWizardCmd(v.state, "Edit Level", levelForm(fields), func() tea.Cmd {
			fields.apply(&l)
			return mutationCmd(func(ctx context.Context) error { return app.Levels.Update(ctx, &l) }, "Saved "+l.Name)
		})
	case "d":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		return deleteWizard(v.state, "level", sel.Name, func(ctx context.Context) error {
			return app.Levels.Delete(ctx, sel.ID)
		})
	case "enter":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		v.state.Level = sel
		return pushView(newSkillListView(v.state, sel))
	case "m":
		sel := v.selected()
		if sel == nil {
			return nil
		}
		v.state.Level = sel
		return pushView(newLevelMapView(v.state, sel.ID, sel.Name))
	}
	return nil
}

func (v *levelListView) View() string {
	if v.loading {
		return loadingView("levels")
	}
	if v.err != nil {
		return errorView(v.err)
	}
	rows := make([]string, len(v.levels))
	for i, l := range v.levels {
		rows[i] = fmt.Sprintf("%2d. %s  %s", l.Order,
			formatter.PadRight(l.Name, 24), formatter.Dim(formatter.Truncate(l.Description, 50)))
	}
	return renderList(rows, v.cursor, "No levels yet. Press a to add one.")
}
