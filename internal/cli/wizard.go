package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/alexanderramin/swimadmin/internal/cli/formatter"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// swimadminHuhTheme returns a huh theme matching the TUI palette.
func swimadminHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func newForm(groups ...*huh.Group) *huh.Form {
	return huh.NewForm(groups...).WithTheme(swimadminHuhTheme()).WithShowHelp(false)
}

// wizardConfirm creates a huh form for a yes/no confirmation.
func wizardConfirm(title string, result *bool) *huh.Form {
	return newForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Affirmative("Delete").
			Negative("Keep").
			Value(result),
	))
}

// deleteWizard asks before running del. Nothing happens on "Keep".
func deleteWizard(state *SharedState, what, name string, del func(ctx context.Context) error) tea.Cmd {
	var confirmed bool
	form := wizardConfirm("Delete "+what+" \""+name+"\"? Everything below it goes too.", &confirmed)
	return startWizardCmd(state, "Delete "+what, form, func() tea.Cmd {
		if !confirmed {
			return notice("Kept " + name)
		}
		return mutationCmd(del, "Deleted "+name)
	})
}

// mutationCmd runs fn off the UI goroutine and reports the outcome as a
// notice.
func mutationCmd(fn func(ctx context.Context) error, success string) tea.Cmd {
	return func() tea.Msg {
		if err := fn(context.Background()); err != nil {
			return noticeMsg{text: err.Error(), failed: true}
		}
		return noticeMsg{text: success}
	}
}

func validateRequired(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("required")
	}
	return nil
}

// validateNonNegativeInt accepts empty or a non-negative integer.
func validateNonNegativeInt(s string) error {
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return errors.New("enter a non-negative number")
	}
	return nil
}

func parseNonNegativeInt(s string) (int, error) {
	if err := validateNonNegativeInt(s); err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
