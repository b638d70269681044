package cli

import "github.com/alexanderramin/swimadmin/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Drill-down context, set as the user enters each list.
	Program *domain.Program
	Level   *domain.Level
	Skill   *domain.Skill

	Notice       string
	NoticeFailed bool

	// Terminal dimensions
	Width  int
	Height int
}

// headerLines is the height of the breadcrumb header above the content.
const headerLines = 2

// ContentHeight returns the rows left for view content after the header
// and the two-line status bar.
func (s *SharedState) ContentHeight() int {
	h := s.Height - headerLines - 2
	if h < 1 {
		return 1
	}
	return h
}

func (s *SharedState) setNotice(text string, failed bool) {
	s.Notice = text
	s.NoticeFailed = failed
}

func (s *SharedState) clearNotice() {
	s.Notice = ""
	s.NoticeFailed = false
}
