package cli

import (
	"strconv"
	"strings"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/charmbracelet/huh"
)

// Each record form edits a string-valued copy of the record's fields and
// applies it back once the form completes.

func textInput(title string, value *string, required bool) *huh.Input {
	in := huh.NewInput().Title(title).Value(value)
	if required {
		in = in.Validate(validateRequired)
	}
	return in
}

type programFields struct {
	Name        string
	Logo        string
	Instructors string
	Students    string
}

func programFieldsFrom(p *domain.Program) *programFields {
	return &programFields{
		Name:        p.Name,
		Logo:        p.Logo,
		Instructors: strings.Join(p.Instructors, ", "),
		Students:    strconv.Itoa(p.StudentCount),
	}
}

func (f *programFields) apply(p *domain.Program) error {
	students, err := parseNonNegativeInt(f.Students)
	if err != nil {
		return err
	}
	p.Name = strings.TrimSpace(f.Name)
	p.Logo = strings.TrimSpace(f.Logo)
	p.Instructors = splitNames(f.Instructors)
	p.StudentCount = students
	return nil
}

func programForm(f *programFields) *huh.Form {
	return newForm(huh.NewGroup(
		textInput("Name", &f.Name, true),
		textInput("Logo URL", &f.Logo, false),
		textInput("Instructors (comma separated)", &f.Instructors, false),
		huh.NewInput().Title("Students").Value(&f.Students).Validate(validateNonNegativeInt),
	))
}

type levelFields struct {
	Name        string
	Description string
	Cover       string
}

func levelFieldsFrom(l *domain.Level) *levelFields {
	return &levelFields{Name: l.Name, Description: l.Description, Cover: l.Cover}
}

func (f *levelFields) apply(l *domain.Level) {
	l.Name = strings.TrimSpace(f.Name)
	l.Description = strings.TrimSpace(f.Description)
	l.Cover = strings.TrimSpace(f.Cover)
}

func levelForm(f *levelFields) *huh.Form {
	return newForm(huh.NewGroup(
		textInput("Name", &f.Name, true),
		huh.NewText().Title("Description").Value(&f.Description).Lines(3),
		textInput("Cover image URL", &f.Cover, false),
	))
}

type skillFields struct {
	Name                  string
	Description           string
	VideoURL              string
	AnimationURL          string
	InstructorDescription string
	InstructorVideoURL    string
}

func skillFieldsFrom(s *domain.Skill) *skillFields {
	return &skillFields{
		Name:                  s.Name,
		Description:           s.Description,
		VideoURL:              s.VideoURL,
		AnimationURL:          s.AnimationURL,
		InstructorDescription: s.InstructorDescription,
		InstructorVideoURL:    s.InstructorVideoURL,
	}
}

func (f *skillFields) apply(s *domain.Skill) {
	s.Name = strings.TrimSpace(f.Name)
	s.Description = strings.TrimSpace(f.Description)
	s.VideoURL = strings.TrimSpace(f.VideoURL)
	s.AnimationURL = strings.TrimSpace(f.AnimationURL)
	s.InstructorDescription = strings.TrimSpace(f.InstructorDescription)
	s.InstructorVideoURL = strings.TrimSpace(f.InstructorVideoURL)
}

// skillForm splits student-facing and instructor-facing fields into two
// pages.
func skillForm(f *skillFields) *huh.Form {
	return newForm(
		huh.NewGroup(
			textInput("Name", &f.Name, true),
			huh.NewText().Title("Description").Value(&f.Description).Lines(3),
			textInput("Video URL", &f.VideoURL, false),
			textInput("Animation URL", &f.AnimationURL, false),
		),
		huh.NewGroup(
			huh.NewText().Title("Instructor notes").Value(&f.InstructorDescription).Lines(3),
			textInput("Instructor video URL", &f.InstructorVideoURL, false),
		),
	)
}

type progressFields struct {
	Name        string
	Description string
	Criteria    string
	Points      string
}

func progressFieldsFrom(p *domain.Progress) *progressFields {
	return &progressFields{
		Name:        p.Name,
		Description: p.Description,
		Criteria:    p.Criteria,
		Points:      strconv.Itoa(p.PointValue),
	}
}

func (f *progressFields) apply(p *domain.Progress) error {
	points, err := parseNonNegativeInt(f.Points)
	if err != nil {
		return err
	}
	p.Name = strings.TrimSpace(f.Name)
	p.Description = strings.TrimSpace(f.Description)
	p.Criteria = strings.TrimSpace(f.Criteria)
	p.PointValue = points
	return nil
}

func progressForm(f *progressFields) *huh.Form {
	return newForm(huh.NewGroup(
		textInput("Name", &f.Name, true),
		huh.NewText().Title("Description").Value(&f.Description).Lines(2),
		huh.NewText().Title("Criteria").Value(&f.Criteria).Lines(2),
		huh.NewInput().Title("Point value").Value(&f.Points).Validate(validateNonNegativeInt),
	))
}

func splitNames(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
