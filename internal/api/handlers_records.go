package api

import (
	"net/http"

	"github.com/alexanderramin/swimadmin/internal/domain"
)

// Update bodies use pointer fields so omitted fields keep their stored value.

type programPatch struct {
	Name         *string   `json:"name"`
	Logo         *string   `json:"logo"`
	Instructors  *[]string `json:"instructors"`
	StudentCount *int      `json:"studentCount"`
}

func (p programPatch) apply(to *domain.Program) {
	setIf(&to.Name, p.Name)
	setIf(&to.Logo, p.Logo)
	setIf(&to.Instructors, p.Instructors)
	setIf(&to.StudentCount, p.StudentCount)
}

type levelPatch struct {
	ProgramID   *string `json:"programId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Cover       *string `json:"cover"`
	Order       *int    `json:"order"`
}

func (p levelPatch) apply(to *domain.Level) {
	setIf(&to.ProgramID, p.ProgramID)
	setIf(&to.Name, p.Name)
	setIf(&to.Description, p.Description)
	setIf(&to.Cover, p.Cover)
	setIf(&to.Order, p.Order)
}

type skillPatch struct {
	LevelID               *string `json:"levelId"`
	Name                  *string `json:"name"`
	Description           *string `json:"description"`
	VideoURL              *string `json:"videoUrl"`
	AnimationURL          *string `json:"animationUrl"`
	InstructorDescription *string `json:"instructorDescription"`
	InstructorVideoURL    *string `json:"instructorVideoUrl"`
	Order                 *int    `json:"order"`
}

func (p skillPatch) apply(to *domain.Skill) {
	setIf(&to.LevelID, p.LevelID)
	setIf(&to.Name, p.Name)
	setIf(&to.Description, p.Description)
	setIf(&to.VideoURL, p.VideoURL)
	setIf(&to.AnimationURL, p.AnimationURL)
	setIf(&to.InstructorDescription, p.InstructorDescription)
	setIf(&to.InstructorVideoURL, p.InstructorVideoURL)
	setIf(&to.Order, p.Order)
}

type progressPatch struct {
	SkillID     *string `json:"skillId"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Criteria    *string `json:"criteria"`
	PointValue  *int    `json:"pointValue"`
	Order       *int    `json:"order"`
}

func (p progressPatch) apply(to *domain.Progress) {
	setIf(&to.SkillID, p.SkillID)
	setIf(&to.Name, p.Name)
	setIf(&to.Description, p.Description)
	setIf(&to.Criteria, p.Criteria)
	setIf(&to.PointValue, p.PointValue)
	setIf(&to.Order, p.Order)
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Programs

func (s *Server) listPrograms(w http.ResponseWriter, r *http.Request) {
	programs, err := s.svc.Programs.List(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(programs))
}

func (s *Server) createProgram(w http.ResponseWriter, r *http.Request) {
	var p domain.Program
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = ""
	if err := s.svc.Programs.Create(r.Context(), &p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) getProgram(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Programs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProgram(w http.ResponseWriter, r *http.Request) {
	var patch programPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := s.svc.Programs.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	patch.apply(p)
	if err := s.svc.Programs.Update(r.Context(), p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProgram(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Programs.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listLevels(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.svc.Programs.GetByID(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	levels, err := s.svc.Levels.ListByProgram(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(levels))
}

// Levels

func (s *Server) createLevel(w http.ResponseWriter, r *http.Request) {
	var l domain.Level
	if !decodeBody(w, r, &l) {
		return
	}
	l.ID = ""
	if err := s.svc.Levels.Create(r.Context(), &l); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, l)
}

func (s *Server) getLevel(w http.ResponseWriter, r *http.Request) {
	l, err := s.svc.Levels.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) updateLevel(w http.ResponseWriter, r *http.Request) {
	var patch levelPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	l, err := s.svc.Levels.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	patch.apply(l)
	if err := s.svc.Levels.Update(r.Context(), l); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) deleteLevel(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Levels.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listSkills(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.svc.Levels.GetByID(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	skills, err := s.svc.Skills.ListByLevel(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(skills))
}

// Skills

func (s *Server) createSkill(w http.ResponseWriter, r *http.Request) {
	var sk domain.Skill
	if !decodeBody(w, r, &sk) {
		return
	}
	sk.ID = ""
	if err := s.svc.Skills.Create(r.Context(), &sk); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, sk)
}

func (s *Server) getSkill(w http.ResponseWriter, r *http.Request) {
	sk, err := s.svc.Skills.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sk)
}

func (s *Server) updateSkill(w http.ResponseWriter, r *http.Request) {
	var patch skillPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	sk, err := s.svc.Skills.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	patch.apply(sk)
	if err := s.svc.Skills.Update(r.Context(), sk); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sk)
}

func (s *Server) deleteSkill(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Skills.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listProgress(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := s.svc.Skills.GetByID(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	points, err := s.svc.Progress.ListBySkill(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(points))
}

// Progress

func (s *Server) createProgress(w http.ResponseWriter, r *http.Request) {
	var p domain.Progress
	if !decodeBody(w, r, &p) {
		return
	}
	p.ID = ""
	if err := s.svc.Progress.Create(r.Context(), &p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	p, err := s.svc.Progress.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) updateProgress(w http.ResponseWriter, r *http.Request) {
	var patch progressPatch
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := s.svc.Progress.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	patch.apply(p)
	if err := s.svc.Progress.Update(r.Context(), p); err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProgress(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Progress.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// nonNil keeps empty lists encoding as [] rather than null.
func nonNil[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}
