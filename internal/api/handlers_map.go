package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/alexanderramin/swimadmin/internal/domain"
	"github.com/alexanderramin/swimadmin/internal/mapeditor"
)

const maxMapBody = 1 << 20

type mapResponse struct {
	Map       domain.LevelMap `json:"map"`
	Generated bool            `json:"generated"`
	Level     *domain.Level   `json:"level,omitempty"`
}

// getMap returns the stored map, or the default layout when the level has
// never been saved.
func (s *Server) getMap(w http.ResponseWriter, r *http.Request) {
	lc, err := s.svc.Maps.Load(r.Context(), r.PathValue("id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := mapResponse{Level: lc.Level}
	if lc.Map != nil {
		resp.Map = *lc.Map
	} else {
		resp.Map = mapeditor.DefaultLayout(lc.Skills)
		resp.Generated = true
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) putMap(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxMapBody))
	if err != nil {
		writeError(w, http.StatusBadRequest, "reading body: "+err.Error())
		return
	}
	if err := s.validateMapPayload(raw); err != nil {
		MapSavesTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var m domain.LevelMap
	if err := json.Unmarshal(raw, &m); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	level, err := s.svc.Maps.Replace(r.Context(), r.PathValue("id"), m)
	if err != nil {
		MapSavesTotal.WithLabelValues("failed").Inc()
		s.fail(w, r, err)
		return
	}
	MapSavesTotal.WithLabelValues("committed").Inc()
	writeJSON(w, http.StatusOK, mapResponse{Map: m, Level: level})
}
