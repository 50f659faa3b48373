package httpapi

import (
	"net/http"
	"strings"

	"github.com/oyunradar/esports-radar/internal/usecase"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	query := r.URL.Query()
	filter := usecase.TeamFilter{
		Platform: strings.TrimSpace(query.Get("platform")),
		Game:     strings.TrimSpace(query.Get("game")),
	}

	writeJSON(ctx, w, http.StatusOK, h.teamService.List(ctx, filter))
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	id := r.PathValue("id")
	found, err := h.teamService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get team failed", "team_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, found)
}
