package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/oyunradar/esports-radar/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	query := r.URL.Query()
	filter := usecase.MatchFilter{
		Platform: strings.TrimSpace(query.Get("platform")),
		Game:     strings.TrimSpace(query.Get("game")),
		Status:   strings.TrimSpace(query.Get("status")),
		Search:   strings.TrimSpace(query.Get("search")),
	}
	if raw := strings.TrimSpace(query.Get("live")); raw != "" {
		live, err := strconv.ParseBool(raw)
		if err != nil {
			h.logger.DebugContext(ctx, "ignoring invalid live flag", "value", raw)
		} else {
			filter.LiveOnly = live
		}
	}

	writeJSON(ctx, w, http.StatusOK, h.matchService.List(ctx, filter))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	id := r.PathValue("id")
	found, err := h.matchService.GetByID(ctx, id)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", id, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeJSON(ctx, w, http.StatusOK, found)
}
