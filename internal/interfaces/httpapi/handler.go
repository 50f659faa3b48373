package httpapi

import (
	"net/http"

	"github.com/oyunradar/esports-radar/internal/domain/source"
	"github.com/oyunradar/esports-radar/internal/platform/logging"
	"github.com/oyunradar/esports-radar/internal/usecase"
)

type Handler struct {
	matchService *usecase.MatchService
	teamService  *usecase.TeamService
	logger       *logging.Logger
}

func NewHandler(
	matchService *usecase.MatchService,
	teamService *usecase.TeamService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		matchService: matchService,
		teamService:  teamService,
		logger:       logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListSources(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSources")
	defer span.End()

	writeJSON(ctx, w, http.StatusOK, source.Registry())
}
