package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchup-insight/internal/platform/logging"
	"github.com/riskibarqy/matchup-insight/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

type Handler struct {
	analysisService *usecase.AnalysisService
	statsService    *usecase.StatsService
	renderer        Renderer
	season          int
	logger          *logging.Logger
	validator       *validator.Validate
}

func NewHandler(
	analysisService *usecase.AnalysisService,
	statsService *usecase.StatsService,
	renderer Renderer,
	season int,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		analysisService: analysisService,
		statsService:    statsService,
		renderer:        renderer,
		season:          season,
		logger:          logger,
		validator:       validator.New(),
	}
}

type analyzeRequest struct {
	Team1ID int64 `validate:"required,gt=0"`
	Team2ID int64 `validate:"required,gt=0"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Index")
	defer span.End()

	h.renderPage(ctx, w, http.StatusOK, templateIndex, indexPage{Season: h.season})
}

// Analyze handles the HTML form post.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Analyze")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		h.renderPage(ctx, w, http.StatusBadRequest, templateResult, resultPage{Error: "Could not read the submitted form."})
		return
	}

	req, err := h.parseAnalyzeRequest(ctx, r.PostForm.Get("team1_id"), r.PostForm.Get("team2_id"))
	if err != nil {
		h.logger.WarnContext(ctx, "invalid analyze form", "error", err)
		h.renderPage(ctx, w, http.StatusBadRequest, templateResult, resultPage{Error: "Both team ids must be positive integers."})
		return
	}

	result, err := h.analysisService.Analyze(ctx, req.Team1ID, req.Team2ID)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze failed", "team1_id", req.Team1ID, "team2_id", req.Team2ID, "error", err)
		mapped := mapError(err)
		h.renderPage(ctx, w, mapped.HTTPStatus, templateResult, resultPage{Error: "The analysis could not be completed."})
		return
	}

	h.renderPage(ctx, w, http.StatusOK, templateResult, newResultPage(result))
}

// GetAnalysis is the JSON counterpart of Analyze.
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetAnalysis")
	defer span.End()

	query := r.URL.Query()
	req, err := h.parseAnalyzeRequest(ctx, query.Get("team1_id"), query.Get("team2_id"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.analysisService.Analyze(ctx, req.Team1ID, req.Team2ID)
	if err != nil {
		h.logger.WarnContext(ctx, "analyze failed", "team1_id", req.Team1ID, "team2_id", req.Team2ID, "error", err)
		writeError(w, err)
		return
	}
	if result.Failed() {
		writeErrorMessage(w, usecase.ErrInsufficientData, result.Error)
		return
	}

	writeSuccess(w, http.StatusOK, analysisToDTO(result))
}

func (h *Handler) GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamStatistics")
	defer span.End()

	teamID, err := parseTeamID(r.PathValue("teamID"))
	if err != nil {
		writeError(w, err)
		return
	}

	stats, err := h.statsService.GetTeamStatistics(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get team statistics failed", "team_id", teamID, "error", err)
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, teamStatisticsDTO{
		TeamID:         teamID,
		Season:         h.season,
		TeamStatistics: stats,
	})
}

func (h *Handler) parseAnalyzeRequest(ctx context.Context, rawTeam1, rawTeam2 string) (analyzeRequest, error) {
	team1ID, err := parseTeamID(rawTeam1)
	if err != nil {
		return analyzeRequest{}, fmt.Errorf("team1_id: %w", err)
	}
	team2ID, err := parseTeamID(rawTeam2)
	if err != nil {
		return analyzeRequest{}, fmt.Errorf("team2_id: %w", err)
	}

	req := analyzeRequest{Team1ID: team1ID, Team2ID: team2ID}
	if err := h.validateRequest(ctx, req); err != nil {
		return analyzeRequest{}, err
	}
	return req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// renderPage buffers the page so a failing template never leaves a
// half-written response behind.
func (h *Handler) renderPage(ctx context.Context, w http.ResponseWriter, status int, name string, data any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := h.renderer.Render(buf, name, data); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func parseTeamID(raw string) (int64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: team id %q is not an integer", usecase.ErrInvalidInput, value)
	}
	return id, nil
}
