package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/courtside/internal/platform/logging"
	"github.com/riskibarqy/courtside/internal/usecase"
)

type Handler struct {
	teamStatsService   *usecase.TeamStatsService
	playerStatsService *usecase.PlayerStatsService
	scheduleService    *usecase.ScheduleService
	scoutingService    *usecase.ScoutingService
	logger             *logging.Logger
	validator          *validator.Validate
}

func NewHandler(
	teamStatsService *usecase.TeamStatsService,
	playerStatsService *usecase.PlayerStatsService,
	scheduleService *usecase.ScheduleService,
	scoutingService *usecase.ScoutingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		teamStatsService:   teamStatsService,
		playerStatsService: playerStatsService,
		scheduleService:    scheduleService,
		scoutingService:    scoutingService,
		logger:             logger,
		validator:          validator.New(),
	}
}

// logFailure drops to debug when the client went away first.
func (h *Handler) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if errors.Is(err, context.Canceled) {
		h.logger.DebugContext(ctx, msg, args...)
		return
	}
	h.logger.WarnContext(ctx, msg, args...)
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "ListTeamsByLeague")
	defer span.End()

	leagueID := strings.TrimSpace(r.PathValue("leagueID"))
	teams, err := h.teamStatsService.ListTeams(ctx, leagueID)
	if err != nil {
		h.logFailure(ctx, "list teams failed", err, "league_id", leagueID)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamOverview")
	defer span.End()

	req, err := h.teamPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.teamStatsService.GetOverview(ctx, req.LeagueID, req.TeamID)
	if err != nil {
		h.logFailure(ctx, "get team overview failed", err, "league_id", req.LeagueID, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamOverviewToDTO(overview))
}

func (h *Handler) GetTeamShotChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamShotChart")
	defer span.End()

	req, err := h.teamPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	chart, err := h.teamStatsService.GetShotChart(ctx, req.LeagueID, req.TeamID)
	if err != nil {
		h.logFailure(ctx, "get shot chart failed", err, "league_id", req.LeagueID, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, shotChartToDTO(chart))
}

func (h *Handler) GetTeamSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamSchedule")
	defer span.End()

	req, err := h.teamPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.scheduleService.ListByTeam(ctx, req.LeagueID, req.TeamID)
	if err != nil {
		h.logFailure(ctx, "list schedule failed", err, "league_id", req.LeagueID, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	items := make([]scheduleEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, scheduleEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeamScouting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetTeamScouting")
	defer span.End()

	req, err := h.teamPath(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	opponents, err := parseIDList(r.URL.Query().Get("opponents"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := scoutingQuery{Opponents: opponents}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.scoutingService.GetReport(ctx, req.LeagueID, req.TeamID, query.Opponents)
	if err != nil {
		h.logFailure(ctx, "get scouting report failed", err, "league_id", req.LeagueID, "team_id", req.TeamID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, scoutingReportToDTO(report))
}

func (h *Handler) GetPlayerOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r, "GetPlayerOverview")
	defer span.End()

	playerID, err := parseID(r.PathValue("playerID"), "player")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	window, err := parseOptionalInt(r.URL.Query().Get("window"), "window")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	req := playerOverviewRequest{
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
		PlayerID: playerID,
		Window:   window,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.playerStatsService.GetOverview(ctx, req.LeagueID, req.PlayerID, req.Window)
	if err != nil {
		h.logFailure(ctx, "get player overview failed", err, "league_id", req.LeagueID, "player_id", req.PlayerID)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerOverviewToDTO(overview))
}

func (h *Handler) teamPath(ctx context.Context, r *http.Request) (teamPathRequest, error) {
	teamID, err := parseID(r.PathValue("teamID"), "team")
	if err != nil {
		return teamPathRequest{}, err
	}

	req := teamPathRequest{
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
		TeamID:   teamID,
	}
	if err := h.validateRequest(ctx, req); err != nil {
		return teamPathRequest{}, err
	}
	return req, nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type teamPathRequest struct {
	LeagueID string `validate:"required,max=64"`
	TeamID   int64  `validate:"gt=0"`
}

type playerOverviewRequest struct {
	LeagueID string `validate:"required,max=64"`
	PlayerID int64  `validate:"gt=0"`
	Window   int    `validate:"gte=0,lte=82"`
}

type scoutingQuery struct {
	Opponents []int64 `validate:"max=32,dive,gt=0"`
}

func parseID(raw, what string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s id %q", usecase.ErrInvalidInput, what, raw)
	}
	return value, nil
}

func parseOptionalInt(raw, what string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s %q", usecase.ErrInvalidInput, what, raw)
	}
	return value, nil
}

// parseIDList reads a comma separated id list such as "1,2,3". Blank items
// are skipped.
func parseIDList(raw string) ([]int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}
		id, err := parseID(part, "opponent")
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
