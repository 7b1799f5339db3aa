package httpapi

import (
	"net/http"
)

func (h *Handler) InsertTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InsertTeam")
	defer span.End()

	var req insertTeamRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "insert team rejected", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.fail(ctx, w, "insert team rejected", err)
		return
	}

	if err := h.registry.InsertTeam(ctx, input); err != nil {
		h.fail(ctx, w, "insert team failed", err, "team_id", req.ID)
		return
	}

	item, err := h.registry.GetTeam(ctx, input.ID)
	if err != nil {
		h.fail(ctx, w, "get inserted team failed", err, "team_id", req.ID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, teamToDTO(item))
}

func (h *Handler) ListAllTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAllTeams")
	defer span.End()

	ids, err := h.registry.ListAllTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "list teams failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, idsOrEmpty(ids))
}

func (h *Handler) ListTeamSummaries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamSummaries")
	defer span.End()

	summaries, err := h.reportService.ListTeamSummaries(ctx)
	if err != nil {
		h.fail(ctx, w, "list team summaries failed", err)
		return
	}

	items := make([]teamSummaryDTO, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, teamSummaryToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "get team rejected", err)
		return
	}

	item, err := h.registry.GetTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamToDTO(item))
}

func (h *Handler) GetTeamName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamName")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "get team name rejected", err)
		return
	}

	name, err := h.registry.GetTeamName(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team name failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nameDTO{ID: teamID, Name: name})
}

func (h *Handler) GetTeamCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamCaptain")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "get team captain rejected", err)
		return
	}

	captainID, err := h.registry.GetTeamCaptain(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "get team captain failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRefDTO{PlayerID: captainID})
}

func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPlayers")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "list team players rejected", err)
		return
	}

	ids, err := h.registry.ListTeamPlayers(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "list team players failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, idsOrEmpty(ids))
}

func (h *Handler) BestPlayerOnTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.BestPlayerOnTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "best player rejected", err)
		return
	}

	playerID, err := h.registry.BestPlayerOnTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "best player failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRefDTO{PlayerID: playerID})
}

func (h *Handler) OldestPlayerOnTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.OldestPlayerOnTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "oldest player rejected", err)
		return
	}

	playerID, err := h.registry.OldestPlayerOnTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "oldest player failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRefDTO{PlayerID: playerID})
}

func (h *Handler) HighestPaidPlayerOnTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.HighestPaidPlayerOnTeam")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "highest paid player rejected", err)
		return
	}

	playerID, err := h.registry.HighestPaidPlayerOnTeam(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "highest paid player failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerRefDTO{PlayerID: playerID})
}

func (h *Handler) GetTeamSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamSummary")
	defer span.End()

	teamID, err := pathID(r, "teamID")
	if err != nil {
		h.fail(ctx, w, "team summary rejected", err)
		return
	}

	summary, err := h.reportService.TeamSummary(ctx, teamID)
	if err != nil {
		h.fail(ctx, w, "team summary failed", err, "team_id", teamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teamSummaryToDTO(summary))
}

func (h *Handler) AwayUniformColor(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AwayUniformColor")
	defer span.End()

	homeTeamID, err := pathID(r, "homeTeamID")
	if err != nil {
		h.fail(ctx, w, "away uniform rejected", err)
		return
	}
	awayTeamID, err := pathID(r, "awayTeamID")
	if err != nil {
		h.fail(ctx, w, "away uniform rejected", err)
		return
	}

	color, err := h.registry.AwayUniformColor(ctx, homeTeamID, awayTeamID)
	if err != nil {
		h.fail(ctx, w, "away uniform failed", err, "home_team_id", homeTeamID, "away_team_id", awayTeamID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, awayUniformDTO{
		HomeTeamID: homeTeamID,
		AwayTeamID: awayTeamID,
		Color:      color,
	})
}
