package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/team-registry/internal/usecase"
)

const defaultTopPlayers = 10

func (h *Handler) InsertPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.InsertPlayer")
	defer span.End()

	var req insertPlayerRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "insert player rejected", err)
		return
	}
	input, err := req.toInput()
	if err != nil {
		h.fail(ctx, w, "insert player rejected", err)
		return
	}

	if err := h.registry.InsertPlayer(ctx, input); err != nil {
		h.fail(ctx, w, "insert player failed", err, "player_id", req.ID, "team_id", req.TeamID)
		return
	}

	item, err := h.registry.GetPlayer(ctx, input.ID)
	if err != nil {
		h.fail(ctx, w, "get inserted player failed", err, "player_id", req.ID)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(item))
}

func (h *Handler) TopPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.TopPlayers")
	defer span.End()

	n := defaultTopPlayers
	if raw := strings.TrimSpace(r.URL.Query().Get("n")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.fail(ctx, w, "top players rejected", fmt.Errorf("%w: n must be an integer, got %q", usecase.ErrInvalidInput, raw))
			return
		}
		n = parsed
	}

	ids, err := h.registry.TopPlayers(ctx, n)
	if err != nil {
		h.fail(ctx, w, "top players failed", err, "n", n)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, idsOrEmpty(ids))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.fail(ctx, w, "get player rejected", err)
		return
	}

	item, err := h.registry.GetPlayer(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) GetPlayerName(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerName")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.fail(ctx, w, "get player name rejected", err)
		return
	}

	name, err := h.registry.GetPlayerName(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player name failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, nameDTO{ID: playerID, Name: name})
}

func (h *Handler) GetPlayerSalary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSalary")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.fail(ctx, w, "get player salary rejected", err)
		return
	}

	salary, err := h.registry.GetPlayerSalary(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player salary failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, salaryDTO{PlayerID: playerID, Salary: salary.String()})
}

func (h *Handler) SetCaptain(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetCaptain")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		h.fail(ctx, w, "set captain rejected", err)
		return
	}

	if err := h.registry.SetCaptain(ctx, playerID); err != nil {
		h.fail(ctx, w, "set captain failed", err, "player_id", playerID)
		return
	}

	writeNoContent(w)
}
