package httpapi

import "net/http"

func (h *Handler) ImportRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportRoster")
	defer span.End()

	var req importRosterRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		h.fail(ctx, w, "import roster rejected", err)
		return
	}
	roster, err := req.toRoster()
	if err != nil {
		h.fail(ctx, w, "import roster rejected", err)
		return
	}

	result, err := h.importService.Import(ctx, roster)
	if err != nil {
		h.fail(ctx, w, "import roster failed", err,
			"teams_inserted", result.TeamsInserted,
			"players_inserted", result.PlayersInserted,
		)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, importResultDTO{
		TeamsInserted:   result.TeamsInserted,
		PlayersInserted: result.PlayersInserted,
	})
}
