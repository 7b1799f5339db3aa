package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/team-registry/internal/platform/logging"
	"github.com/riskibarqy/team-registry/internal/usecase"
)

const maxRequestBodyBytes = 4 << 20

type Handler struct {
	registry      *usecase.RegistryService
	reportService *usecase.ReportService
	importService *usecase.ImportService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	registry *usecase.RegistryService,
	reportService *usecase.ReportService,
	importService *usecase.ImportService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		registry:      registry,
		reportService: reportService,
		importService: importService,
		logger:        logger,
		validator:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	teams, err := h.registry.ListAllTeams(ctx)
	if err != nil {
		h.fail(ctx, w, "healthz failed", err)
		return
	}
	players, err := h.registry.CountPlayers(ctx)
	if err != nil {
		h.fail(ctx, w, "healthz failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, healthDTO{
		Status:  "ok",
		Teams:   len(teams),
		Players: players,
	})
}

// fail logs err at warn for client errors and at error otherwise, then writes the envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	mapped := mapError(ctx, err)
	args = append(args, "request_id", RequestIDFromContext(ctx), "error", err)
	if mapped.HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeMappedError(ctx, w, mapped, err.Error())
}

func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.decodeRequest")
	defer span.End()

	decoder := sonic.ConfigDefault.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(payload); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}

	return h.validateRequest(ctx, payload)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return id, nil
}

type healthDTO struct {
	Status  string `json:"status"`
	Teams   int    `json:"teams"`
	Players int    `json:"players"`
}
