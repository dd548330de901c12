package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/dlist/internal/api/middleware"
	"github.com/povarna/dlist/internal/executor"
	"github.com/povarna/dlist/internal/models"
	"github.com/povarna/dlist/internal/store"
	"github.com/rs/zerolog"
)

type Handler struct {
	executor *executor.Executor
	logger   *zerolog.Logger
}

func NewHandler(exec *executor.Executor, logger *zerolog.Logger) *Handler {
	return &Handler{
		executor: exec,
		logger:   logger,
	}
}

// GET /api/v1/lists
func (h *Handler) ListNames(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, ListsResponse{Names: h.executor.Names()})
}

// GET /api/v1/lists/{name}
func (h *Handler) Render(req *restful.Request, resp *restful.Response) {
	h.execute(req, resp, models.Command{
		List: req.PathParameter("name"),
		Op:   models.OpRender,
	})
}

// POST /api/v1/lists/{name}/commands
// Body: CommandRequest
// Returns: Result
func (h *Handler) Command(req *restful.Request, resp *restful.Response) {
	var body CommandRequest
	if err := req.ReadEntity(&body); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.execute(req, resp, models.Command{
		ID:     body.ID,
		List:   req.PathParameter("name"),
		Op:     body.Op,
		Value:  body.Value,
		Index:  body.Index,
		Target: body.Target,
	})
}

// DELETE /api/v1/lists/{name}
func (h *Handler) Drop(req *restful.Request, resp *restful.Response) {
	cmd := models.Command{
		List: req.PathParameter("name"),
		Op:   models.OpDrop,
	}

	if _, err := h.executor.Execute(req.Request.Context(), cmd); err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}
	resp.WriteHeader(http.StatusNoContent)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

func (h *Handler) execute(req *restful.Request, resp *restful.Response, cmd models.Command) {
	result, err := h.executor.Execute(req.Request.Context(), cmd)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusUnprocessableEntity {
			resp.WriteHeaderAndEntity(status, result)
			return
		}
		middleware.HandleError(resp, err, status)
		return
	}

	h.logger.Info().
		Str("list", result.List).
		Str("op", string(result.Op)).
		Int("length", result.Length).
		Msg("Command complete")

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, executor.ErrInvalidCommand):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrListNotFound):
		return http.StatusNotFound
	}

	switch executor.KindOf(err) {
	case models.ErrorKindEmptyCollection, models.ErrorKindNotFound, models.ErrorKindIndexOutOfRange:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
