package handler

import (
	"log/slog"
	"net/http"

	"service_marketplace/internal/model"
	"service_marketplace/internal/service"
	"service_marketplace/internal/validation"

	"github.com/gin-gonic/gin"
)

// WorkerHandler handles worker profile requests
type WorkerHandler struct {
	service   service.WorkerService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewWorkerHandler creates a new WorkerHandler
func NewWorkerHandler(s service.WorkerService, v *validation.Validator, logger *slog.Logger) *WorkerHandler {
	return &WorkerHandler{service: s, validator: v, logger: logger}
}

func (h *WorkerHandler) CreateWorker(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	var req model.InsertWorker
	if err := bindJSON(c, h.validator, &req); err != nil {
		writeError(c, h.logger, err)
		return
	}

	worker, err := h.service.Create(c.Request.Context(), user, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, worker)
}

func (h *WorkerHandler) ListWorkers(c *gin.Context) {
	workers, err := h.service.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	if workers == nil {
		workers = []model.Worker{}
	}
	c.JSON(http.StatusOK, workers)
}

func (h *WorkerHandler) GetWorker(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	worker, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// UpdateWorker applies a partial update. Absent fields keep their value.
func (h *WorkerHandler) UpdateWorker(c *gin.Context) {
	user, err := getAuthUser(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	id, err := parseID(c)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	var patch model.WorkerPatch
	if err := bindJSON(c, h.validator, &patch); err != nil {
		writeError(c, h.logger, err)
		return
	}

	worker, err := h.service.Update(c.Request.Context(), user, id, patch)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, worker)
}

// RegisterWorkerRoutes registers worker routes
func (h *WorkerHandler) RegisterWorkerRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc, workerMW gin.HandlerFunc) {
	workerRoutes := rg.Group("/workers")
	{
		workerRoutes.GET("", h.ListWorkers)
		workerRoutes.GET("/:id", h.GetWorker)
		workerRoutes.POST("", authMW, workerMW, h.CreateWorker)
		workerRoutes.PATCH("/:id", authMW, h.UpdateWorker) // Service layer checks ownership
	}
}
