package health

import (
	"net/http"
	"rantoo/shared/constant"
	"rantoo/shared/timezone"
	"rantoo/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
)

type Response struct {
	Status    string `json:"status"    example:"healthy"`
	Timestamp string `json:"timestamp" example:"2025-09-10T13:11:00Z"`
}

type Handler struct {
	now func() time.Time
}

func New() Handler {
	return Handler{
		now: timezone.Now,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// Health reports that the process is up.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} health.Response
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Response{
		Status:    constant.HealthStatusHealthy,
		Timestamp: handler.now().Format(time.RFC3339),
	})
}
