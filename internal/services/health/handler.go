package health

import (
	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/shared/server/respond"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.GET("/health", h.get)
}

func (h *Handler) get(c *gin.Context) {
	respond.OK(c, h.svc.Status())
}
