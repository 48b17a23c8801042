package roadmap

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"roadmap-backend/internal/personas"
	"roadmap-backend/internal/quiz"
	"roadmap-backend/internal/shared/server/respond"
)

type Handler struct {
	svc      *Service
	sessions quiz.Store
}

func NewHandler(svc *Service, sessions quiz.Store) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/roadmap", h.build)
}

type buildRequest struct {
	SessionID string          `json:"sessionId,omitempty"`
	Responses *quiz.Responses `json:"responses,omitempty"`
}

func (h *Handler) build(c *gin.Context) {
	var req buildRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be valid JSON", err.Error())
		return
	}

	var responses quiz.Responses
	switch {
	case req.SessionID != "":
		c.Set("sessionId", req.SessionID)
		s, err := h.sessions.Get(c.Request.Context(), req.SessionID)
		if errors.Is(err, quiz.ErrNotFound) {
			respond.Error(c, http.StatusNotFound, "session_not_found", "session does not exist or has expired", nil)
			return
		}
		if err != nil {
			respond.Error(c, http.StatusInternalServerError, "internal", "could not load session", nil)
			return
		}
		responses = s.Responses
	case req.Responses != nil:
		responses = *req.Responses
	default:
		respond.Error(c, http.StatusBadRequest, "invalid_body", "either sessionId or responses is required", nil)
		return
	}

	view, err := h.svc.Build(c.Request.Context(), responses)
	if err != nil {
		c.Set("personaFile", personas.Resolve(responses).Filename())
		if personas.IsNotFound(err) {
			respond.Error(c, http.StatusNotFound, "persona_not_found", "unable to build your roadmap", nil)
			return
		}
		respond.Error(c, http.StatusBadGateway, "persona_unavailable", "unable to build your roadmap", nil)
		return
	}

	c.Set("personaFile", view.PersonaFile)
	respond.OK(c, view)
}
