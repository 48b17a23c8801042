package quiz

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"roadmap-backend/internal/shared/server/respond"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/sessions", h.create)
	r.GET("/sessions/:id", h.get)
	r.PATCH("/sessions/:id", h.patch)
}

type createSessionRequest struct {
	Responses Responses `json:"responses"`
}

func (h *Handler) create(c *gin.Context) {
	var req createSessionRequest
	if c.Request.Body != nil && c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be valid JSON", err.Error())
			return
		}
	}

	now := time.Now().UTC()
	s := Session{
		ID:        uuid.NewString(),
		Responses: req.Responses,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.store.Save(c.Request.Context(), s); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not create session", nil)
		return
	}
	c.Set("sessionId", s.ID)
	respond.Created(c, s)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)

	s, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "session_not_found", "session does not exist or has expired", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not load session", nil)
		return
	}
	respond.OK(c, s)
}

type patchSessionRequest struct {
	Events []Event `json:"events"`
}

func (h *Handler) patch(c *gin.Context) {
	id := c.Param("id")
	c.Set("sessionId", id)

	var req patchSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be valid JSON", err.Error())
		return
	}
	if len(req.Events) == 0 {
		respond.Error(c, http.StatusBadRequest, "no_events", "at least one event is required", nil)
		return
	}
	for _, ev := range req.Events {
		switch ev.Kind {
		case EventSetAnswer, EventSelectSkills, EventReset:
		default:
			respond.Error(c, http.StatusBadRequest, "invalid_event", "unknown event kind", string(ev.Kind))
			return
		}
	}

	s, err := h.store.Get(c.Request.Context(), id)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "session_not_found", "session does not exist or has expired", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not load session", nil)
		return
	}

	for _, ev := range req.Events {
		s.Responses = Apply(s.Responses, ev)
	}
	s.UpdatedAt = time.Now().UTC()

	if err := h.store.Save(c.Request.Context(), s); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not save session", nil)
		return
	}
	respond.OK(c, s)
}
