package personas

import (
	"errors"
	"net/http"

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
	r.GET("/personas/:filename", h.get)
	r.PUT("/personas/:filename", h.put)
}

func (h *Handler) get(c *gin.Context) {
	filename := c.Param("filename")
	if !IsValidFilename(filename) {
		respond.Error(c, http.StatusBadRequest, "invalid_persona", "unknown persona filename", filename)
		return
	}
	c.Set("personaFile", filename)

	p, err := h.svc.Load(c.Request.Context(), filename)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "persona_not_found", "persona document does not exist", filename)
		return
	}
	if errors.Is(err, ErrMalformed) {
		respond.Error(c, http.StatusUnprocessableEntity, "persona_malformed", "persona document could not be decoded", filename)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not load persona", nil)
		return
	}
	respond.OK(c, p)
}

func (h *Handler) put(c *gin.Context) {
	filename := c.Param("filename")
	if !IsValidFilename(filename) {
		respond.Error(c, http.StatusBadRequest, "invalid_persona", "unknown persona filename", filename)
		return
	}
	c.Set("personaFile", filename)

	var p Persona
	if err := c.ShouldBindJSON(&p); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_body", "request body must be a persona document", err.Error())
		return
	}
	if len(p.SkillMap.RadarAxes) == 0 {
		respond.Error(c, http.StatusBadRequest, "invalid_persona", "persona must define at least one radar axis", nil)
		return
	}

	if err := h.svc.Store(c.Request.Context(), filename, p); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "could not store persona", nil)
		return
	}
	respond.OK(c, gin.H{"filename": filename})
}
