package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mongorepo "github.com/shahhub/resumehub/internal/repositories/mongo"
	"github.com/shahhub/resumehub/internal/utils"
)

// SavedHandler serves the persisted snapshots that autosave wrote.
type SavedHandler struct {
	resumes mongorepo.ResumeRepository
}

func NewSavedHandler(resumes mongorepo.ResumeRepository) *SavedHandler {
	return &SavedHandler{resumes: resumes}
}

func (h *SavedHandler) List(c *gin.Context) {
	const op = "SavedHandler.List"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	snaps, err := h.resumes.ListByAccount(c.Request.Context(), accountID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not list saved resumes", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumes": snaps})
}

func (h *SavedHandler) Get(c *gin.Context) {
	const op = "SavedHandler.Get"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	snap, err := h.resumes.Get(c.Request.Context(), accountID, c.Param("resume_id"))
	if err == utils.ErrNotFound {
		writeError(c, utils.E(utils.CodeNotFound, op, "saved resume not found", err))
		return
	}
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not load saved resume", err))
		return
	}
	c.JSON(http.StatusOK, snap)
}

func (h *SavedHandler) Delete(c *gin.Context) {
	const op = "SavedHandler.Delete"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	err := h.resumes.Delete(c.Request.Context(), accountID, c.Param("resume_id"))
	if err == utils.ErrNotFound {
		writeError(c, utils.E(utils.CodeNotFound, op, "saved resume not found", err))
		return
	}
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not delete saved resume", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("resume_id")})
}
