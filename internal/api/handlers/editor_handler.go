package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/utils"
)

type EditorHandler struct {
	editor   services.EditorService
	autosave *services.AutosaveService
}

func NewEditorHandler(editor services.EditorService, autosave *services.AutosaveService) *EditorHandler {
	return &EditorHandler{editor: editor, autosave: autosave}
}

// Open starts a fresh editing session and returns the empty document.
func (h *EditorHandler) Open(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	doc := h.editor.Open(accountID, callerTier(c))
	c.JSON(http.StatusCreated, doc)
}

func (h *EditorHandler) Get(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	doc, err := h.editor.Get(accountID, c.Param("doc_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *EditorHandler) Close(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	docID := c.Param("doc_id")
	if err := h.editor.Close(accountID, docID); err != nil {
		writeError(c, err)
		return
	}
	h.autosave.Cancel(docID)
	c.JSON(http.StatusOK, gin.H{"closed": docID})
}

type personalFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *EditorHandler) UpdatePersonal(c *gin.Context) {
	const op = "EditorHandler.UpdatePersonal"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req personalFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid field payload", err))
		return
	}

	if err := h.editor.UpdatePersonalField(accountID, callerTier(c), c.Param("doc_id"), req.Field, req.Value); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": req.Field})
}

func (h *EditorHandler) AddEntry(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	col := models.Collection(c.Param("collection"))
	id, err := h.editor.AddEntry(accountID, callerTier(c), c.Param("doc_id"), col)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"entry_id": id})
}

type entryFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *EditorHandler) UpdateEntry(c *gin.Context) {
	const op = "EditorHandler.UpdateEntry"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req entryFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid field payload", err))
		return
	}

	col := models.Collection(c.Param("collection"))
	err := h.editor.UpdateEntryField(accountID, callerTier(c), c.Param("doc_id"), col, c.Param("entry_id"), req.Field, req.Value)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": req.Field})
}

func (h *EditorHandler) RemoveEntry(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	col := models.Collection(c.Param("collection"))
	err := h.editor.RemoveEntry(accountID, callerTier(c), c.Param("doc_id"), col, c.Param("entry_id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": c.Param("entry_id")})
}
