package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/utils"
)

type RewriteHandler struct {
	rewrite services.RewriteService
}

func NewRewriteHandler(rewrite services.RewriteService) *RewriteHandler {
	return &RewriteHandler{rewrite: rewrite}
}

type rewriteRequest struct {
	Ref  services.FieldRef `json:"ref"`
	Text string            `json:"text"`
}

func (h *RewriteHandler) Request(c *gin.Context) {
	const op = "RewriteHandler.Request"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid rewrite payload", err))
		return
	}

	variants, err := h.rewrite.Request(c.Request.Context(), accountID, callerTier(c), c.Param("doc_id"), req.Ref, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"variants": variants})
}

type applyRequest struct {
	Ref    services.FieldRef `json:"ref"`
	Choice string            `json:"choice" binding:"required"`
}

func (h *RewriteHandler) Apply(c *gin.Context) {
	const op = "RewriteHandler.Apply"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid apply payload", err))
		return
	}

	err := h.rewrite.Apply(c.Request.Context(), accountID, callerTier(c), c.Param("doc_id"), req.Ref, req.Choice)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"applied": true})
}
