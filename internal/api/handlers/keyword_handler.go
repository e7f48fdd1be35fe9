package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/services"
)

type KeywordHandler struct {
	editor   services.EditorService
	keywords services.KeywordService
}

func NewKeywordHandler(editor services.EditorService, keywords services.KeywordService) *KeywordHandler {
	return &KeywordHandler{editor: editor, keywords: keywords}
}

// Suggest derives role keywords from the document's summary.
func (h *KeywordHandler) Suggest(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	docID := c.Param("doc_id")

	doc, err := h.editor.Get(accountID, docID)
	if err != nil {
		writeError(c, err)
		return
	}

	kws, err := h.keywords.Suggest(c.Request.Context(), accountID, callerTier(c), docID, doc.PersonalInfo.Summary)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keywords": kws})
}
