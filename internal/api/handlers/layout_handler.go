package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/layout"
	"github.com/shahhub/resumehub/internal/services"
	"github.com/shahhub/resumehub/internal/utils"
)

type LayoutHandler struct {
	editor services.EditorService
}

func NewLayoutHandler(editor services.EditorService) *LayoutHandler {
	return &LayoutHandler{editor: editor}
}

type layoutRequest struct {
	Page     layout.PageSize `json:"page"`
	FontSize float64         `json:"font_size"`
	Template layout.Template `json:"template"`
	Region   layout.Region   `json:"region"`
}

// Compute paginates the current document state under the requested
// formatting parameters.
func (h *LayoutHandler) Compute(c *gin.Context) {
	const op = "LayoutHandler.Compute"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}
	tier := callerTier(c)

	var req layoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid layout parameters", err))
		return
	}

	params := layout.Params{
		Page:     req.Page,
		FontSize: req.FontSize,
		Template: req.Template,
		Region:   req.Region,
	}

	// non-Pro callers cannot select a Pro-only template
	if req.Template != "" {
		allowed := false
		for _, t := range layout.AvailableTemplates(tier) {
			if t == req.Template {
				allowed = true
				break
			}
		}
		if !allowed {
			writeError(c, utils.E(utils.CodeUpgradeRequired, op, "this template requires the Pro plan", nil))
			return
		}
	}

	doc, err := h.editor.Get(accountID, c.Param("doc_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, layout.Compute(doc, params, tier))
}

// Templates returns the catalog visible to the caller's tier.
func (h *LayoutHandler) Templates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"templates": layout.AvailableTemplates(callerTier(c)),
	})
}
