package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/api/middleware"
	"github.com/shahhub/resumehub/internal/repositories/postgres"
	"github.com/shahhub/resumehub/internal/utils"
)

type AccountHandler struct {
	accounts postgres.AccountRepository
	log      *logrus.Logger
}

func NewAccountHandler(accounts postgres.AccountRepository, log *logrus.Logger) *AccountHandler {
	return &AccountHandler{accounts: accounts, log: log}
}

func (h *AccountHandler) Me(c *gin.Context) {
	const op = "AccountHandler.Me"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	acct, err := h.accounts.GetByID(c.Request.Context(), accountID)
	if err == utils.ErrNotFound {
		writeError(c, utils.E(utils.CodeNotFound, op, "account not found", err))
		return
	}
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not load account", err))
		return
	}
	c.JSON(http.StatusOK, acct)
}

// UpgradePro flips the Pro flag after a successful payment callback and
// re-mints the token so the new tier takes effect without a fresh sign-in.
func (h *AccountHandler) UpgradePro(c *gin.Context) {
	const op = "AccountHandler.UpgradePro"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.accounts.SetPro(ctx, accountID, true); err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not upgrade account", err))
		return
	}

	acct, err := h.accounts.GetByID(ctx, accountID)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not reload account", err))
		return
	}

	token, err := middleware.MintToken(acct.ID, acct.Email, acct.Name, acct.Picture, true, acct.IsGuest, signedTokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not mint token", err))
		return
	}

	h.log.WithField("account_id", accountID).Info("account upgraded to pro")
	c.JSON(http.StatusOK, gin.H{"token": token, "tier": "pro"})
}

type preferencesRequest struct {
	Template string  `json:"template"`
	Region   string  `json:"region"`
	Page     string  `json:"page"`
	FontSize float64 `json:"font_size"`
}

// SavePreferences stores the editor's formatting choices on the account row.
func (h *AccountHandler) SavePreferences(c *gin.Context) {
	const op = "AccountHandler.SavePreferences"

	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid preferences payload", err))
		return
	}

	raw, err := json.Marshal(req)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not encode preferences", err))
		return
	}

	if err := h.accounts.SetPreferences(c.Request.Context(), accountID, raw); err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not save preferences", err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": true})
}
