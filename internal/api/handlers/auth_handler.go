package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shahhub/resumehub/internal/api/middleware"
	"github.com/shahhub/resumehub/internal/models"
	"github.com/shahhub/resumehub/internal/repositories/postgres"
	"github.com/shahhub/resumehub/internal/utils"
)

const (
	guestTokenTTL  = 24 * time.Hour
	signedTokenTTL = 7 * 24 * time.Hour
)

type AuthHandler struct {
	accounts postgres.AccountRepository
	log      *logrus.Logger
}

func NewAuthHandler(accounts postgres.AccountRepository, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, log: log}
}

// StartGuest mints an anonymous trial identity. No request body; the guest
// gets an account row so upload counting works before any sign-in.
func (h *AuthHandler) StartGuest(c *gin.Context) {
	const op = "AuthHandler.StartGuest"

	id := uuid.NewString()
	now := time.Now().UTC()
	acct := &models.Account{
		ID:        id,
		Email:     "guest-" + id + "@guest.local",
		Name:      "Guest",
		IsGuest:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := h.accounts.Upsert(c.Request.Context(), acct); err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not create guest account", err))
		return
	}

	token, err := middleware.MintToken(acct.ID, acct.Email, acct.Name, "", false, true, guestTokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not mint token", err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"account_id": acct.ID,
		"token":      token,
		"tier":       "guest",
	})
}

type signInRequest struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SignIn exchanges a verified identity (the OAuth callback has already run
// upstream) for an application token. Existing accounts keep their tier
// flags; new ones start on the free tier.
func (h *AuthHandler) SignIn(c *gin.Context) {
	const op = "AuthHandler.SignIn"

	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "invalid sign-in payload", err))
		return
	}

	ctx := c.Request.Context()
	acct, err := h.accounts.GetByEmail(ctx, req.Email)
	if err == utils.ErrNotFound {
		now := time.Now().UTC()
		acct = &models.Account{
			ID:        uuid.NewString(),
			Email:     req.Email,
			Name:      req.Name,
			Picture:   req.Picture,
			CreatedAt: now,
			UpdatedAt: now,
		}
		err = h.accounts.Upsert(ctx, acct)
	}
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not load account", err))
		return
	}

	token, err := middleware.MintToken(acct.ID, acct.Email, acct.Name, acct.Picture, acct.IsPro, false, signedTokenTTL)
	if err != nil {
		writeError(c, utils.E(utils.CodeInternal, op, "could not mint token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"account_id": acct.ID,
		"token":      token,
	})
}
