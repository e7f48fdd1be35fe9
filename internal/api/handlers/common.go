package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shahhub/resumehub/internal/access"
	"github.com/shahhub/resumehub/internal/api/middleware"
	"github.com/shahhub/resumehub/internal/utils"
)

type errorBody struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"message"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)

	code := utils.CodeInternal
	msg := "internal error"
	var ae *utils.AppError
	if errors.As(err, &ae) {
		code = ae.Code
		if ae.Message != "" {
			msg = ae.Message
		}
	}

	_ = c.Error(err)
	c.AbortWithStatusJSON(status, errorBody{Code: code, Message: msg})
}

// requireAccountID reads the identity set by JWTAuth; aborts when absent.
func requireAccountID(c *gin.Context) (string, bool) {
	v, ok := c.Get("account_id")
	id, _ := v.(string)
	if !ok || id == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
			Code:    utils.CodeUnauthorized,
			Message: "not authenticated",
		})
		return "", false
	}
	return id, true
}

func callerTier(c *gin.Context) access.Tier {
	return middleware.TierFrom(c)
}
