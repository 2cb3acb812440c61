package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svs UserServicer
}

func NewUserHandler(svs UserServicer) *UserHandler {
	return &UserHandler{
		svs: svs,
	}
}

type BalanceResponse struct {
	Balance int64 `json:"balance"`
}

// Balance GET UserGroup + BalanceRoute. Баланс юзера.
func (h *UserHandler) Balance(c *gin.Context) {
	var query openIDQuery
	if bindErr := c.ShouldBindQuery(&query); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	balance, err := h.svs.Balance(reqCtx, query.OpenID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, &BalanceResponse{Balance: balance})
}
