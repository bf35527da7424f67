package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nixie-tech-llc/courier/internal/http/middleware"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFuncWithAuth func(ctx *gin.Context, userID int) (any, *APIError)
type HandlerFunc func(ctx *gin.Context) (any, *APIError)

func ResolveEndpointWithAuth(h HandlerFuncWithAuth) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID, ok := middleware.CurrentUserID(ctx)
		if !ok {
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		result, apiError := h(ctx, userID)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiError := h(ctx)
		if apiError != nil {
			ctx.JSON(apiError.Code, gin.H{"error": apiError.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}
