package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"kitchenpos/apperror"
	"kitchenpos/middleware"
	"kitchenpos/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the services over HTTP.
type Handler struct {
	Products    *services.ProductService
	MenuGroups  *services.MenuGroupService
	Menus       *services.MenuService
	Tables      *services.OrderTableService
	TableGroups *services.TableGroupService
	Staff       *services.StaffService
	Auth        *middleware.Auth
}

// respondError writes coded domain errors with their mapped status. Anything
// else is logged and reported as a 500 without detail.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) {
		if status := appErr.Code.HTTPStatus(); status < http.StatusInternalServerError {
			body := gin.H{"error": appErr.Message, "code": appErr.Code}
			if len(appErr.Metadata) > 0 {
				body["details"] = appErr.Metadata
			}
			c.JSON(status, body)
			return
		}
	}

	_ = c.Error(err)
	zap.L().Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id", "code": apperror.CodeInvalidArgument})
		return 0, false
	}
	return uint(id), true
}

// Health reports liveness.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "kitchenpos",
	})
}
