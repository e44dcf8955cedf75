package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prajwalb/sameeksha/internal/apperror"
	"github.com/prajwalb/sameeksha/internal/dto"
	"github.com/rs/zerolog/log"
)

// respondError maps component-level errors to the HTTP codes of the API
// contract. Unclassified errors become a generic 500 with no internal detail.
func respondError(ctx *gin.Context, err error) {
	if appErr, ok := apperror.As(err); ok {
		ctx.JSON(appErr.HTTPStatus(), dto.ErrorResponse{
			Message: appErr.Message,
			Fields:  appErr.Fields,
		})
		return
	}
	log.Error().Err(err).Str("path", ctx.FullPath()).Msg("Unclassified handler error")
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "operation failed"})
}

func parseUintParam(ctx *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(value), true
}
