package controllers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/services"
)

// fail maps service errors onto the response envelope. Storage errors are
// logged and hidden behind a generic 500.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		resp.BadRequest(c, errMessage(err))
	case errors.Is(err, services.ErrNotFound):
		resp.NotFound(c, errMessage(err))
	case errors.Is(err, services.ErrConflict):
		resp.Conflict(c, errMessage(err))
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		resp.ServerError(c)
	}
}

// errMessage strips the sentinel prefix ("validation: ...") for the client.
func errMessage(err error) string {
	msg := err.Error()
	if _, detail, ok := strings.Cut(msg, ": "); ok {
		return detail
	}
	return msg
}
