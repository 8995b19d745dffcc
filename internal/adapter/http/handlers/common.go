package handlers

import (
	"context"
	"log"
	response "meopastel/internal/adapter/http/dto/response"
	"meopastel/internal/domain/entities"
	"meopastel/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)

// sessionViewer is the read side every mutating handler needs to echo the
// session back after a change.
type sessionViewer interface {
	Snapshot(ctx context.Context) (entities.Session, error)
}

func respondSession(c *gin.Context, viewer sessionViewer, status int) {
	snapshot, err := viewer.Snapshot(c.Request.Context())
	if err != nil {
		log.Printf("[session][handler] snapshot failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromSession(snapshot))
}
