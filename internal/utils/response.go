package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every error and acknowledgement on the wire is a {"msg": ...} object.
// The exact strings are part of the API contract, so handlers pass them in
// verbatim rather than composing them here.

// Msg sends a {"msg": message} body with the given status code.
func Msg(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"msg": message})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string) {
	Msg(c, http.StatusBadRequest, message)
}

// Unauthorized sends a 401 Unauthorized response.
func Unauthorized(c *gin.Context, message string) {
	Msg(c, http.StatusUnauthorized, message)
}

// Forbidden sends a 403 Forbidden response.
func Forbidden(c *gin.Context, message string) {
	Msg(c, http.StatusForbidden, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	Msg(c, http.StatusNotFound, message)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, message string) {
	Msg(c, http.StatusInternalServerError, message)
}
