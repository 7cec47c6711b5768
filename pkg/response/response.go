package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "workspace-admin/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Created sends 201 JSON with data.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, NewOKResp(data))
}

// Error sends err as a JSON error. An *errors.HTTPError keeps its status and
// field errors; a 401 also tells the client to sign in again. Anything else
// is treated as a bad request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(err, &httpErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: 1,
			Message:   err.Error(),
		})
		return
	}

	if httpErr.StatusCode == http.StatusUnauthorized {
		Unauthorized(c, LoginPath)
		return
	}
	Fail(c, httpErr.StatusCode, httpErr.Message, httpErr.Errors)
}

// Fail sends an error response with an explicit status, message and optional
// field errors.
func Fail(c *gin.Context, status int, message string, errs any) {
	c.JSON(status, Resp{
		ErrorCode: status,
		Message:   message,
		Errors:    errs,
	})
}

// InternalError sends 500 internal server error.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Unauthorized sends 401 response. When redirect is set the client is told
// where to go to sign in again.
func Unauthorized(c *gin.Context, redirect string) {
	resp := Resp{
		ErrorCode: http.StatusUnauthorized,
		Message:   "Unauthorized",
	}
	if redirect != "" {
		resp.Data = map[string]string{"redirect": redirect}
	}
	c.JSON(http.StatusUnauthorized, resp)
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Resp{
		ErrorCode: 403,
		Message:   "Forbidden",
	})
}
