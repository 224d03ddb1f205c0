package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response is the data payload of a successful API reply.
type Response map[string]interface{}

// Business codes carried alongside HTTP status.
const (
	CodeOK              = 0
	CodeInvalidParam    = 40001
	CodePaymentRequired = 40002
	CodeAuth            = 40101
	CodeNotFound        = 40401
	CodeServerErr       = 50001
)

// Success writes the unified success envelope.
func Success(c *gin.Context, data Response) {
	c.JSON(http.StatusOK, gin.H{
		"code": CodeOK,
		"data": data,
	})
}

// Error writes the unified error envelope.
func Error(c *gin.Context, httpStatus int, code int, msg string) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
	})
}

// ErrorDetail writes the error envelope with extra per-field or
// per-business detail the client can render directly.
func ErrorDetail(c *gin.Context, httpStatus int, code int, msg string, detail interface{}) {
	c.JSON(httpStatus, gin.H{
		"code":    code,
		"message": msg,
		"details": detail,
	})
}
