package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/huynhanx03/go-reqbatch/pkg/common/apperr"
)

// Response codes
const (
	CodeSuccess          = 0
	CodeParamInvalid     = 40001
	CodeValidationFailed = 40002
	CodeNotFound         = 40401
	CodeInternalServer   = 50000
)

var codeMessages = map[int]string{
	CodeSuccess:          "success",
	CodeParamInvalid:     "invalid request parameters",
	CodeValidationFailed: "request validation failed",
	CodeNotFound:         "resource not found",
	CodeInternalServer:   "internal server error",
}

var codeStatus = map[int]int{
	CodeSuccess:          http.StatusOK,
	CodeParamInvalid:     http.StatusBadRequest,
	CodeValidationFailed: http.StatusBadRequest,
	CodeNotFound:         http.StatusNotFound,
	CodeInternalServer:   http.StatusInternalServerError,
}

// Body is the uniform response envelope.
type Body struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SuccessResponse writes a success envelope with the given data.
func SuccessResponse(c *gin.Context, code int, data any) {
	c.JSON(statusOf(code), Body{
		Code:    code,
		Message: codeMessages[code],
		Data:    data,
	})
}

// ErrorResponse writes an error envelope. An *apperr.AppError overrides the
// code and HTTP status given here.
func ErrorResponse(c *gin.Context, code int, err error) {
	status := statusOf(code)
	msg := codeMessages[code]

	if appErr, ok := err.(*apperr.AppError); ok {
		code = appErr.Code
		msg = appErr.Message
		if appErr.HTTPStatus != 0 {
			status = appErr.HTTPStatus
		}
	} else if err != nil {
		msg = err.Error()
	}

	c.JSON(status, Body{
		Code:    code,
		Message: msg,
	})
}

func statusOf(code int) int {
	if s, ok := codeStatus[code]; ok {
		return s
	}
	return http.StatusInternalServerError
}
