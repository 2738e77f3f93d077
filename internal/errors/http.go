package errors

import (
	"github.com/gin-gonic/gin"
)

// Body is the JSON error payload rendered to HTTP clients.
type Body struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Meta    map[string]interface{} `json:"meta,omitempty"`
}

// RenderJSON writes the error as a JSON response with the appropriate
// HTTP status and aborts the gin handler chain. Internal causes are not
// exposed to the client, only the structured code, message, and
// metadata.
func RenderJSON(c *gin.Context, err error) {
	code := GetCode(err)
	c.AbortWithStatusJSON(code.HTTPStatus(), Body{
		Code:    code.String(),
		Message: GetMessage(err),
		Meta:    GetMeta(err),
	})
}
