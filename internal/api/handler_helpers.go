package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/response"
)

// HandleError maps a service error to its status and error body. Client
// errors are logged at warn, backend failures at error with the wrapped
// cause; the cause itself is never written to the response.
func HandleError(c *gin.Context, logger internal.Logger, err error, msg string) {
	requestID := c.GetString("request_id")
	status, body := response.FromError(err)
	if status >= 500 {
		logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	} else {
		logger.Warnf("[request_id=%s] %s: %v", requestID, msg, err)
	}
	c.JSON(status, body)
}
