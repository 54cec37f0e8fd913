package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boikano11/exercise-tracker/internal/service"
)

func GetLogs(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		q := service.LogQuery{
			From:  c.Query("from"),
			To:    c.Query("to"),
			Limit: c.Query("limit"),
		}

		view, err := service.GetLog(c.Request.Context(), app.Exercises(), userID, &q)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch log")
			return
		}

		c.JSON(http.StatusOK, view)
	}
}
