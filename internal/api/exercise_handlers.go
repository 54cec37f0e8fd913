package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/service"
)

func PostExercise(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("id")

		var req service.ExerciseRequest
		if err := c.ShouldBind(&req); err != nil {
			HandleError(c, app.Logger(), internal.ValidationError("Description and duration are required."), "Invalid request body")
			return
		}

		result, err := service.LogExercise(c.Request.Context(), app.Users(), app.Exercises(), userID, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to log exercise")
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
