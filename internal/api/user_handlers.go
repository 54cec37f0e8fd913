package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boikano11/exercise-tracker/internal"
	"github.com/Boikano11/exercise-tracker/internal/service"
)

func PostUser(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.CreateUserRequest
		if err := c.ShouldBind(&req); err != nil {
			HandleError(c, app.Logger(), internal.ValidationError("Username is required."), "Invalid request body")
			return
		}

		user, err := service.CreateUser(c.Request.Context(), app.Users(), &req)
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to create user")
			return
		}

		c.JSON(http.StatusOK, user)
	}
}

func GetUsers(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := service.ListUsers(c.Request.Context(), app.Users())
		if err != nil {
			HandleError(c, app.Logger(), err, "Failed to fetch users")
			return
		}

		c.JSON(http.StatusOK, users)
	}
}
