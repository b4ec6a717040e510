package v1

import (
	"github.com/venkatesh141/Ecom/api/middleware"
	"github.com/venkatesh141/Ecom/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, jwtAuth, adminOnly gin.HandlerFunc) {
	user := rg.Group("/user", jwtAuth)
	{
		user.GET("/get-all", adminOnly, h.GetAllUsers)
		user.GET("/my-info", h.GetMyInfo)
	}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", UserList: users})
}

// GetMyInfo returns the caller's profile with address and order history.
func (h *UserHandler) GetMyInfo(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	user, err := h.userService.GetUserInfoAndOrderHistory(c.Request.Context(), userID)
	if err != nil {
		fail(c, err)
		return
	}
	ok(c, Response{Message: "successful", User: user})
}
