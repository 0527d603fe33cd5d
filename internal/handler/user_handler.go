package handler

import (
	"studyflow/internal/service"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user profile requests.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler instance.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetMyProfile godoc
// @Summary Get my profile
// @Description Returns the profile of the logged-in user
// @Tags users
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} dto.UserProfileResponse
// @Failure 401 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMyProfile(c *fiber.Ctx) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	profile, err := h.userService.GetUserProfile(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(profile)
}
