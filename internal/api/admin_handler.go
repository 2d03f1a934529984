package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"holistic/wellness-app/internal/domain"
	"holistic/wellness-app/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler exposes the administration realm over HTTP.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// --- Request/Response Structs ---

type AdminRegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type AdminResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type AdminLoginResponse struct {
	Token string        `json:"token"`
	Admin AdminResponse `json:"admin"`
}

// --- Handler Methods ---

// Register godoc
// @Summary Register a new admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param admin body AdminRegisterRequest true "Admin details"
// @Success 201 {object} AdminResponse
// @Failure 409 {object} gin.H "Email already registered"
// @Router /admin/register [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req AdminRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	admin, err := h.adminService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAdminAlreadyExists) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else if errors.Is(err, service.ErrWeakPassword) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	c.JSON(http.StatusCreated, MapAdminToResponse(admin))
}

// Login godoc
// @Summary Log in an admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} AdminLoginResponse
// @Failure 401 {object} gin.H "Unauthorized"
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, admin, err := h.adminService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, AdminLoginResponse{
		Token: token,
		Admin: MapAdminToResponse(admin),
	})
}

// ListUsers godoc
// @Summary List all user accounts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 403 {object} gin.H "Admin role required"
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list users.")
		return
	}

	resp := make([]UserResponse, 0, len(users))
	for i := range users {
		resp = append(resp, MapUserToResponse(&users[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUser godoc
// @Summary Delete a user account
// @Description Removes the account together with its tracker document.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ObjectID Hex"
// @Success 200 {object} gin.H "User deleted"
// @Failure 404 {object} gin.H "User not found"
// @Router /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid user ID format.")
		return
	}

	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to delete user.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted."})
}

// ListAdmins godoc
// @Summary List admin accounts
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} AdminResponse
// @Failure 403 {object} gin.H "Admin role required"
// @Router /admin/admins [get]
func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.ListAdmins(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list admins.")
		return
	}

	resp := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		resp = append(resp, MapAdminToResponse(&admins[i]))
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteAdmin godoc
// @Summary Delete an admin account
// @Description Refuses to remove the last remaining admin.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ObjectID Hex"
// @Success 200 {object} gin.H "Admin deleted"
// @Failure 404 {object} gin.H "Admin not found"
// @Failure 409 {object} gin.H "Cannot delete the last admin"
// @Router /admin/admins/{id} [delete]
func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	adminID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid admin ID format.")
		return
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), adminID); err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			abortWithError(c, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrLastAdmin):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to delete admin.")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Admin deleted."})
}

// MapAdminToResponse converts a domain Admin to its DTO.
func MapAdminToResponse(admin *domain.Admin) AdminResponse {
	if admin == nil {
		return AdminResponse{}
	}
	return AdminResponse{
		ID:        admin.ID.Hex(),
		Name:      admin.Name,
		Email:     admin.Email,
		CreatedAt: admin.CreatedAt,
	}
}
