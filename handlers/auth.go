package handlers

import (
	"net/http"

	"kitchenpos/middleware"
	"kitchenpos/models"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=6"`
	Role     models.StaffRole `json:"role"`
}

type CreateStaffRequest struct {
	Name     string           `json:"name" binding:"required"`
	Email    string           `json:"email" binding:"required,email"`
	Password string           `json:"password" binding:"required,min=6"`
	Role     models.StaffRole `json:"role" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a server account for the caller
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.Staff.SignUp(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	h.issueToken(c, http.StatusCreated, "Account created successfully", member)
}

// CreateStaff lets a manager open an account with any role
func (h *Handler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.Staff.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Staff account created", "staff": member})
}

// Login authenticates a staff member and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.Staff.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.issueToken(c, http.StatusOK, "Login successful", member)
}

// Me returns the identity carried by the caller's token
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"staff_id": middleware.GetStaffID(c),
		"email":    c.GetString("email"),
		"role":     middleware.GetRole(c),
	})
}

func (h *Handler) issueToken(c *gin.Context, status int, message string, member *models.Staff) {
	token, err := h.Auth.GenerateToken(member)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, gin.H{
		"message": message,
		"token":   token,
		"staff": gin.H{
			"id":    member.ID,
			"name":  member.Name,
			"email": member.Email,
			"role":  member.Role,
		},
	})
}
