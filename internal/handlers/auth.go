package handlers

import (
	"errors"
	"net/http"

	"github.com/chiragnagar2708/Outfitz-backend/internal/auth"
	"github.com/chiragnagar2708/Outfitz-backend/internal/dto"
	"github.com/chiragnagar2708/Outfitz-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Legacy error strings the storefront matches on. Do not reword.
const (
	msgMissingFields    = "Please fill all details"
	msgInvalidEmail     = "Please Provide a valid email"
	msgPasswordTooShort = "Password must be at least 8 characters long"
	msgExistingUser     = "Existing User"
	msgIncorrectEmail   = "Incorrect email id"
	msgIncorrectPass    = "Incorrect Password"
	msgServerError      = "Server error"
)

// AuthHandler handles signup and login.
type AuthHandler struct {
	tokens  *auth.TokenService
	userSvc *service.UserService
}

// NewAuthHandler returns a new AuthHandler.
func NewAuthHandler(tokens *auth.TokenService, userSvc *service.UserService) *AuthHandler {
	return &AuthHandler{tokens: tokens, userSvc: userSvc}
}

// Signup godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": bindErrorMessage(err)})
		return
	}
	user, err := h.userSvc.SignUp(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgPasswordTooShort})
		case errors.Is(err, service.ErrEmailTaken):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": msgExistingUser})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		}
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: token})
}

// Login godoc
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.AuthResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": bindErrorMessage(err)})
		return
	}
	user, err := h.userSvc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		// Credential failures are 200 with success:false. A quirk of the
		// previous backend that existing clients branch on.
		case errors.Is(err, service.ErrUnknownEmail):
			c.JSON(http.StatusOK, gin.H{"success": false, "errors": msgIncorrectEmail})
		case errors.Is(err, service.ErrWrongPassword):
			c.JSON(http.StatusOK, gin.H{"success": false, "errors": msgIncorrectPass})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		}
		return
	}
	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "errors": msgServerError})
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Token: token})
}

// bindErrorMessage maps a binding failure to the legacy validation message:
// a malformed email gets its own string, anything else reads as missing fields.
func bindErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "email" {
				return msgInvalidEmail
			}
		}
	}
	return msgMissingFields
}
