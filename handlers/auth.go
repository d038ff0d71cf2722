package handlers

import (
	"context"
	"net/http"

	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/identity"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/models"
	"github.com/Gurunath-S/Time-Management-Coach-backend/internal/tokens"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/logger"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/metrics"
	"github.com/Gurunath-S/Time-Management-Coach-backend/pkg/middleware"
	"github.com/gin-gonic/gin"
)

// UserDirectory is the slice of the user service the auth handlers need.
type UserDirectory interface {
	ResolveOrCreate(ctx context.Context, claims *identity.Claims) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// AuthHandler exchanges a Google identity assertion for a first-party
// session token and serves the profile of the authenticated user.
type AuthHandler struct {
	verifier identity.Verifier
	users    UserDirectory
	issuer   *tokens.Issuer
}

func NewAuthHandler(ver identity.Verifier, users UserDirectory, issuer *tokens.Issuer) *AuthHandler {
	return &AuthHandler{verifier: ver, users: users, issuer: issuer}
}

// Register wires the login and profile routes. auth guards /api/profile.
func (h *AuthHandler) Register(r *gin.Engine, auth gin.HandlerFunc) {
	r.POST("/api/auth/google-login", h.GoogleLogin)
	r.GET("/api/profile", auth, h.Profile)
}

type loginRequest struct {
	Credential string `json:"credential" binding:"required"`
}

// GoogleLogin verifies the provider assertion, resolves or creates the
// user, and returns a session token. Any verification, avatar, or
// persistence failure collapses into the same generic 500; the detail is
// logged, never returned.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	claims, err := h.verifier.Verify(c.Request.Context(), req.Credential)
	if err != nil {
		logger.Errorf("google login: identity verification failed: %v", err)
		metrics.Logins.WithLabelValues("identity_invalid").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	user, err := h.users.ResolveOrCreate(c.Request.Context(), claims)
	if err != nil {
		logger.Errorf("google login: user resolve failed for %s: %v", claims.Email, err)
		metrics.Logins.WithLabelValues("resolve_failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	token, err := h.issuer.Issue(user.ID)
	if err != nil {
		logger.Errorf("google login: token issue failed: %v", err)
		metrics.Logins.WithLabelValues("issue_failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	metrics.Logins.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Profile returns the authenticated user's record.
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := middleware.UserID(c)
	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		logger.Errorf("profile lookup failed for %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Profile lookup failed"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": gin.H{
		"id":      user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"picture": user.Picture,
	}})
}
