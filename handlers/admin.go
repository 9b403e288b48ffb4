package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"pawsitive/config"
	"pawsitive/services/bans"
	"pawsitive/services/visitors"
	"pawsitive/utils"
)

// adminTokenTTL bounds an admin session.
const adminTokenTTL = 12 * time.Hour

// AdminHandler exposes moderation and traffic endpoints: login, the
// visitor overview and ban management.
type AdminHandler struct {
	Visitors *visitors.DefaultVisitorService
	Bans     *bans.DefaultBanService
	Logger   *zap.Logger
}

func NewAdminHandler(visitorSvc *visitors.DefaultVisitorService, banSvc *bans.DefaultBanService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Visitors: visitorSvc, Bans: banSvc, Logger: logger}
}

// Login handles POST /api/admin/login. Only available when an admin
// password hash is configured.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Password == "" {
		utils.RespondError(c, utils.ValidationError("Password is required."))
		return
	}

	hash := config.AppConfig.AdminPasswordHash
	if hash == "" {
		utils.RespondError(c, utils.ValidationError("Admin login is not configured."))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(input.Password)); err != nil {
		h.Logger.Warn("admin login rejected", zap.String("ip", c.ClientIP()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password."})
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(adminTokenTTL)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTSecret))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// VisitorOverview handles GET /api/admin/visitors.
func (h *AdminHandler) VisitorOverview(c *gin.Context) {
	c.JSON(http.StatusOK, h.Visitors.Overview())
}

// ListBans handles GET /api/admin/bans.
func (h *AdminHandler) ListBans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"bans": h.Bans.List()})
}

// CreateBan handles POST /api/admin/bans. Banning an already-banned
// identifier updates the existing record and returns 200 instead of 201.
func (h *AdminHandler) CreateBan(c *gin.Context) {
	var input struct {
		Identifier string `json:"identifier"`
		Reason     string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, utils.ValidationError("Invalid request body."))
		return
	}
	record, created, err := h.Bans.Ban(input.Identifier, input.Reason)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{"ban": record})
}

// DeleteBan handles DELETE /api/admin/bans/:identifier.
func (h *AdminHandler) DeleteBan(c *gin.Context) {
	record, err := h.Bans.Unban(c.Param("identifier"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ban": record})
}
