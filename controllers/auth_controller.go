package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/necropharaoh/qr-menu-system/configs"
	"github.com/necropharaoh/qr-menu-system/pkg/resp"
	"github.com/necropharaoh/qr-menu-system/repository"
	"github.com/necropharaoh/qr-menu-system/utils"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	Users *repository.UserRepository
	Cfg   *configs.Config
}

func NewAuthController(users *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{Users: users, Cfg: cfg}
}

// POST /api/auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Users.FindByUsername(req.Username)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":    true,
		"token": token,
		"user": gin.H{
			"id": user.ID, "username": user.Username, "role": user.Role,
		},
	})
}

// GET /api/auth/me (requires token)
func (a *AuthController) Me(c *gin.Context) {
	user, err := a.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.Unauthorized(c, "user not found")
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}
