package controllers

import (
	"net/http"
	"strings"

	"github.com/LisaMariaKleiner/coderr/configs"
	"github.com/LisaMariaKleiner/coderr/entity"
	"github.com/LisaMariaKleiner/coderr/pkg/resp"
	"github.com/LisaMariaKleiner/coderr/repository"
	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type RegistrationRequest struct {
	Username         string `json:"username" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	RepeatedPassword string `json:"repeated_password" binding:"required"`
	Type             string `json:"type" binding:"required,oneof=customer business"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB   *gorm.DB
	Repo *repository.UserRepository
	Cfg  *configs.Config
}

func NewAuthController(db *gorm.DB, repo *repository.UserRepository, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Repo: repo, Cfg: cfg}
}

// POST /api/registration
// Creates the user together with the profile matching its type.
func (a *AuthController) Registration(c *gin.Context) {
	var req RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if req.Password != req.RepeatedPassword {
		resp.BadRequest(c, "passwords do not match")
		return
	}

	taken, err := a.Repo.UsernameTaken(req.Username)
	if err != nil {
		resp.ServerError(c)
		return
	}
	if taken {
		resp.BadRequest(c, "username already registered")
		return
	}
	taken, err = a.Repo.EmailTaken(strings.ToLower(req.Email))
	if err != nil {
		resp.ServerError(c)
		return
	}
	if taken {
		resp.BadRequest(c, "email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		resp.ServerError(c)
		return
	}

	user := entity.User{
		Username: req.Username,
		Email:    strings.ToLower(req.Email),
		Password: string(hashed),
		UserType: req.Type,
	}
	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := a.Repo.Create(tx, &user); err != nil {
			return err
		}
		if user.UserType == entity.UserTypeBusiness {
			return a.Repo.CreateBusinessProfile(tx, &entity.BusinessProfile{UserID: user.ID})
		}
		return a.Repo.CreateCustomerProfile(tx, &entity.CustomerProfile{UserID: user.ID})
	})
	if err != nil {
		resp.ServerError(c)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.UserType, user.IsStaff, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c)
		return
	}

	resp.Created(c, gin.H{
		"token":    token,
		"username": user.Username,
		"email":    user.Email,
		"user_id":  user.ID,
	})
}

// POST /api/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Repo.GetByUsername(req.Username)
	if err != nil {
		resp.BadRequest(c, "invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		resp.BadRequest(c, "invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.UserType, user.IsStaff, a.Cfg.JWTSecret, a.Cfg.JWTTTL)
	if err != nil {
		resp.ServerError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":     token,
		"username":  user.Username,
		"email":     user.Email,
		"user_id":   user.ID,
		"user_type": user.UserType,
	})
}
