package controllers

import (
	"errors"
	"net/http"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ?", in.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusUnauthorized, "Username atau password salah", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data user", err)
		return
	}
	if !user.IsActive {
		utils.Error(c, http.StatusUnauthorized, "Akun tidak aktif", nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		utils.Error(c, http.StatusUnauthorized, "Username atau password salah", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat token", err)
		return
	}

	now := utils.Now()
	_ = config.DB.Model(&user).Update("last_login_at", now).Error

	utils.Success(c, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
		},
	})
}

func Health(c *gin.Context) {
	sqlDB, err := config.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Database tidak sehat", err)
		return
	}
	utils.Success(c, gin.H{"status": "ok"})
}
