package controllers

import (
	"net/http"
	"os"
	"time"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	zlog "github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	var user models.User
	if err := config.DB.Where("username = ? AND is_active = true", in.Username).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid username or password", nil)
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, string(user.Role), utils.TokenTTL)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not issue token", err)
		return
	}

	// best effort, a failed timestamp must not block the login
	now := time.Now()
	if err := config.DB.Model(&user).Update("last_login_at", &now).Error; err != nil {
		zlog.Debug().Err(err).Uint("user_id", user.ID).Msg("could not record last login")
	}

	setSessionCookie(c, token, int(utils.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"id":        user.ID,
			"username":  user.Username,
			"full_name": user.FullName,
			"role":      user.Role,
		},
	})
}

func Logout(c *gin.Context) {
	setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// setSessionCookie: SameSite=None+Secure in production (cross-site SPA),
// Lax otherwise.
func setSessionCookie(c *gin.Context, token string, maxAge int) {
	secure := false
	if os.Getenv("APP_ENV") == "production" {
		c.SetSameSite(http.SameSiteNoneMode)
		secure = true
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie("token", token, maxAge, "/", "", secure, true)
}

func Profile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}
	utils.Success(c, "Profile loaded", user)
}

type UpdateProfileInput struct {
	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
}

func UpdateProfile(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}

	var in UpdateProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update profile", err)
		return
	}
	utils.Success(c, "Profile updated", user)
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func ChangePassword(c *gin.Context) {
	uid, err := currentUserID(c)
	if err != nil {
		utils.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, uid).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}

	var in ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		utils.Error(c, http.StatusUnauthorized, "Current password is wrong", nil)
		return
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err := config.DB.Model(&user).Update("password_hash", string(hashed)).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not change password", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password changed"})
}
