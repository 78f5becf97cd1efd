package controllers

import (
	"net/http"
	"strconv"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CreateUserInput struct {
	Username string `form:"username" json:"username" binding:"required"`
	FullName string `form:"full_name" json:"full_name" binding:"required"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Role     string `form:"role" json:"role" binding:"required"`
	Phone    string `form:"phone" json:"phone"`
	Address  string `form:"address" json:"address"`
}

// CreateUser registers a cashier or another admin. Accepts multipart so
// an ID-card image can ride along.
func CreateUser(c *gin.Context) {
	var in CreateUserInput
	if err := c.ShouldBind(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}
	if in.Role != string(models.RoleAdmin) && in.Role != string(models.RoleCashier) {
		utils.Error(c, http.StatusBadRequest, "Role must be ADMIN or CASHIER", nil)
		return
	}

	var exists models.User
	if err := config.DB.Where("username = ?", in.Username).First(&exists).Error; err == nil {
		utils.Error(c, http.StatusBadRequest, "Username already taken", nil)
		return
	}

	idCardPath, err := utils.SaveUpload(c, "id_card", "id-cards")
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not store ID card", err)
		return
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	user := models.User{
		Username:     in.Username,
		FullName:     in.FullName,
		Role:         models.Role(in.Role),
		Phone:        in.Phone,
		Address:      in.Address,
		IDCardPath:   idCardPath,
		PasswordHash: string(hash),
		IsActive:     true,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create user", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User created", "data": user})
}

func GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Order("id ASC").Find(&users).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load users", err)
		return
	}
	utils.Success(c, "Users loaded", users)
}

type AdminUpdateUserInput struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}

	var in AdminUpdateUserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	updates := map[string]any{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Role != nil {
		if *in.Role != string(models.RoleAdmin) && *in.Role != string(models.RoleCashier) {
			utils.Error(c, http.StatusBadRequest, "Role must be ADMIN or CASHIER", nil)
			return
		}
		updates["role"] = *in.Role
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Address != nil {
		updates["address"] = *in.Address
	}
	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}
	if len(updates) == 0 {
		utils.Error(c, http.StatusBadRequest, "Nothing to update", nil)
		return
	}

	if err := config.DB.Model(&user).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update user", err)
		return
	}
	utils.Success(c, "User updated", user)
}

// DeleteUser deactivates; accounts are never physically removed so
// audit rows keep a valid actor reference.
func DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "User not found", nil)
		return
	}

	if err := config.DB.Model(&user).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not deactivate user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deactivated"})
}
