package controllers

import (
	"net/http"
	"strconv"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

type CustomerInput struct {
	Name    string `form:"name" json:"name" binding:"required"`
	Phone   string `form:"phone" json:"phone"`
	Address string `form:"address" json:"address"`
}

func CreateCustomer(c *gin.Context) {
	var in CustomerInput
	if err := c.ShouldBind(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	idCardPath, err := utils.SaveUpload(c, "id_card", "id-cards")
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not store ID card", err)
		return
	}

	customer := models.Customer{
		Name:       in.Name,
		Phone:      in.Phone,
		Address:    in.Address,
		IDCardPath: idCardPath,
		IsActive:   true,
	}
	if err := config.DB.Create(&customer).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create customer", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Customer created", "data": customer})
}

func GetAllCustomer(c *gin.Context) {
	var customers []models.Customer
	q := config.DB.Order("id ASC")
	if name := c.Query("name"); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if err := q.Find(&customers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load customers", err)
		return
	}
	utils.Success(c, "Customers loaded", customers)
}

func GetCustomerByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}
	utils.Success(c, "Customer loaded", customer)
}

type CustomerUpdateInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func UpdateCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}

	var in CustomerUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	updates := map[string]any{}
	if in.Name != nil {
		updates["name"] = *in.Name
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

	if err := config.DB.Model(&customer).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update customer", err)
		return
	}
	utils.Success(c, "Customer updated", customer)
}

// DeleteCustomer soft-disables; credits may still reference the row.
func DeleteCustomer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var customer models.Customer
	if err := config.DB.First(&customer, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Customer not found", nil)
		return
	}
	if err := config.DB.Model(&customer).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not deactivate customer", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deactivated"})
}
