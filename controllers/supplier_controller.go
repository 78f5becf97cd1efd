package controllers

import (
	"net/http"
	"strconv"

	"github.com/FuadJemal86/aquaErp-sub001/config"
	"github.com/FuadJemal86/aquaErp-sub001/models"
	"github.com/FuadJemal86/aquaErp-sub001/utils"

	"github.com/gin-gonic/gin"
)

type SupplierInput struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func CreateSupplier(c *gin.Context) {
	var in SupplierInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid payload", err)
		return
	}

	supplier := models.Supplier{
		Name:     in.Name,
		Phone:    in.Phone,
		Address:  in.Address,
		IsActive: true,
	}
	if err := config.DB.Create(&supplier).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not create supplier", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Supplier created", "data": supplier})
}

func GetAllSupplier(c *gin.Context) {
	var suppliers []models.Supplier
	q := config.DB.Order("id ASC")
	if name := c.Query("name"); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if err := q.Find(&suppliers).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not load suppliers", err)
		return
	}
	utils.Success(c, "Suppliers loaded", suppliers)
}

func GetSupplierByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier not found", nil)
		return
	}
	utils.Success(c, "Supplier loaded", supplier)
}

type SupplierUpdateInput struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

func UpdateSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier not found", nil)
		return
	}

	var in SupplierUpdateInput
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

	if err := config.DB.Model(&supplier).Updates(updates).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not update supplier", err)
		return
	}
	utils.Success(c, "Supplier updated", supplier)
}

func DeleteSupplier(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return
	}

	var supplier models.Supplier
	if err := config.DB.First(&supplier, id).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Supplier not found", nil)
		return
	}
	if err := config.DB.Model(&supplier).Update("is_active", false).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Could not deactivate supplier", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deactivated"})
}
