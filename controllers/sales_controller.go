package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SalesInput struct {
	NamaSales    string  `json:"nama_sales" binding:"required"`
	NomorTelepon *string `json:"nomor_telepon"`
	StatusAktif  *bool   `json:"status_aktif"`
}

func GetAllSales(c *gin.Context) {
	q := config.DB.Model(&models.Sales{})

	if st := getBoolQPtr(c, "status_aktif"); st != nil {
		q = q.Where("status_aktif = ?", *st)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("nama_sales ILIKE ?", "%"+s+"%")
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data sales", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"nama_sales": "nama_sales",
		"default":    "id",
	})

	var rows []models.Sales
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data sales", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetSalesByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var s models.Sales
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Sales tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data sales", err)
		return
	}
	utils.Success(c, s)
}

func CreateSales(c *gin.Context) {
	var in SalesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	s := models.Sales{
		NamaSales:    in.NamaSales,
		NomorTelepon: in.NomorTelepon,
		StatusAktif:  true,
	}
	if in.StatusAktif != nil {
		s.StatusAktif = *in.StatusAktif
	}

	if err := config.DB.Create(&s).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat sales", err)
		return
	}
	utils.Created(c, s)
}

func UpdateSales(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var s models.Sales
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Sales tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data sales", err)
		return
	}

	var in SalesInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	s.NamaSales = in.NamaSales
	s.NomorTelepon = in.NomorTelepon
	if in.StatusAktif != nil {
		s.StatusAktif = *in.StatusAktif
	}

	if err := config.DB.Save(&s).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui sales", err)
		return
	}
	utils.Success(c, s)
}

func DeleteSales(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	res := config.DB.Delete(&models.Sales{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus sales", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Sales tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
