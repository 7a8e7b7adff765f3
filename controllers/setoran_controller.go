package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SetoranInput struct {
	TotalSetoran   float64 `json:"total_setoran" binding:"required,gt=0"`
	Penerima       string  `json:"penerima_setoran" binding:"required"`
	TanggalSetoran string  `json:"tanggal_setoran"` // YYYY-MM-DD, default hari ini
}

func GetAllSetoran(c *gin.Context) {
	q := config.DB.Model(&models.Setoran{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("penerima ILIKE ?", "%"+s+"%")
	}
	if d := strings.TrimSpace(c.Query("tanggal_setoran")); d != "" {
		if tgl, err := parseDateOnly(d); err == nil {
			q = q.Where("tanggal_setoran = ?", tgl)
		}
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data setoran", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"total_setoran":   "total_setoran",
		"tanggal_setoran": "tanggal_setoran",
		"default":         "id",
	})

	var rows []models.Setoran
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data setoran", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetSetoranByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var s models.Setoran
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Setoran tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data setoran", err)
		return
	}
	utils.Success(c, s)
}

func CreateSetoran(c *gin.Context) {
	var in SetoranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	tgl := datatypes.Date(utils.Today())
	if in.TanggalSetoran != "" {
		parsed, err := parseDateOnly(in.TanggalSetoran)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_setoran tidak valid", err)
			return
		}
		tgl = parsed
	}

	s := models.Setoran{
		TotalSetoran:   in.TotalSetoran,
		Penerima:       in.Penerima,
		TanggalSetoran: tgl,
	}
	if err := config.DB.Create(&s).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat setoran", err)
		return
	}
	utils.Created(c, s)
}

func UpdateSetoran(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var s models.Setoran
	if err := config.DB.First(&s, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Setoran tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data setoran", err)
		return
	}

	var in SetoranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	s.TotalSetoran = in.TotalSetoran
	s.Penerima = in.Penerima
	if in.TanggalSetoran != "" {
		parsed, err := parseDateOnly(in.TanggalSetoran)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_setoran tidak valid", err)
			return
		}
		s.TanggalSetoran = parsed
	}

	if err := config.DB.Save(&s).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui setoran", err)
		return
	}
	utils.Success(c, s)
}

func DeleteSetoran(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	res := config.DB.Delete(&models.Setoran{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus setoran", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Setoran tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
