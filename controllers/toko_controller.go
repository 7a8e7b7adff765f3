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

type TokoInput struct {
	IDSales    uint    `json:"id_sales" binding:"required"`
	NamaToko   string  `json:"nama_toko" binding:"required"`
	Kecamatan  string  `json:"kecamatan"`
	Kabupaten  string  `json:"kabupaten"`
	NoTelepon  *string `json:"no_telepon"`
	LinkGmaps  *string `json:"link_gmaps"`
	StatusToko *bool   `json:"status_toko"`
}

// GET /toko?id_sales=&kabupaten=&kecamatan=&status_toko=&search=&page=&limit=
func GetAllToko(c *gin.Context) {
	q := config.DB.Model(&models.Toko{}).Preload("Sales")

	if idSales := getUintQPtr(c, "id_sales"); idSales != nil {
		q = q.Where("id_sales = ?", *idSales)
	}
	if kab := strings.TrimSpace(c.Query("kabupaten")); kab != "" {
		q = q.Where("kabupaten = ?", kab)
	}
	if kec := strings.TrimSpace(c.Query("kecamatan")); kec != "" {
		q = q.Where("kecamatan = ?", kec)
	}
	if st := getBoolQPtr(c, "status_toko"); st != nil {
		q = q.Where("status_toko = ?", *st)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("nama_toko ILIKE ?", "%"+s+"%")
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data toko", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"nama_toko": "nama_toko",
		"kabupaten": "kabupaten",
		"kecamatan": "kecamatan",
		"default":   "id",
	})

	var rows []models.Toko
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data toko", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetTokoByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var toko models.Toko
	if err := config.DB.Preload("Sales").First(&toko, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Toko tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data toko", err)
		return
	}
	utils.Success(c, toko)
}

func CreateToko(c *gin.Context) {
	var in TokoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	// toko harus terikat sales yang masih aktif
	var cnt int64
	if err := config.DB.Model(&models.Sales{}).
		Where("id = ? AND status_aktif = ?", in.IDSales, true).
		Count(&cnt).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memeriksa sales", err)
		return
	}
	if cnt == 0 {
		utils.Error(c, http.StatusBadRequest, "Sales tidak ditemukan atau tidak aktif", nil)
		return
	}

	toko := models.Toko{
		IDSales:    in.IDSales,
		NamaToko:   in.NamaToko,
		Kecamatan:  in.Kecamatan,
		Kabupaten:  in.Kabupaten,
		NoTelepon:  in.NoTelepon,
		LinkGmaps:  in.LinkGmaps,
		StatusToko: true,
	}
	if in.StatusToko != nil {
		toko.StatusToko = *in.StatusToko
	}

	if err := config.DB.Create(&toko).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat toko", err)
		return
	}
	utils.Created(c, toko)
}

func UpdateToko(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var toko models.Toko
	if err := config.DB.First(&toko, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Toko tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data toko", err)
		return
	}

	var in TokoInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	if in.IDSales != toko.IDSales {
		var cnt int64
		if err := config.DB.Model(&models.Sales{}).
			Where("id = ? AND status_aktif = ?", in.IDSales, true).
			Count(&cnt).Error; err != nil || cnt == 0 {
			utils.Error(c, http.StatusBadRequest, "Sales tidak ditemukan atau tidak aktif", nil)
			return
		}
	}

	toko.IDSales = in.IDSales
	toko.NamaToko = in.NamaToko
	toko.Kecamatan = in.Kecamatan
	toko.Kabupaten = in.Kabupaten
	toko.NoTelepon = in.NoTelepon
	toko.LinkGmaps = in.LinkGmaps
	if in.StatusToko != nil {
		toko.StatusToko = *in.StatusToko
	}

	if err := config.DB.Save(&toko).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui toko", err)
		return
	}
	utils.Success(c, toko)
}

func DeleteToko(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	res := config.DB.Delete(&models.Toko{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus toko", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Toko tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
