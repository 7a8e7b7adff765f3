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

type ProdukInput struct {
	NamaProduk    string  `json:"nama_produk" binding:"required"`
	HargaSatuan   float64 `json:"harga_satuan"`
	StatusProduk  *bool   `json:"status_produk"`
	IsPriority    *bool   `json:"is_priority"`
	PriorityOrder int     `json:"priority_order"`
}

// GET /produk?status_produk=&is_priority=&search=&sortBy=&sortOrder=&page=&limit=
func GetAllProduk(c *gin.Context) {
	q := config.DB.Model(&models.Produk{})

	if st := getBoolQPtr(c, "status_produk"); st != nil {
		q = q.Where("status_produk = ?", *st)
	}
	if pr := getBoolQPtr(c, "is_priority"); pr != nil {
		q = q.Where("is_priority = ?", *pr)
	}
	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("nama_produk ILIKE ?", "%"+s+"%")
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"nama_produk":    "nama_produk",
		"harga_satuan":   "harga_satuan",
		"priority_order": "priority_order",
		"default":        "id",
	})

	var rows []models.Produk
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetProdukByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.Produk
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}
	utils.Success(c, p)
}

func CreateProduk(c *gin.Context) {
	var in ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if in.HargaSatuan < 0 {
		utils.Error(c, http.StatusBadRequest, "harga_satuan tidak boleh negatif", nil)
		return
	}

	p := models.Produk{
		NamaProduk:    in.NamaProduk,
		HargaSatuan:   in.HargaSatuan,
		StatusProduk:  true,
		PriorityOrder: in.PriorityOrder,
	}
	if in.StatusProduk != nil {
		p.StatusProduk = *in.StatusProduk
	}
	if in.IsPriority != nil {
		p.IsPriority = *in.IsPriority
	}

	if err := config.DB.Create(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat produk", err)
		return
	}
	utils.Created(c, p)
}

func UpdateProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.Produk
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}

	var in ProdukInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if in.HargaSatuan < 0 {
		utils.Error(c, http.StatusBadRequest, "harga_satuan tidak boleh negatif", nil)
		return
	}

	p.NamaProduk = in.NamaProduk
	p.HargaSatuan = in.HargaSatuan
	p.PriorityOrder = in.PriorityOrder
	if in.StatusProduk != nil {
		p.StatusProduk = *in.StatusProduk
	}
	if in.IsPriority != nil {
		p.IsPriority = *in.IsPriority
	}

	if err := config.DB.Save(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui produk", err)
		return
	}
	utils.Success(c, p)
}

func DeleteProduk(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	res := config.DB.Delete(&models.Produk{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus produk", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
