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

type PengeluaranInput struct {
	TanggalPengeluaran string  `json:"tanggal_pengeluaran"` // YYYY-MM-DD, default hari ini
	Keterangan         string  `json:"keterangan" binding:"required"`
	Jumlah             float64 `json:"jumlah" binding:"required,gt=0"`
	URLBuktiFoto       *string `json:"url_bukti_foto"`
}

func GetAllPengeluaran(c *gin.Context) {
	q := config.DB.Model(&models.PengeluaranOperasional{})

	if s := strings.TrimSpace(c.Query("search")); s != "" {
		q = q.Where("keterangan ILIKE ?", "%"+s+"%")
	}
	if d := strings.TrimSpace(c.Query("tanggal_pengeluaran")); d != "" {
		if tgl, err := parseDateOnly(d); err == nil {
			q = q.Where("tanggal_pengeluaran = ?", tgl)
		}
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengeluaran", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"jumlah":              "jumlah",
		"tanggal_pengeluaran": "tanggal_pengeluaran",
		"default":             "id",
	})

	var rows []models.PengeluaranOperasional
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengeluaran", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetPengeluaranByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.PengeluaranOperasional
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pengeluaran tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengeluaran", err)
		return
	}
	utils.Success(c, p)
}

func CreatePengeluaran(c *gin.Context) {
	var in PengeluaranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	tgl := datatypes.Date(utils.Today())
	if in.TanggalPengeluaran != "" {
		parsed, err := parseDateOnly(in.TanggalPengeluaran)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_pengeluaran tidak valid", err)
			return
		}
		tgl = parsed
	}

	p := models.PengeluaranOperasional{
		TanggalPengeluaran: tgl,
		Keterangan:         in.Keterangan,
		Jumlah:             in.Jumlah,
		URLBuktiFoto:       in.URLBuktiFoto,
	}
	if err := config.DB.Create(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat pengeluaran", err)
		return
	}
	utils.Created(c, p)
}

func UpdatePengeluaran(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.PengeluaranOperasional
	if err := config.DB.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pengeluaran tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengeluaran", err)
		return
	}

	var in PengeluaranInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	p.Keterangan = in.Keterangan
	p.Jumlah = in.Jumlah
	p.URLBuktiFoto = in.URLBuktiFoto
	if in.TanggalPengeluaran != "" {
		parsed, err := parseDateOnly(in.TanggalPengeluaran)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_pengeluaran tidak valid", err)
			return
		}
		p.TanggalPengeluaran = parsed
	}

	if err := config.DB.Save(&p).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui pengeluaran", err)
		return
	}
	utils.Success(c, p)
}

func DeletePengeluaran(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	res := config.DB.Delete(&models.PengeluaranOperasional{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus pengeluaran", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Pengeluaran tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
