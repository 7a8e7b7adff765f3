package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PengirimanInput struct {
	IDToko       uint                    `json:"id_toko" binding:"required"`
	TanggalKirim string                  `json:"tanggal_kirim"` // YYYY-MM-DD, default hari ini
	Details      []DetailPengirimanInput `json:"details" binding:"required,min=1,dive"`
}

type DetailPengirimanInput struct {
	IDProduk    uint `json:"id_produk" binding:"required"`
	JumlahKirim int  `json:"jumlah_kirim" binding:"required,gt=0"`
}

// cekTokoAktif memastikan toko ada, aktif, dan sales pemiliknya aktif.
func cekTokoAktif(db *gorm.DB, idToko uint) error {
	var toko models.Toko
	if err := db.Preload("Sales").First(&toko, idToko).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("Toko tidak ditemukan")
		}
		return err
	}
	if !toko.StatusToko {
		return errors.New("Toko tidak aktif")
	}
	if !toko.Sales.StatusAktif {
		return errors.New("Sales pemilik toko tidak aktif")
	}
	return nil
}

// cekProdukAktif membandingkan COUNT produk aktif dengan jumlah id unik yang
// diminta; kalau tak sama berarti ada produk hilang/nonaktif.
func cekProdukAktif(db *gorm.DB, ids []uint) (map[uint]models.Produk, error) {
	unik := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		unik[id] = struct{}{}
	}
	distinct := make([]uint, 0, len(unik))
	for id := range unik {
		distinct = append(distinct, id)
	}

	var rows []models.Produk
	if err := db.Where("id IN ? AND status_produk = ?", distinct, true).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != len(distinct) {
		return nil, errors.New("Ada produk yang tidak ditemukan atau tidak aktif")
	}

	byID := make(map[uint]models.Produk, len(rows))
	for _, p := range rows {
		byID[p.ID] = p
	}
	return byID, nil
}

// GET /pengiriman?include_details=&id_toko=&tanggal_kirim=&is_autorestock=&page=&limit=
func GetAllPengiriman(c *gin.Context) {
	q := config.DB.Model(&models.Pengiriman{}).Preload("Toko.Sales")

	includeDetails, _ := strconv.ParseBool(c.DefaultQuery("include_details", "false"))
	if includeDetails {
		q = q.Preload("Details.Produk")
	}
	if idToko := getUintQPtr(c, "id_toko"); idToko != nil {
		q = q.Where("id_toko = ?", *idToko)
	}
	if ar := getBoolQPtr(c, "is_autorestock"); ar != nil {
		q = q.Where("is_autorestock = ?", *ar)
	}
	if d := strings.TrimSpace(c.Query("tanggal_kirim")); d != "" {
		tgl, err := parseDateOnly(d)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_kirim tidak valid", err)
			return
		}
		q = q.Where("tanggal_kirim = ?", tgl)
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengiriman", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"tanggal_kirim": "tanggal_kirim",
		"default":       "id",
	})

	var rows []models.Pengiriman
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengiriman", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetPengirimanByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.Pengiriman
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pengiriman tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengiriman", err)
		return
	}
	utils.Success(c, p)
}

func CreatePengiriman(c *gin.Context) {
	var in PengirimanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	if err := cekTokoAktif(config.DB, in.IDToko); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ids := make([]uint, 0, len(in.Details))
	for _, d := range in.Details {
		ids = append(ids, d.IDProduk)
	}
	produkMap, err := cekProdukAktif(config.DB, ids)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	tgl := datatypes.Date(utils.Today())
	if in.TanggalKirim != "" {
		parsed, err := parseDateOnly(in.TanggalKirim)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_kirim tidak valid", err)
			return
		}
		tgl = parsed
	}

	pengiriman := models.Pengiriman{
		IDToko:       in.IDToko,
		TanggalKirim: tgl,
	}
	for _, d := range in.Details {
		pengiriman.Details = append(pengiriman.Details, models.DetailPengiriman{
			IDProduk:    d.IDProduk,
			JumlahKirim: d.JumlahKirim,
			HargaSatuan: produkMap[d.IDProduk].HargaSatuan,
		})
	}

	if err := config.DB.Create(&pengiriman).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat pengiriman", err)
		return
	}

	var created models.Pengiriman
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").
		First(&created, pengiriman.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil pengiriman yang dibuat", err)
		return
	}
	utils.Created(c, created)
}

func UpdatePengiriman(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var pengiriman models.Pengiriman
	if err := config.DB.First(&pengiriman, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Pengiriman tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data pengiriman", err)
		return
	}

	var in PengirimanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if err := cekTokoAktif(config.DB, in.IDToko); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ids := make([]uint, 0, len(in.Details))
	for _, d := range in.Details {
		ids = append(ids, d.IDProduk)
	}
	produkMap, err := cekProdukAktif(config.DB, ids)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// ganti header + seluruh detail dalam satu transaksi
	err = config.DB.Transaction(func(tx *gorm.DB) error {
		pengiriman.IDToko = in.IDToko
		if in.TanggalKirim != "" {
			parsed, err := parseDateOnly(in.TanggalKirim)
			if err != nil {
				return err
			}
			pengiriman.TanggalKirim = parsed
		}
		if err := tx.Save(&pengiriman).Error; err != nil {
			return err
		}
		if err := tx.Where("id_pengiriman = ?", pengiriman.ID).
			Delete(&models.DetailPengiriman{}).Error; err != nil {
			return err
		}
		details := make([]models.DetailPengiriman, 0, len(in.Details))
		for _, d := range in.Details {
			details = append(details, models.DetailPengiriman{
				IDPengiriman: pengiriman.ID,
				IDProduk:     d.IDProduk,
				JumlahKirim:  d.JumlahKirim,
				HargaSatuan:  produkMap[d.IDProduk].HargaSatuan,
			})
		}
		return tx.Create(&details).Error
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui pengiriman", err)
		return
	}

	var updated models.Pengiriman
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").
		First(&updated, pengiriman.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil pengiriman", err)
		return
	}
	utils.Success(c, updated)
}

func DeletePengiriman(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	// detail ikut terhapus lewat cascade di level skema
	res := config.DB.Delete(&models.Pengiriman{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus pengiriman", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Pengiriman tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
