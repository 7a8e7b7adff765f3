package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var validate = validator.New()

type PenagihanInput struct {
	IDToko             uint                     `json:"id_toko" validate:"required"`
	TotalUangDiterima  float64                  `json:"total_uang_diterima" validate:"gte=0"`
	MetodePembayaran   string                   `json:"metode_pembayaran" validate:"required,oneof=Cash Transfer"`
	Details            []DetailPenagihanInput   `json:"details" validate:"required,min=1,dive"`
	Potongan           *PotonganInput           `json:"potongan" validate:"omitempty"`
	AutoRestock        bool                     `json:"auto_restock"`
	AdditionalShipment *AdditionalShipmentInput `json:"additional_shipment" validate:"omitempty"`
	TanggalPembayaran  string                   `json:"tanggal_pembayaran"` // YYYY-MM-DD, opsional
}

type DetailPenagihanInput struct {
	IDProduk      uint `json:"id_produk" validate:"required"`
	JumlahTerjual int  `json:"jumlah_terjual" validate:"gte=0"`
	JumlahKembali int  `json:"jumlah_kembali" validate:"gte=0"`
}

type PotonganInput struct {
	JumlahPotongan float64 `json:"jumlah_potongan" validate:"gte=0"`
	Keterangan     *string `json:"keterangan"`
}

type AdditionalShipmentInput struct {
	Enabled bool                       `json:"enabled"`
	Details []AdditionalShipmentDetail `json:"details" validate:"omitempty,dive"`
}

type AdditionalShipmentDetail struct {
	IDProduk    uint `json:"id_produk" validate:"required"`
	JumlahKirim int  `json:"jumlah_kirim" validate:"required,gt=0"`
}

// GET /penagihan?include_details=&id_toko=&metode_pembayaran=&page=&limit=
func GetAllPenagihan(c *gin.Context) {
	q := config.DB.Model(&models.Penagihan{}).Preload("Toko.Sales")

	includeDetails, _ := strconv.ParseBool(c.DefaultQuery("include_details", "false"))
	if includeDetails {
		q = q.Preload("Details.Produk").Preload("Potongan")
	}
	if idToko := getUintQPtr(c, "id_toko"); idToko != nil {
		q = q.Where("id_toko = ?", *idToko)
	}
	if m := c.Query("metode_pembayaran"); m == string(models.PembayaranCash) || m == string(models.PembayaranTransfer) {
		q = q.Where("metode_pembayaran = ?", m)
	}

	paged, page, limit, total, err := countThenPage(c, q)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penagihan", err)
		return
	}
	paged = applySort(paged, c.Query("sortBy"), c.Query("sortOrder"), map[string]string{
		"total_uang_diterima": "total_uang_diterima",
		"tanggal_pembayaran":  "tanggal_pembayaran",
		"default":             "id",
	})

	var rows []models.Penagihan
	if err := paged.Find(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penagihan", err)
		return
	}
	utils.Paginated(c, rows, page, limit, total)
}

func GetPenagihanByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var p models.Penagihan
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").Preload("Potongan").
		First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Penagihan tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penagihan", err)
		return
	}
	utils.Success(c, p)
}

// CreatePenagihan menjalankan seluruh alur: validasi -> cek referensi ->
// satu transaksi berisi penagihan + detail + potongan (opsional) +
// auto-restock (opsional) + pengiriman tambahan (opsional). Error di tahap
// mana pun membatalkan seluruh transaksi; pesannya diberi tag tahap supaya
// pemanggil tahu fase mana yang gagal.
func CreatePenagihan(c *gin.Context) {
	var in PenagihanInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if in.AdditionalShipment != nil && in.AdditionalShipment.Enabled && len(in.AdditionalShipment.Details) == 0 {
		utils.Error(c, http.StatusBadRequest, "Pengiriman tambahan butuh minimal satu detail", nil)
		return
	}

	// cek referensi sebelum nulis apa pun
	if err := cekTokoAktif(config.DB, in.IDToko); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	ids := make([]uint, 0, len(in.Details))
	for _, d := range in.Details {
		ids = append(ids, d.IDProduk)
	}
	if in.AdditionalShipment != nil && in.AdditionalShipment.Enabled {
		for _, d := range in.AdditionalShipment.Details {
			ids = append(ids, d.IDProduk)
		}
	}
	produkMap, err := cekProdukAktif(config.DB, ids)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	// tanggal efektif: tanggal_pembayaran kalau dikirim, selain itu hari ini
	tglEfektif := datatypes.Date(utils.Today())
	if in.TanggalPembayaran != "" {
		parsed, err := parseDateOnly(in.TanggalPembayaran)
		if err != nil {
			utils.Error(c, http.StatusBadRequest, "tanggal_pembayaran tidak valid", err)
			return
		}
		tglEfektif = parsed
	}

	adaPotongan := in.Potongan != nil && in.Potongan.JumlahPotongan > 0

	var billing models.Penagihan
	var autoShipment, addShipment *models.Pengiriman

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		billing = models.Penagihan{
			IDToko:            in.IDToko,
			TotalUangDiterima: in.TotalUangDiterima,
			MetodePembayaran:  models.MetodePembayaran(in.MetodePembayaran),
			AdaPotongan:       adaPotongan,
			TanggalPembayaran: &tglEfektif,
		}
		if err := tx.Create(&billing).Error; err != nil {
			return fmt.Errorf("Gagal membuat penagihan: %w", err)
		}

		details := make([]models.DetailPenagihan, 0, len(in.Details))
		for _, d := range in.Details {
			details = append(details, models.DetailPenagihan{
				IDPenagihan:   billing.ID,
				IDProduk:      d.IDProduk,
				JumlahTerjual: d.JumlahTerjual,
				JumlahKembali: d.JumlahKembali,
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return fmt.Errorf("Gagal membuat detail penagihan: %w", err)
		}

		if adaPotongan {
			potongan := models.PotonganPenagihan{
				IDPenagihan:    billing.ID,
				JumlahPotongan: in.Potongan.JumlahPotongan,
				Keterangan:     in.Potongan.Keterangan,
			}
			if err := tx.Create(&potongan).Error; err != nil {
				return fmt.Errorf("Gagal membuat potongan: %w", err)
			}
		}

		if in.AutoRestock {
			// restock = mirror jumlah terjual (bukan net terjual-kembali)
			restokDetails := make([]models.DetailPengiriman, 0, len(in.Details))
			for _, d := range in.Details {
				if d.JumlahTerjual <= 0 {
					continue
				}
				restokDetails = append(restokDetails, models.DetailPengiriman{
					IDProduk:    d.IDProduk,
					JumlahKirim: d.JumlahTerjual,
					HargaSatuan: produkMap[d.IDProduk].HargaSatuan,
				})
			}
			if len(restokDetails) > 0 {
				shipment := models.Pengiriman{
					IDToko:        in.IDToko,
					TanggalKirim:  tglEfektif,
					IsAutorestock: true,
					Details:       restokDetails,
				}
				if err := tx.Create(&shipment).Error; err != nil {
					return fmt.Errorf("Auto-restock gagal: %w", err)
				}
				autoShipment = &shipment
			}
		}

		if in.AdditionalShipment != nil && in.AdditionalShipment.Enabled {
			addDetails := make([]models.DetailPengiriman, 0, len(in.AdditionalShipment.Details))
			for _, d := range in.AdditionalShipment.Details {
				addDetails = append(addDetails, models.DetailPengiriman{
					IDProduk:    d.IDProduk,
					JumlahKirim: d.JumlahKirim,
					HargaSatuan: produkMap[d.IDProduk].HargaSatuan,
				})
			}
			shipment := models.Pengiriman{
				IDToko:       in.IDToko,
				TanggalKirim: tglEfektif,
				Details:      addDetails,
			}
			if err := tx.Create(&shipment).Error; err != nil {
				return fmt.Errorf("Pengiriman tambahan gagal: %w", err)
			}
			addShipment = &shipment
		}

		return nil
	})

	if err != nil {
		status := http.StatusInternalServerError
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == "23505" || pgErr.Code == "23503" || pgErr.Code == "23514") {
			status = http.StatusBadRequest
		}
		utils.Error(c, status, err.Error(), nil)
		return
	}

	// re-fetch lengkap untuk respons
	var created models.Penagihan
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").Preload("Potongan").
		First(&created, billing.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil penagihan yang dibuat", err)
		return
	}

	message := "Penagihan berhasil dibuat"
	if autoShipment != nil {
		message += " + auto-restock"
	}
	if addShipment != nil {
		message += " + pengiriman tambahan"
	}

	utils.Created(c, gin.H{
		"billing":               created,
		"auto_restock_shipment": autoShipment,
		"additional_shipment":   addShipment,
		"message":               message,
	})
}

type PenagihanUpdateInput struct {
	TotalUangDiterima float64                `json:"total_uang_diterima" validate:"gte=0"`
	MetodePembayaran  string                 `json:"metode_pembayaran" validate:"required,oneof=Cash Transfer"`
	Details           []DetailPenagihanInput `json:"details" validate:"required,min=1,dive"`
	Potongan          *PotonganInput         `json:"potongan" validate:"omitempty"`
}

func UpdatePenagihan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var billing models.Penagihan
	if err := config.DB.First(&billing, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Penagihan tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data penagihan", err)
		return
	}

	var in PenagihanUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}
	if err := validate.Struct(in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	ids := make([]uint, 0, len(in.Details))
	for _, d := range in.Details {
		ids = append(ids, d.IDProduk)
	}
	if _, err := cekProdukAktif(config.DB, ids); err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	adaPotongan := in.Potongan != nil && in.Potongan.JumlahPotongan > 0

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		billing.TotalUangDiterima = in.TotalUangDiterima
		billing.MetodePembayaran = models.MetodePembayaran(in.MetodePembayaran)
		billing.AdaPotongan = adaPotongan
		if err := tx.Save(&billing).Error; err != nil {
			return err
		}

		if err := tx.Where("id_penagihan = ?", billing.ID).
			Delete(&models.DetailPenagihan{}).Error; err != nil {
			return err
		}
		details := make([]models.DetailPenagihan, 0, len(in.Details))
		for _, d := range in.Details {
			details = append(details, models.DetailPenagihan{
				IDPenagihan:   billing.ID,
				IDProduk:      d.IDProduk,
				JumlahTerjual: d.JumlahTerjual,
				JumlahKembali: d.JumlahKembali,
			})
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		if err := tx.Where("id_penagihan = ?", billing.ID).
			Delete(&models.PotonganPenagihan{}).Error; err != nil {
			return err
		}
		if adaPotongan {
			potongan := models.PotonganPenagihan{
				IDPenagihan:    billing.ID,
				JumlahPotongan: in.Potongan.JumlahPotongan,
				Keterangan:     in.Potongan.Keterangan,
			}
			if err := tx.Create(&potongan).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal memperbarui penagihan", err)
		return
	}

	var updated models.Penagihan
	if err := config.DB.Preload("Toko.Sales").Preload("Details.Produk").Preload("Potongan").
		First(&updated, billing.ID).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil penagihan", err)
		return
	}
	utils.Success(c, updated)
}

func DeletePenagihan(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	// detail + potongan ikut terhapus lewat cascade
	res := config.DB.Delete(&models.Penagihan{}, id)
	if res.Error != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghapus penagihan", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.Error(c, http.StatusNotFound, "Penagihan tidak ditemukan", nil)
		return
	}
	utils.Success(c, gin.H{"deleted": id})
}
