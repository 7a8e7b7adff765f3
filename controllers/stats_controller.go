package controllers

import (
	"errors"
	"net/http"

	"github.com/arisdnt/catat-sales-sub000/aggregates"
	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /toko/:id/stats — agregat terkirim/terjual/kembali/sisa untuk satu toko,
// dihitung dari seluruh baris detailnya.
func GetTokoStats(c *gin.Context) {
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

	var ship []aggregates.ShipmentLine
	if err := config.DB.Table("detail_pengiriman dp").
		Select("dp.id_produk, dp.jumlah_kirim, dp.harga_satuan").
		Joins("JOIN pengiriman pg ON pg.id = dp.id_pengiriman").
		Where("pg.id_toko = ?", id).
		Scan(&ship).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil detail pengiriman", err)
		return
	}

	var bill []aggregates.BillingLine
	if err := config.DB.Table("detail_penagihan dt").
		Select("dt.id_produk, dt.jumlah_terjual, dt.jumlah_kembali, pr.harga_satuan").
		Joins("JOIN penagihan p ON p.id = dt.id_penagihan").
		Joins("JOIN produk pr ON pr.id = dt.id_produk").
		Where("p.id_toko = ?", id).
		Scan(&bill).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil detail penagihan", err)
		return
	}

	utils.Success(c, gin.H{
		"id_toko":   toko.ID,
		"nama_toko": toko.NamaToko,
		"stats":     aggregates.Compute(ship, bill),
	})
}

// GET /produk/:id/stats — agregat yang sama, di-scope per produk lintas toko.
func GetProdukStats(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.Error(c, http.StatusBadRequest, "id tidak valid", nil)
		return
	}
	var produk models.Produk
	if err := config.DB.First(&produk, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, http.StatusNotFound, "Produk tidak ditemukan", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data produk", err)
		return
	}

	var ship []aggregates.ShipmentLine
	if err := config.DB.Table("detail_pengiriman").
		Select("id_produk, jumlah_kirim, harga_satuan").
		Where("id_produk = ?", id).
		Scan(&ship).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil detail pengiriman", err)
		return
	}

	var bill []aggregates.BillingLine
	if err := config.DB.Table("detail_penagihan").
		Select("id_produk, jumlah_terjual, jumlah_kembali, ? AS harga_satuan", produk.HargaSatuan).
		Where("id_produk = ?", id).
		Scan(&bill).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil detail penagihan", err)
		return
	}

	utils.Success(c, gin.H{
		"id_produk":   produk.ID,
		"nama_produk": produk.NamaProduk,
		"stats":       aggregates.Compute(ship, bill),
	})
}
