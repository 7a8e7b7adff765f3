package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/search"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
)

// Satu implementasi untuk semua endpoint search-suggestions; tiap entitas
// cuma beda default types.

func ProdukSearchSuggestions(c *gin.Context) {
	searchSuggestions(c, []string{"produk"})
}

func TokoSearchSuggestions(c *gin.Context) {
	searchSuggestions(c, []string{"toko", "kabupaten", "kecamatan", "sales"})
}

func PengirimanSearchSuggestions(c *gin.Context) {
	searchSuggestions(c, []string{"pengiriman", "toko", "tanggal"})
}

func PenagihanSearchSuggestions(c *gin.Context) {
	searchSuggestions(c, []string{"penagihan", "toko", "sales", "tanggal"})
}

func searchSuggestions(c *gin.Context, defaultTypes []string) {
	q := strings.TrimSpace(c.Query("q"))
	if len(q) < 1 {
		utils.Success(c, gin.H{"suggestions": []search.Suggestion{}})
		return
	}

	limit := getIntQ(c, "limit", 20)
	types := defaultTypes
	if t := strings.TrimSpace(c.Query("types")); t != "" {
		types = strings.Split(t, ",")
	}
	perType := limit / len(types)
	if perType < 1 {
		perType = 1
	}

	numericID := uint64(0)
	isNumeric := false
	if n, err := strconv.ParseUint(q, 10, 64); err == nil {
		numericID = n
		isNumeric = true
	}
	dateQ, isDate := search.NormalizeDateQuery(q)

	like := "%" + q + "%"
	var out []search.Suggestion

	for _, typ := range types {
		switch strings.TrimSpace(typ) {
		case "toko":
			var rows []struct {
				ID       uint
				NamaToko string
			}
			query := config.DB.Table("toko").Select("id, nama_toko").Limit(perType)
			if isNumeric {
				query = query.Where("id = ?", numericID)
			} else {
				query = query.Where("nama_toko ILIKE ?", like)
			}
			if err := query.Scan(&rows).Error; err != nil {
				utils.Error(c, http.StatusInternalServerError, "Gagal mengambil saran", err)
				return
			}
			for _, r := range rows {
				out = append(out, search.Suggestion{
					Value: r.NamaToko, Label: r.NamaToko, Type: "toko",
					Metadata: map[string]interface{}{"id_toko": r.ID},
				})
			}

		case "sales":
			var rows []struct {
				ID        uint
				NamaSales string
			}
			query := config.DB.Table("sales").Select("id, nama_sales").Limit(perType)
			if isNumeric {
				query = query.Where("id = ?", numericID)
			} else {
				query = query.Where("nama_sales ILIKE ?", like)
			}
			if err := query.Scan(&rows).Error; err != nil {
				utils.Error(c, http.StatusInternalServerError, "Gagal mengambil saran", err)
				return
			}
			for _, r := range rows {
				out = append(out, search.Suggestion{
					Value: r.NamaSales, Label: r.NamaSales, Type: "sales",
					Metadata: map[string]interface{}{"id_sales": r.ID},
				})
			}

		case "produk":
			var rows []struct {
				ID         uint
				NamaProduk string
			}
			query := config.DB.Table("produk").Select("id, nama_produk").Limit(perType)
			if isNumeric {
				query = query.Where("id = ?", numericID)
			} else {
				query = query.Where("nama_produk ILIKE ?", like)
			}
			if err := query.Scan(&rows).Error; err != nil {
				utils.Error(c, http.StatusInternalServerError, "Gagal mengambil saran", err)
				return
			}
			for _, r := range rows {
				out = append(out, search.Suggestion{
					Value: r.NamaProduk, Label: r.NamaProduk, Type: "produk",
					Metadata: map[string]interface{}{"id_produk": r.ID},
				})
			}

		case "kabupaten", "kecamatan":
			col := strings.TrimSpace(typ)
			var vals []string
			if err := config.DB.Table("toko").
				Distinct(col).
				Where(col+" ILIKE ? AND "+col+" <> ''", like).
				Limit(perType).
				Pluck(col, &vals).Error; err != nil {
				utils.Error(c, http.StatusInternalServerError, "Gagal mengambil saran", err)
				return
			}
			for _, v := range vals {
				out = append(out, search.Suggestion{Value: v, Label: v, Type: col})
			}

		case "pengiriman", "penagihan":
			tbl := strings.TrimSpace(typ)
			dateCol := "tanggal_kirim"
			if tbl == "penagihan" {
				dateCol = "tanggal_pembayaran"
			}
			var rows []struct {
				ID       uint
				NamaToko string
			}
			query := config.DB.Table(tbl + " x").
				Select("x.id, t.nama_toko").
				Joins("JOIN toko t ON t.id = x.id_toko").
				Limit(perType)
			switch {
			case isNumeric:
				query = query.Where("x.id = ?", numericID)
			case isDate:
				query = query.Where("x."+dateCol+" = ?", dateQ)
			default:
				query = query.Where("t.nama_toko ILIKE ?", like)
			}
			if err := query.Scan(&rows).Error; err != nil {
				utils.Error(c, http.StatusInternalServerError, "Gagal mengambil saran", err)
				return
			}
			for _, r := range rows {
				label := fmt.Sprintf("%s #%d - %s", strings.ToUpper(tbl[:1])+tbl[1:], r.ID, r.NamaToko)
				out = append(out, search.Suggestion{
					Value: strconv.FormatUint(uint64(r.ID), 10), Label: label, Type: tbl,
					Metadata: map[string]interface{}{"nama_toko": r.NamaToko},
				})
			}

		case "tanggal":
			if isDate {
				out = append(out, search.Suggestion{Value: dateQ, Label: dateQ, Type: "tanggal"})
			}
		}
	}

	out = search.Dedupe(out)
	out = search.Rank(out, q)
	if len(out) > limit {
		out = out[:limit]
	}
	utils.Success(c, gin.H{"suggestions": out})
}
