package controllers

import (
	"net/http"
	"testing"

	"github.com/arisdnt/catat-sales-sub000/models"

	"github.com/gin-gonic/gin"
)

func TestCreateProdukHargaNegatif(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/produk", gin.H{
		"nama_produk":  "Produk Aneh",
		"harga_satuan": -100,
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("harga negatif harus 400, dapat %d", w.Code)
	}
}

func TestCreateProdukDanListFilterStatus(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/produk", gin.H{
		"nama_produk":   "Keripik Tempe",
		"harga_satuan":  9000,
		"status_produk": false,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	// seed punya 2 aktif + 1 nonaktif, ditambah 1 nonaktif barusan
	w = doJSON(t, r, "GET", "/produk?status_produk=false", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := decodeBody(t, w)
	data := body["data"].([]interface{})
	if len(data) != 2 {
		t.Fatalf("filter status_produk=false harus 2 baris, dapat %d", len(data))
	}
	pagination := body["pagination"].(map[string]interface{})
	if pagination["total"].(float64) != 2 {
		t.Fatalf("total pagination salah: %v", pagination)
	}
}

func TestCreateTokoButuhSalesAktif(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	nonaktif := models.Sales{NamaSales: "Mantan Sales", StatusAktif: false}
	if err := db.Create(&nonaktif).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	w := doJSON(t, r, "POST", "/toko", gin.H{
		"id_sales":  nonaktif.ID,
		"nama_toko": "Toko Baru",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("sales nonaktif harus 400, dapat %d", w.Code)
	}

	w = doJSON(t, r, "POST", "/toko", gin.H{
		"id_sales":  1,
		"nama_toko": "Toko Baru",
		"kabupaten": "Magelang",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("sales aktif harus berhasil, dapat %d (body %s)", w.Code, w.Body.String())
	}
}

func TestCreatePengirimanDanTokoStats(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/pengiriman", gin.H{
		"id_toko": 1,
		"details": []gin.H{
			{"id_produk": 1, "jumlah_kirim": 10},
			{"id_produk": 2, "jumlah_kirim": 7},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("kirim: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 60000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 6, "jumlah_kembali": 2},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("tagih: status %d, body %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, "GET", "/toko/1/stats", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("stats: status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	stats := body["data"].(map[string]interface{})["stats"].(map[string]interface{})

	if stats["total_terkirim"].(float64) != 17 {
		t.Fatalf("total_terkirim: %v", stats)
	}
	if stats["total_terjual"].(float64) != 6 || stats["total_kembali"].(float64) != 2 {
		t.Fatalf("terjual/kembali: %v", stats)
	}
	if stats["sisa_stok"].(float64) != 9 {
		t.Fatalf("sisa_stok harus 17-6-2=9: %v", stats)
	}
	if stats["total_terbayar"].(float64) != 4 {
		t.Fatalf("total_terbayar harus 6-2=4: %v", stats)
	}
	if stats["has_data_inconsistency"].(bool) {
		t.Fatalf("data konsisten, flag harus false: %v", stats)
	}
	// revenue = 6 * 10000
	if stats["revenue"].(float64) != 60000 {
		t.Fatalf("revenue: %v", stats)
	}
}

func TestCreatePengirimanProdukNonaktif(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/pengiriman", gin.H{
		"id_toko": 1,
		"details": []gin.H{
			{"id_produk": 3, "jumlah_kirim": 5},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("produk nonaktif harus 400, dapat %d", w.Code)
	}
	if n := countRows(t, db, &models.Pengiriman{}); n != 0 {
		t.Fatalf("tidak boleh ada pengiriman tersimpan")
	}
}
