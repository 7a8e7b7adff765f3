package controllers

import (
	"net/http"
	"testing"

	"github.com/arisdnt/catat-sales-sub000/models"

	"github.com/gin-gonic/gin"
)

func TestCreatePenagihanHappyPath(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 100000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 10, "jumlah_kembali": 0},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var billing models.Penagihan
	if err := db.Preload("Details").Preload("Potongan").First(&billing).Error; err != nil {
		t.Fatalf("ambil penagihan: %v", err)
	}
	if billing.AdaPotongan {
		t.Fatalf("tanpa potongan harus ada_potongan=false")
	}
	if len(billing.Details) != 1 || billing.Details[0].JumlahTerjual != 10 {
		t.Fatalf("detail salah: %+v", billing.Details)
	}
	if billing.Potongan != nil {
		t.Fatalf("tidak boleh ada baris potongan")
	}
	if n := countRows(t, db, &models.Pengiriman{}); n != 0 {
		t.Fatalf("tanpa auto_restock tidak boleh ada pengiriman, ada %d", n)
	}
}

func TestCreatePenagihanPotonganNolTidakDisimpan(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 50000,
		"metode_pembayaran":   "Transfer",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 5, "jumlah_kembali": 0},
		},
		"potongan": gin.H{"jumlah_potongan": 0},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var billing models.Penagihan
	if err := db.First(&billing).Error; err != nil {
		t.Fatalf("ambil penagihan: %v", err)
	}
	if billing.AdaPotongan {
		t.Fatalf("potongan 0 harus ada_potongan=false")
	}
	if n := countRows(t, db, &models.PotonganPenagihan{}); n != 0 {
		t.Fatalf("potongan 0 tidak boleh tersimpan, ada %d baris", n)
	}
}

func TestCreatePenagihanPotonganTersimpan(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 90000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 10, "jumlah_kembali": 0},
		},
		"potongan": gin.H{"jumlah_potongan": 10000, "keterangan": "barang rusak"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var billing models.Penagihan
	if err := db.Preload("Potongan").First(&billing).Error; err != nil {
		t.Fatalf("ambil penagihan: %v", err)
	}
	if !billing.AdaPotongan || billing.Potongan == nil || billing.Potongan.JumlahPotongan != 10000 {
		t.Fatalf("potongan harus tersimpan: %+v", billing)
	}
}

func TestCreatePenagihanFullSideEffects(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 100000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 10, "jumlah_kembali": 0},
		},
		"auto_restock": true,
		"additional_shipment": gin.H{
			"enabled": true,
			"details": []gin.H{
				{"id_produk": 2, "jumlah_kirim": 20},
			},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var shipments []models.Pengiriman
	if err := db.Preload("Details").Order("id").Find(&shipments).Error; err != nil {
		t.Fatalf("ambil pengiriman: %v", err)
	}
	if len(shipments) != 2 {
		t.Fatalf("harus ada dua pengiriman, ada %d", len(shipments))
	}

	var auto, add *models.Pengiriman
	for i := range shipments {
		if shipments[i].IsAutorestock {
			auto = &shipments[i]
		} else {
			add = &shipments[i]
		}
	}
	if auto == nil || add == nil {
		t.Fatalf("harus satu auto-restock dan satu pengiriman biasa: %+v", shipments)
	}
	if len(auto.Details) != 1 || auto.Details[0].IDProduk != 1 || auto.Details[0].JumlahKirim != 10 {
		t.Fatalf("auto-restock harus mirror jumlah terjual produk 1: %+v", auto.Details)
	}
	if len(add.Details) != 1 || add.Details[0].IDProduk != 2 || add.Details[0].JumlahKirim != 20 {
		t.Fatalf("pengiriman tambahan salah: %+v", add.Details)
	}
}

func TestAutoRestockMirrorsSoldNotNet(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 40000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 5, "jumlah_kembali": 1},
		},
		"auto_restock": true,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}

	var shipment models.Pengiriman
	if err := db.Preload("Details").First(&shipment).Error; err != nil {
		t.Fatalf("ambil pengiriman: %v", err)
	}
	if !shipment.IsAutorestock {
		t.Fatalf("pengiriman harus bertanda auto-restock")
	}
	// mirror terjual (5), bukan net terjual-kembali (4)
	if len(shipment.Details) != 1 || shipment.Details[0].JumlahKirim != 5 {
		t.Fatalf("jumlah_kirim harus 5: %+v", shipment.Details)
	}
}

func TestCreatePenagihanProdukNonaktif(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 10000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 3, "jumlah_terjual": 2, "jumlah_kembali": 0},
		},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("produk nonaktif harus 400, dapat %d", w.Code)
	}

	if n := countRows(t, db, &models.Penagihan{}); n != 0 {
		t.Fatalf("tidak boleh ada penagihan tersimpan, ada %d", n)
	}
	if n := countRows(t, db, &models.DetailPenagihan{}); n != 0 {
		t.Fatalf("tidak boleh ada detail tersimpan, ada %d", n)
	}
}

func TestCreatePenagihanValidasi(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	cases := []struct {
		name string
		body gin.H
	}{
		{"metode tidak valid", gin.H{
			"id_toko": 1, "total_uang_diterima": 1000, "metode_pembayaran": "Barter",
			"details": []gin.H{{"id_produk": 1, "jumlah_terjual": 1}},
		}},
		{"details kosong", gin.H{
			"id_toko": 1, "total_uang_diterima": 1000, "metode_pembayaran": "Cash",
			"details": []gin.H{},
		}},
		{"uang negatif", gin.H{
			"id_toko": 1, "total_uang_diterima": -5, "metode_pembayaran": "Cash",
			"details": []gin.H{{"id_produk": 1, "jumlah_terjual": 1}},
		}},
		{"terjual negatif", gin.H{
			"id_toko": 1, "total_uang_diterima": 1000, "metode_pembayaran": "Cash",
			"details": []gin.H{{"id_produk": 1, "jumlah_terjual": -1}},
		}},
		{"toko tidak ada", gin.H{
			"id_toko": 999, "total_uang_diterima": 1000, "metode_pembayaran": "Cash",
			"details": []gin.H{{"id_produk": 1, "jumlah_terjual": 1}},
		}},
		{"pengiriman tambahan tanpa detail", gin.H{
			"id_toko": 1, "total_uang_diterima": 1000, "metode_pembayaran": "Cash",
			"details":             []gin.H{{"id_produk": 1, "jumlah_terjual": 1}},
			"additional_shipment": gin.H{"enabled": true, "details": []gin.H{}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, "POST", "/penagihan", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("harus 400, dapat %d (body %s)", w.Code, w.Body.String())
			}
			body := decodeBody(t, w)
			if body["success"] != false {
				t.Fatalf("success harus false: %v", body)
			}
		})
	}
}

func TestDeletePenagihan(t *testing.T) {
	db := setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "POST", "/penagihan", gin.H{
		"id_toko":             1,
		"total_uang_diterima": 100000,
		"metode_pembayaran":   "Cash",
		"details": []gin.H{
			{"id_produk": 1, "jumlah_terjual": 10, "jumlah_kembali": 0},
		},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status %d", w.Code)
	}

	w = doJSON(t, r, "DELETE", "/penagihan/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("hapus: status %d, body %s", w.Code, w.Body.String())
	}
	if n := countRows(t, db, &models.Penagihan{}); n != 0 {
		t.Fatalf("penagihan masih ada: %d", n)
	}

	w = doJSON(t, r, "DELETE", "/penagihan/1", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("hapus kedua harus 404, dapat %d", w.Code)
	}
}
