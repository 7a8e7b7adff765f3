package controllers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setupTestDB membuka sqlite in-memory, migrasi skema, dan seed master data:
// satu sales aktif, satu toko aktif, produk id 1 & 2 aktif, produk id 3
// nonaktif.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("buka sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Sales{},
		&models.Toko{},
		&models.Produk{},
		&models.Pengiriman{},
		&models.DetailPengiriman{},
		&models.Penagihan{},
		&models.DetailPenagihan{},
		&models.PotonganPenagihan{},
		&models.Setoran{},
		&models.PengeluaranOperasional{},
	); err != nil {
		t.Fatalf("migrasi: %v", err)
	}

	sales := models.Sales{NamaSales: "Budi", StatusAktif: true}
	if err := db.Create(&sales).Error; err != nil {
		t.Fatalf("seed sales: %v", err)
	}
	toko := models.Toko{IDSales: sales.ID, NamaToko: "Toko Jaya", Kabupaten: "Magelang", Kecamatan: "Mertoyudan", StatusToko: true}
	if err := db.Create(&toko).Error; err != nil {
		t.Fatalf("seed toko: %v", err)
	}
	produk := []models.Produk{
		{NamaProduk: "Keripik Singkong", HargaSatuan: 10000, StatusProduk: true},
		{NamaProduk: "Keripik Pisang", HargaSatuan: 12000, StatusProduk: true},
		{NamaProduk: "Produk Lama", HargaSatuan: 8000, StatusProduk: false},
	}
	if err := db.Create(&produk).Error; err != nil {
		t.Fatalf("seed produk: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
	return db
}

// testRouter mendaftarkan handler tanpa middleware auth.
func testRouter() *gin.Engine {
	r := gin.New()
	r.POST("/penagihan", CreatePenagihan)
	r.GET("/penagihan", GetAllPenagihan)
	r.GET("/penagihan/:id", GetPenagihanByID)
	r.DELETE("/penagihan/:id", DeletePenagihan)
	r.POST("/pengiriman", CreatePengiriman)
	r.GET("/pengiriman", GetAllPengiriman)
	r.POST("/produk", CreateProduk)
	r.GET("/produk", GetAllProduk)
	r.POST("/toko", CreateToko)
	r.GET("/toko/:id/stats", GetTokoStats)
	r.GET("/toko/search-suggestions", TokoSearchSuggestions)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode respons: %v (body: %s)", err, w.Body.String())
	}
	return out
}

func countRows(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
