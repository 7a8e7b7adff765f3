package controllers

import (
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/arisdnt/catat-sales-sub000/aggregates"
	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Endpoint "optimized" mencoba fungsi agregasi sisi-server dulu; kalau fungsi
// tidak tersedia di database, jatuh ke query join manual. Pilihan strategi
// ditentukan sekali saat pertama dipakai (probe katalog), bukan dicoba ulang
// tiap request.

type tokoListFilter struct {
	Search    string
	IDSales   *uint
	Kabupaten string
	Kecamatan string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type tokoAggregateRow struct {
	IDToko       uint    `json:"id_toko"`
	NamaToko     string  `json:"nama_toko"`
	Kabupaten    string  `json:"kabupaten"`
	Kecamatan    string  `json:"kecamatan"`
	NamaSales    string  `json:"nama_sales"`
	Terkirim     int     `json:"-"`
	Terjual      int     `json:"-"`
	Kembali      int     `json:"-"`
	RevenueTotal float64 `json:"-"`
	TotalCount   int64   `json:"-"`

	Stats aggregates.Totals `json:"stats" gorm:"-"`
}

type pengirimanAggregateRow struct {
	IDPengiriman  uint      `json:"id_pengiriman"`
	NamaToko      string    `json:"nama_toko"`
	NamaSales     string    `json:"nama_sales"`
	TanggalKirim  time.Time `json:"tanggal_kirim"`
	IsAutorestock bool      `json:"is_autorestock"`
	TotalQty      int       `json:"total_qty"`
	TotalNilai    float64   `json:"total_nilai"`
	TotalCount    int64     `json:"-"`
}

type listStrategy interface {
	TokoAggregates(db *gorm.DB, f tokoListFilter) ([]tokoAggregateRow, int64, error)
	PengirimanAggregates(db *gorm.DB, f tokoListFilter) ([]pengirimanAggregateRow, int64, error)
}

var (
	strategyOnce     sync.Once
	selectedStrategy listStrategy
)

func activeStrategy(db *gorm.DB) listStrategy {
	strategyOnce.Do(func() {
		var fn *string
		err := db.Raw(
			`SELECT to_regprocedure('get_toko_aggregates(text,bigint,text,text,integer,integer)')::text`,
		).Scan(&fn).Error
		if err == nil && fn != nil && *fn != "" {
			selectedStrategy = optimizedStrategy{}
			log.Printf("list strategy: optimized (fungsi agregasi tersedia)")
			return
		}
		selectedStrategy = fallbackStrategy{}
		log.Printf("list strategy: fallback (join manual)")
	})
	return selectedStrategy
}

// ================= Optimized =================

type optimizedStrategy struct{}

func (optimizedStrategy) TokoAggregates(db *gorm.DB, f tokoListFilter) ([]tokoAggregateRow, int64, error) {
	var rows []tokoAggregateRow
	err := db.Raw(
		`SELECT * FROM get_toko_aggregates(?, ?, ?, ?, ?, ?)`,
		nullIfEmpty(f.Search), idSalesOrNil(f.IDSales),
		nullIfEmpty(f.Kabupaten), nullIfEmpty(f.Kecamatan),
		f.Limit, (f.Page-1)*f.Limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	for i := range rows {
		rows[i].Stats = aggregates.FromSums(rows[i].Terkirim, rows[i].Terjual, rows[i].Kembali, rows[i].RevenueTotal)
	}
	return rows, total, nil
}

func (optimizedStrategy) PengirimanAggregates(db *gorm.DB, f tokoListFilter) ([]pengirimanAggregateRow, int64, error) {
	var rows []pengirimanAggregateRow
	err := db.Raw(
		`SELECT * FROM get_pengiriman_aggregates(?, ?, ?, ?)`,
		nullIfEmpty(f.Search), idSalesOrNil(f.IDSales),
		f.Limit, (f.Page-1)*f.Limit,
	).Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	var total int64
	if len(rows) > 0 {
		total = rows[0].TotalCount
	}
	return rows, total, nil
}

func nullIfEmpty(s string) interface{} {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return s
}

func idSalesOrNil(id *uint) interface{} {
	if id == nil {
		return nil
	}
	return *id
}

// ================= Fallback =================

type fallbackStrategy struct{}

func (fallbackStrategy) TokoAggregates(db *gorm.DB, f tokoListFilter) ([]tokoAggregateRow, int64, error) {
	kirimQ := db.Table("detail_pengiriman dp").
		Select("pg.id_toko, COALESCE(SUM(dp.jumlah_kirim),0) AS terkirim").
		Joins("JOIN pengiriman pg ON pg.id = dp.id_pengiriman").
		Group("pg.id_toko")
	tagihQ := db.Table("detail_penagihan dt").
		Select(`p.id_toko,
			COALESCE(SUM(dt.jumlah_terjual),0) AS terjual,
			COALESCE(SUM(dt.jumlah_kembali),0) AS kembali,
			COALESCE(SUM(dt.jumlah_terjual * pr.harga_satuan),0) AS revenue_total`).
		Joins("JOIN penagihan p ON p.id = dt.id_penagihan").
		Joins("JOIN produk pr ON pr.id = dt.id_produk").
		Group("p.id_toko")

	q := db.Table("toko t").
		Select(`t.id AS id_toko, t.nama_toko, t.kabupaten, t.kecamatan,
			s.nama_sales,
			COALESCE(k.terkirim,0) AS terkirim,
			COALESCE(g.terjual,0) AS terjual,
			COALESCE(g.kembali,0) AS kembali,
			COALESCE(g.revenue_total,0) AS revenue_total`).
		Joins("JOIN sales s ON s.id = t.id_sales").
		Joins("LEFT JOIN (?) k ON k.id_toko = t.id", kirimQ).
		Joins("LEFT JOIN (?) g ON g.id_toko = t.id", tagihQ).
		Where("t.status_toko = ?", true)

	if f.Search != "" {
		q = q.Where("t.nama_toko ILIKE ?", "%"+f.Search+"%")
	}
	if f.IDSales != nil {
		q = q.Where("t.id_sales = ?", *f.IDSales)
	}
	if f.Kabupaten != "" {
		q = q.Where("t.kabupaten = ?", f.Kabupaten)
	}
	if f.Kecamatan != "" {
		q = q.Where("t.kecamatan = ?", f.Kecamatan)
	}

	var total int64
	if err := db.Table("(?) sub", q.Session(&gorm.Session{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	allowed := map[string]string{
		"nama_toko":      "t.nama_toko",
		"total_terkirim": "terkirim",
		"total_terjual":  "terjual",
		"default":        "t.id",
	}
	col, ok := allowed[f.SortBy]
	if !ok {
		col = allowed["default"]
	}
	dir := "DESC"
	if strings.EqualFold(f.SortOrder, "asc") {
		dir = "ASC"
	}

	var rows []tokoAggregateRow
	if err := q.Order(col + " " + dir).
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	for i := range rows {
		rows[i].Stats = aggregates.FromSums(rows[i].Terkirim, rows[i].Terjual, rows[i].Kembali, rows[i].RevenueTotal)
	}
	return rows, total, nil
}

func (fallbackStrategy) PengirimanAggregates(db *gorm.DB, f tokoListFilter) ([]pengirimanAggregateRow, int64, error) {
	q := db.Table("pengiriman pg").
		Select(`pg.id AS id_pengiriman, t.nama_toko, s.nama_sales,
			pg.tanggal_kirim, pg.is_autorestock,
			COALESCE(SUM(dp.jumlah_kirim),0) AS total_qty,
			COALESCE(SUM(dp.jumlah_kirim * dp.harga_satuan),0) AS total_nilai`).
		Joins("JOIN toko t ON t.id = pg.id_toko").
		Joins("JOIN sales s ON s.id = t.id_sales").
		Joins("LEFT JOIN detail_pengiriman dp ON dp.id_pengiriman = pg.id")

	if f.Search != "" {
		q = q.Where("t.nama_toko ILIKE ?", "%"+f.Search+"%")
	}
	if f.IDSales != nil {
		q = q.Where("t.id_sales = ?", *f.IDSales)
	}
	q = q.Group("pg.id, t.nama_toko, s.nama_sales, pg.tanggal_kirim, pg.is_autorestock")

	var total int64
	if err := db.Table("(?) sub", q.Session(&gorm.Session{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []pengirimanAggregateRow
	if err := q.Order("pg.tanggal_kirim DESC").
		Offset((f.Page - 1) * f.Limit).Limit(f.Limit).
		Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ================= Handlers =================

func filterFromQuery(c *gin.Context) tokoListFilter {
	return tokoListFilter{
		Search:    strings.TrimSpace(c.Query("search")),
		IDSales:   getUintQPtr(c, "id_sales"),
		Kabupaten: strings.TrimSpace(c.Query("kabupaten")),
		Kecamatan: strings.TrimSpace(c.Query("kecamatan")),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
		Page:      getIntQ(c, "page", 1),
		Limit:     getIntQ(c, "limit", 20),
	}
}

// GET /toko/optimized
func GetTokoOptimized(c *gin.Context) {
	f := filterFromQuery(c)
	rows, total, err := activeStrategy(config.DB).TokoAggregates(config.DB, f)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil daftar toko", err)
		return
	}
	utils.Paginated(c, rows, f.Page, f.Limit, total)
}

// GET /pengiriman/optimized
func GetPengirimanOptimized(c *gin.Context) {
	f := filterFromQuery(c)
	rows, total, err := activeStrategy(config.DB).PengirimanAggregates(config.DB, f)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil daftar pengiriman", err)
		return
	}
	utils.Paginated(c, rows, f.Page, f.Limit, total)
}
