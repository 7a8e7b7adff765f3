package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/arisdnt/catat-sales-sub000/aggregates"
	"github.com/arisdnt/catat-sales-sub000/config"
	"github.com/arisdnt/catat-sales-sub000/models"
	"github.com/arisdnt/catat-sales-sub000/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// Rasio heuristik untuk estimasi piutang & distribusi aset. Bukan angka
// ledger; respons menandainya is_estimate. Satu tempat supaya gampang
// diganti saat ada keputusan produk.
const (
	estPiutangLancarRatio = 0.30 // porsi revenue harian yang diperkirakan belum tertagih < 30 hari
	estPiutangMacetRatio  = 0.05 // porsi yang diperkirakan > 90 hari
	estStokDiTokoRatio    = 0.45 // porsi nilai aset yang nyangkut sebagai stok konsinyasi
	estKasRatio           = 0.25
)

// ================= DTO =================

type salesPerformanceRow struct {
	IDSales      uint    `json:"id_sales"`
	NamaSales    string  `json:"nama_sales"`
	TotalRevenue float64 `json:"total_revenue"`
	TotalSetoran float64 `json:"total_setoran"` // proxy: penagihan Cash
	Efektivitas  float64 `json:"efektivitas_persen"`
}

type topProdukRow struct {
	IDProduk     uint    `json:"id_produk"`
	NamaProduk   string  `json:"nama_produk"`
	TotalTerjual int     `json:"total_terjual"`
	TotalRevenue float64 `json:"total_revenue"`
}

type topTokoRow struct {
	IDToko       uint    `json:"id_toko"`
	NamaToko     string  `json:"nama_toko"`
	TotalRevenue float64 `json:"total_revenue"`
}

type monthlyTrendRow struct {
	Bulan          string  `json:"bulan"` // YYYY-MM
	TotalPenagihan float64 `json:"total_penagihan"`
	TotalSetoran   float64 `json:"total_setoran"`
}

type cashInHandRow struct {
	IDSales   uint    `json:"id_sales"`
	NamaSales string  `json:"nama_sales"`
	TotalCash float64 `json:"total_cash"`
}

type transaksiReportRow struct {
	ID        uint      `json:"id"`
	NamaToko  string    `json:"nama_toko"`
	NamaSales string    `json:"nama_sales"`
	Tanggal   time.Time `json:"tanggal"`
	TotalQty  int       `json:"total_qty"`
	Total     float64   `json:"total"`
}

type rekonsiliasiRow struct {
	IDToko   uint   `json:"id_toko"`
	NamaToko string `json:"nama_toko"`
	aggregates.Totals
}

// ================= Entry point =================

// GET /reports?type=dashboard-stats|pengiriman|penagihan|rekonsiliasi&time_filter=&start_date=&end_date=
func Reports(c *gin.Context) {
	switch c.Query("type") {
	case "dashboard-stats":
		dashboardStats(c)
	case "pengiriman":
		reportPengiriman(c)
	case "penagihan":
		reportPenagihan(c)
	case "rekonsiliasi":
		reportRekonsiliasi(c)
	default:
		utils.Error(c, http.StatusBadRequest, "type laporan tidak dikenal", nil)
	}
}

func windowed(q *gorm.DB, col string, start, end time.Time) *gorm.DB {
	if start.IsZero() {
		return q
	}
	return q.Where(col+" >= ? AND "+col+" < ?", start, end)
}

// ================= Dashboard stats =================

func dashboardStats(c *gin.Context) {
	start, end, err := utils.ParseDateRange(
		c.DefaultQuery("time_filter", "thisMonth"),
		c.Query("start_date"), c.Query("end_date"),
		utils.Now(),
	)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	db := config.DB
	today := utils.Today()

	// fase 1: hitungan dasar, semua independen -> fan-out
	var (
		totalPengiriman, totalPenagihan, totalSetoran int64
		tokoAktif, produkAktif, salesAktif            int64
		todayRevenue                                  float64
	)
	g := new(errgroup.Group)
	g.Go(func() error {
		return windowed(db.Model(&models.Pengiriman{}), "tanggal_kirim", start, end).
			Count(&totalPengiriman).Error
	})
	g.Go(func() error {
		return windowed(db.Model(&models.Penagihan{}), "tanggal_pembayaran", start, end).
			Count(&totalPenagihan).Error
	})
	g.Go(func() error {
		return windowed(db.Model(&models.Setoran{}), "tanggal_setoran", start, end).
			Count(&totalSetoran).Error
	})
	g.Go(func() error {
		return db.Model(&models.Toko{}).Where("status_toko = ?", true).Count(&tokoAktif).Error
	})
	g.Go(func() error {
		return db.Model(&models.Produk{}).Where("status_produk = ?", true).Count(&produkAktif).Error
	})
	g.Go(func() error {
		return db.Model(&models.Sales{}).Where("status_aktif = ?", true).Count(&salesAktif).Error
	})
	g.Go(func() error {
		return db.Model(&models.Penagihan{}).
			Where("tanggal_pembayaran = ?", today).
			Select("COALESCE(SUM(total_uang_diterima),0)").
			Scan(&todayRevenue).Error
	})
	if err := g.Wait(); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghitung statistik dashboard", err)
		return
	}

	// fase 2: dataset agregat, juga independen satu sama lain
	var (
		performance []salesPerformanceRow
		topProduk   []topProdukRow
		topToko     []topTokoRow
		trends      []monthlyTrendRow
		cashInHand  []cashInHandRow
	)
	g2 := new(errgroup.Group)
	g2.Go(func() error {
		var err error
		performance, err = fetchSalesPerformance(db, start, end)
		return err
	})
	g2.Go(func() error {
		return windowed(db.Table("detail_penagihan dp").
			Select(`pr.id AS id_produk, pr.nama_produk,
				COALESCE(SUM(dp.jumlah_terjual),0) AS total_terjual,
				COALESCE(SUM(dp.jumlah_terjual * pr.harga_satuan),0) AS total_revenue`).
			Joins("JOIN penagihan p ON p.id = dp.id_penagihan").
			Joins("JOIN produk pr ON pr.id = dp.id_produk"),
			"p.tanggal_pembayaran", start, end).
			Group("pr.id, pr.nama_produk").
			Order("total_revenue DESC").
			Limit(10).
			Scan(&topProduk).Error
	})
	g2.Go(func() error {
		return windowed(db.Table("penagihan p").
			Select(`t.id AS id_toko, t.nama_toko,
				COALESCE(SUM(p.total_uang_diterima),0) AS total_revenue`).
			Joins("JOIN toko t ON t.id = p.id_toko"),
			"p.tanggal_pembayaran", start, end).
			Group("t.id, t.nama_toko").
			Order("total_revenue DESC").
			Limit(10).
			Scan(&topToko).Error
	})
	g2.Go(func() error {
		var err error
		trends, err = fetchMonthlyTrends(db, start, end)
		return err
	})
	g2.Go(func() error {
		// uang Cash 7 hari terakhir yang masih dipegang sales
		return db.Table("penagihan p").
			Select(`s.id AS id_sales, s.nama_sales,
				COALESCE(SUM(p.total_uang_diterima),0) AS total_cash`).
			Joins("JOIN toko t ON t.id = p.id_toko").
			Joins("JOIN sales s ON s.id = t.id_sales").
			Where("p.metode_pembayaran = ?", models.PembayaranCash).
			Where("p.tanggal_pembayaran >= ?", today.AddDate(0, 0, -7)).
			Group("s.id, s.nama_sales").
			Order("total_cash DESC").
			Scan(&cashInHand).Error
	})
	if err := g2.Wait(); err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal menghitung statistik dashboard", err)
		return
	}

	utils.Success(c, gin.H{
		"counts": gin.H{
			"total_pengiriman": totalPengiriman,
			"total_penagihan":  totalPenagihan,
			"total_setoran":    totalSetoran,
			"toko_aktif":       tokoAktif,
			"produk_aktif":     produkAktif,
			"sales_aktif":      salesAktif,
		},
		"today_revenue":     todayRevenue,
		"sales_performance": performance,
		"top_produk":        topProduk,
		"top_toko":          topToko,
		"monthly_trends":    trends,
		"cash_in_hand":      cashInHand,
		"receivables_aging": gin.H{
			"is_estimate":   true,
			"lancar_0_30":   todayRevenue * estPiutangLancarRatio * 30,
			"macet_90_plus": todayRevenue * estPiutangMacetRatio * 30,
		},
		"asset_distribution": gin.H{
			"is_estimate":  true,
			"stok_di_toko": todayRevenue * 30 * estStokDiTokoRatio,
			"kas":          todayRevenue * 30 * estKasRatio,
		},
	})
}

func fetchSalesPerformance(db *gorm.DB, start, end time.Time) ([]salesPerformanceRow, error) {
	var rows []salesPerformanceRow
	q := db.Table("penagihan p").
		Select(`s.id AS id_sales, s.nama_sales,
			COALESCE(SUM(p.total_uang_diterima),0) AS total_revenue,
			COALESCE(SUM(CASE WHEN p.metode_pembayaran = 'Cash' THEN p.total_uang_diterima ELSE 0 END),0) AS total_setoran`).
		Joins("JOIN toko t ON t.id = p.id_toko").
		Joins("JOIN sales s ON s.id = t.id_sales")
	q = windowed(q, "p.tanggal_pembayaran", start, end)
	if err := q.Group("s.id, s.nama_sales").Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Efektivitas = aggregates.Efektivitas(rows[i].TotalSetoran, rows[i].TotalRevenue)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSetoran > rows[j].TotalSetoran
	})
	return rows, nil
}

// fetchMonthlyTrends mengambil dua deret (penagihan, setoran) per bulan lalu
// digabung per kunci YYYY-MM, urut naik.
func fetchMonthlyTrends(db *gorm.DB, start, end time.Time) ([]monthlyTrendRow, error) {
	type bucket struct {
		Bulan string
		Total float64
	}

	var tagihan []bucket
	q := db.Table("penagihan").
		Select(`to_char(tanggal_pembayaran, 'YYYY-MM') AS bulan,
			COALESCE(SUM(total_uang_diterima),0) AS total`)
	q = windowed(q, "tanggal_pembayaran", start, end)
	if err := q.Group("bulan").Scan(&tagihan).Error; err != nil {
		return nil, err
	}

	var setoran []bucket
	q = db.Table("setoran").
		Select(`to_char(tanggal_setoran, 'YYYY-MM') AS bulan,
			COALESCE(SUM(total_setoran),0) AS total`)
	q = windowed(q, "tanggal_setoran", start, end)
	if err := q.Group("bulan").Scan(&setoran).Error; err != nil {
		return nil, err
	}

	merged := make(map[string]*monthlyTrendRow)
	for _, b := range tagihan {
		merged[b.Bulan] = &monthlyTrendRow{Bulan: b.Bulan, TotalPenagihan: b.Total}
	}
	for _, b := range setoran {
		if row, ok := merged[b.Bulan]; ok {
			row.TotalSetoran = b.Total
		} else {
			merged[b.Bulan] = &monthlyTrendRow{Bulan: b.Bulan, TotalSetoran: b.Total}
		}
	}

	out := make([]monthlyTrendRow, 0, len(merged))
	for _, row := range merged {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bulan < out[j].Bulan })
	return out, nil
}

// ================= Laporan transaksi =================

func reportPengiriman(c *gin.Context) {
	start, end, err := utils.ParseDateRange(
		c.DefaultQuery("time_filter", "thisMonth"),
		c.Query("start_date"), c.Query("end_date"),
		utils.Now(),
	)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	q := config.DB.Table("pengiriman pg").
		Select(`pg.id, t.nama_toko, s.nama_sales, pg.tanggal_kirim AS tanggal,
			COALESCE(SUM(dp.jumlah_kirim),0) AS total_qty,
			COALESCE(SUM(dp.jumlah_kirim * dp.harga_satuan),0) AS total`).
		Joins("JOIN toko t ON t.id = pg.id_toko").
		Joins("JOIN sales s ON s.id = t.id_sales").
		Joins("LEFT JOIN detail_pengiriman dp ON dp.id_pengiriman = pg.id")
	q = windowed(q, "pg.tanggal_kirim", start, end)

	var rows []transaksiReportRow
	if err := q.Group("pg.id, t.nama_toko, s.nama_sales, pg.tanggal_kirim").
		Order("pg.tanggal_kirim DESC").
		Scan(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil laporan pengiriman", err)
		return
	}
	utils.Success(c, rows)
}

func reportPenagihan(c *gin.Context) {
	start, end, err := utils.ParseDateRange(
		c.DefaultQuery("time_filter", "thisMonth"),
		c.Query("start_date"), c.Query("end_date"),
		utils.Now(),
	)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	q := config.DB.Table("penagihan p").
		Select(`p.id, t.nama_toko, s.nama_sales, p.tanggal_pembayaran AS tanggal,
			COALESCE(SUM(dp.jumlah_terjual),0) AS total_qty,
			p.total_uang_diterima AS total`).
		Joins("JOIN toko t ON t.id = p.id_toko").
		Joins("JOIN sales s ON s.id = t.id_sales").
		Joins("LEFT JOIN detail_penagihan dp ON dp.id_penagihan = p.id")
	q = windowed(q, "p.tanggal_pembayaran", start, end)

	var rows []transaksiReportRow
	if err := q.Group("p.id, t.nama_toko, s.nama_sales, p.tanggal_pembayaran, p.total_uang_diterima").
		Order("p.tanggal_pembayaran DESC").
		Scan(&rows).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil laporan penagihan", err)
		return
	}
	utils.Success(c, rows)
}

// reportRekonsiliasi membandingkan terkirim vs terjual vs kembali per toko
// pada jendela waktu yang diminta.
func reportRekonsiliasi(c *gin.Context) {
	start, end, err := utils.ParseDateRange(
		c.DefaultQuery("time_filter", "thisMonth"),
		c.Query("start_date"), c.Query("end_date"),
		utils.Now(),
	)
	if err != nil {
		utils.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	db := config.DB

	type sumRow struct {
		IDToko   uint
		NamaToko string
		Terkirim int
		Terjual  int
		Kembali  int
		Revenue  float64
	}

	kirimQ := db.Table("detail_pengiriman dp").
		Select("pg.id_toko, COALESCE(SUM(dp.jumlah_kirim),0) AS terkirim").
		Joins("JOIN pengiriman pg ON pg.id = dp.id_pengiriman")
	kirimQ = windowed(kirimQ, "pg.tanggal_kirim", start, end).Group("pg.id_toko")

	tagihQ := db.Table("detail_penagihan dt").
		Select(`p.id_toko,
			COALESCE(SUM(dt.jumlah_terjual),0) AS terjual,
			COALESCE(SUM(dt.jumlah_kembali),0) AS kembali,
			COALESCE(SUM(dt.jumlah_terjual * pr.harga_satuan),0) AS revenue`).
		Joins("JOIN penagihan p ON p.id = dt.id_penagihan").
		Joins("JOIN produk pr ON pr.id = dt.id_produk")
	tagihQ = windowed(tagihQ, "p.tanggal_pembayaran", start, end).Group("p.id_toko")

	var sums []sumRow
	if err := db.Table("toko t").
		Select(`t.id AS id_toko, t.nama_toko,
			COALESCE(k.terkirim,0) AS terkirim,
			COALESCE(g.terjual,0) AS terjual,
			COALESCE(g.kembali,0) AS kembali,
			COALESCE(g.revenue,0) AS revenue`).
		Joins("LEFT JOIN (?) k ON k.id_toko = t.id", kirimQ).
		Joins("LEFT JOIN (?) g ON g.id_toko = t.id", tagihQ).
		Where("t.status_toko = ?", true).
		Scan(&sums).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil laporan rekonsiliasi", err)
		return
	}

	rows := make([]rekonsiliasiRow, 0, len(sums))
	for _, s := range sums {
		rows = append(rows, rekonsiliasiRow{
			IDToko:   s.IDToko,
			NamaToko: s.NamaToko,
			Totals:   aggregates.FromSums(s.Terkirim, s.Terjual, s.Kembali, s.Revenue),
		})
	}
	utils.Success(c, rows)
}
