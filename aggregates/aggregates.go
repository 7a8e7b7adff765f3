// Package aggregates menghitung metrik turunan dari baris detail pengiriman
// dan detail penagihan. Murni: tidak menyentuh database, deterministik untuk
// input yang sama, input kosong menghasilkan nol (bukan nil/NaN).
package aggregates

import "github.com/shopspring/decimal"

// ShipmentLine satu baris detail_pengiriman yang sudah di-scope
// (per produk, per toko, atau per sales).
type ShipmentLine struct {
	IDProduk    uint
	JumlahKirim int
	HargaSatuan float64
}

// BillingLine satu baris detail_penagihan beserta snapshot harga produknya.
type BillingLine struct {
	IDProduk      uint
	JumlahTerjual int
	JumlahKembali int
	HargaSatuan   float64
}

type Totals struct {
	TotalTerkirim        int     `json:"total_terkirim"`
	TotalTerjual         int     `json:"total_terjual"`
	TotalKembali         int     `json:"total_kembali"`
	TotalTerbayar        int     `json:"total_terbayar"`
	SisaStok             int     `json:"sisa_stok"`
	Revenue              float64 `json:"revenue"`
	ConversionRate       float64 `json:"conversion_rate"`
	HasDataInconsistency bool    `json:"has_data_inconsistency"`
}

// Compute menjumlahkan baris terkirim/terjual/kembali dan menurunkan:
//
//	total_terbayar = terjual - kembali
//	sisa_stok      = terkirim - terjual - kembali   (formula kanonik)
//	revenue        = SUM(terjual * harga), terlepas dari potongan
//
// has_data_inconsistency menyala kalau terjual+kembali melebihi terkirim —
// datanya tetap dihitung apa adanya, tidak dikoreksi.
func Compute(ship []ShipmentLine, bill []BillingLine) Totals {
	var t Totals
	revenue := decimal.Zero

	for _, s := range ship {
		t.TotalTerkirim += s.JumlahKirim
	}
	for _, b := range bill {
		t.TotalTerjual += b.JumlahTerjual
		t.TotalKembali += b.JumlahKembali
		revenue = revenue.Add(
			decimal.NewFromInt(int64(b.JumlahTerjual)).Mul(decimal.NewFromFloat(b.HargaSatuan)),
		)
	}

	t.TotalTerbayar = t.TotalTerjual - t.TotalKembali
	t.SisaStok = t.TotalTerkirim - t.TotalTerjual - t.TotalKembali
	t.HasDataInconsistency = t.TotalTerjual+t.TotalKembali > t.TotalTerkirim
	t.Revenue = revenue.InexactFloat64()
	t.ConversionRate = ConversionRate(t.TotalTerjual, t.TotalTerkirim)
	return t
}

// FromSums menurunkan Totals dari angka yang sudah dijumlahkan di SQL
// (GROUP BY per toko/produk/sales). Formula turunannya sama dengan Compute.
func FromSums(terkirim, terjual, kembali int, revenue float64) Totals {
	return Totals{
		TotalTerkirim:        terkirim,
		TotalTerjual:         terjual,
		TotalKembali:         kembali,
		TotalTerbayar:        terjual - kembali,
		SisaStok:             terkirim - terjual - kembali,
		Revenue:              revenue,
		ConversionRate:       ConversionRate(terjual, terkirim),
		HasDataInconsistency: terjual+kembali > terkirim,
	}
}

// ConversionRate = terjual/terkirim*100, dibulatkan 2 desimal, 0 kalau belum
// ada yang terkirim.
func ConversionRate(terjual, terkirim int) float64 {
	if terkirim == 0 {
		return 0
	}
	rate := decimal.NewFromInt(int64(terjual) * 100).
		Div(decimal.NewFromInt(int64(terkirim))).
		Round(2)
	return rate.InexactFloat64()
}

// Efektivitas = setoran/revenue*100 untuk performa sales, 0 kalau revenue 0.
func Efektivitas(setoran, revenue float64) float64 {
	if revenue == 0 {
		return 0
	}
	return decimal.NewFromFloat(setoran).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromFloat(revenue)).
		Round(2).
		InexactFloat64()
}
