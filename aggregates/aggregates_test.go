package aggregates

import (
	"math/rand"
	"testing"
)

func TestComputeEmptyInputs(t *testing.T) {
	got := Compute(nil, nil)
	if got != (Totals{}) {
		t.Fatalf("input kosong harus menghasilkan Totals nol, dapat %+v", got)
	}
}

func TestComputeIdentities(t *testing.T) {
	ship := []ShipmentLine{
		{IDProduk: 1, JumlahKirim: 10, HargaSatuan: 5000},
		{IDProduk: 2, JumlahKirim: 7, HargaSatuan: 8000},
	}
	bill := []BillingLine{
		{IDProduk: 1, JumlahTerjual: 6, JumlahKembali: 2, HargaSatuan: 5000},
		{IDProduk: 2, JumlahTerjual: 3, JumlahKembali: 0, HargaSatuan: 8000},
	}

	got := Compute(ship, bill)

	if got.TotalTerkirim != 17 || got.TotalTerjual != 9 || got.TotalKembali != 2 {
		t.Fatalf("total salah: %+v", got)
	}
	if got.TotalTerbayar != got.TotalTerjual-got.TotalKembali {
		t.Fatalf("total_terbayar harus terjual-kembali, dapat %d", got.TotalTerbayar)
	}
	if got.SisaStok != got.TotalTerkirim-got.TotalTerjual-got.TotalKembali {
		t.Fatalf("sisa_stok harus terkirim-terjual-kembali, dapat %d", got.SisaStok)
	}
	if got.HasDataInconsistency {
		t.Fatalf("tidak ada inkonsistensi di data ini")
	}
	// revenue = 6*5000 + 3*8000, potongan tidak berpengaruh
	if got.Revenue != 54000 {
		t.Fatalf("revenue = %v, mau 54000", got.Revenue)
	}
}

func TestInconsistencyFlagProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 1000; i++ {
		terkirim := rng.Intn(50)
		terjual := rng.Intn(50)
		kembali := rng.Intn(50)

		got := Compute(
			[]ShipmentLine{{IDProduk: 1, JumlahKirim: terkirim}},
			[]BillingLine{{IDProduk: 1, JumlahTerjual: terjual, JumlahKembali: kembali}},
		)

		want := terjual+kembali > terkirim
		if got.HasDataInconsistency != want {
			t.Fatalf("terkirim=%d terjual=%d kembali=%d: flag=%v, mau %v",
				terkirim, terjual, kembali, got.HasDataInconsistency, want)
		}
	}
}

func TestConversionRate(t *testing.T) {
	if got := ConversionRate(10, 0); got != 0 {
		t.Fatalf("terkirim 0 harus rate 0, dapat %v", got)
	}
	if got := ConversionRate(0, 0); got != 0 {
		t.Fatalf("0/0 harus 0, dapat %v", got)
	}
	if got := ConversionRate(1, 3); got != 33.33 {
		t.Fatalf("1/3 harus 33.33, dapat %v", got)
	}
	if got := ConversionRate(10, 10); got != 100 {
		t.Fatalf("10/10 harus 100, dapat %v", got)
	}
	// terjual boleh melebihi terkirim (data inkonsisten), rate tetap >= 0
	if got := ConversionRate(15, 10); got != 150 {
		t.Fatalf("15/10 harus 150, dapat %v", got)
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		got := ConversionRate(rng.Intn(100), rng.Intn(100))
		if got < 0 {
			t.Fatalf("rate negatif: %v", got)
		}
	}
}

func TestEfektivitas(t *testing.T) {
	if got := Efektivitas(500, 0); got != 0 {
		t.Fatalf("revenue 0 harus efektivitas 0, dapat %v", got)
	}
	if got := Efektivitas(50000, 100000); got != 50 {
		t.Fatalf("50000/100000 harus 50, dapat %v", got)
	}
	if got := Efektivitas(100000, 30000); got != 333.33 {
		t.Fatalf("mau 333.33, dapat %v", got)
	}
}
