package search

import "testing"

func TestRankExactBeforePrefix(t *testing.T) {
	items := []Suggestion{
		{Value: "Toko AB", Type: "toko"},
		{Value: "Toko A", Type: "toko"},
	}
	got := Rank(items, "Toko A")
	if got[0].Value != "Toko A" || got[1].Value != "Toko AB" {
		t.Fatalf("match persis harus duluan: %+v", got)
	}
}

func TestRankTypePriority(t *testing.T) {
	items := []Suggestion{
		{Value: "Sumber Rejeki", Type: "kabupaten"},
		{Value: "Sumber Rejeki", Type: "toko"},
	}
	got := Rank(items, "Sumber")
	if got[0].Type != "toko" {
		t.Fatalf("tipe toko harus di atas kabupaten: %+v", got)
	}
}

func TestRankAlphabeticalTieBreak(t *testing.T) {
	items := []Suggestion{
		{Value: "Toko Citra", Type: "toko"},
		{Value: "Toko Bersama", Type: "toko"},
	}
	got := Rank(items, "Toko")
	if got[0].Value != "Toko Bersama" {
		t.Fatalf("skor sama harus alfabetis: %+v", got)
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	items := []Suggestion{
		{Value: "TOKO JAYA", Type: "toko"},
		{Value: "Toko Jaya Abadi", Type: "toko"},
	}
	got := Rank(items, "toko jaya")
	if got[0].Value != "TOKO JAYA" {
		t.Fatalf("match persis (case-insensitive) harus duluan: %+v", got)
	}
}

func TestDedupe(t *testing.T) {
	items := []Suggestion{
		{Value: "Toko A", Type: "toko"},
		{Value: "toko a", Type: "toko"},
		{Value: "Toko A", Type: "kabupaten"},
	}
	got := Dedupe(items)
	if len(got) != 2 {
		t.Fatalf("duplikat (type,value) harus dibuang, sisa %d: %+v", len(got), got)
	}
	if got[0].Value != "Toko A" {
		t.Fatalf("entri pertama yang menang: %+v", got)
	}
}

func TestNormalizeDateQuery(t *testing.T) {
	if v, ok := NormalizeDateQuery("2025-08-17"); !ok || v != "2025-08-17" {
		t.Fatalf("YYYY-MM-DD: dapat %q ok=%v", v, ok)
	}
	if v, ok := NormalizeDateQuery("17/08/2025"); !ok || v != "2025-08-17" {
		t.Fatalf("DD/MM/YYYY: dapat %q ok=%v", v, ok)
	}
	if _, ok := NormalizeDateQuery("Toko A"); ok {
		t.Fatalf("teks biasa bukan tanggal")
	}
	if _, ok := NormalizeDateQuery("2025-13-40"); ok {
		t.Fatalf("tanggal tidak valid harus ditolak")
	}
}
