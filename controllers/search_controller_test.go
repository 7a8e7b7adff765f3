package controllers

import (
	"net/http"
	"testing"
)

func TestSearchSuggestionsQueryKosong(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "GET", "/toko/search-suggestions?q=", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}
	body := decodeBody(t, w)
	sugs := body["data"].(map[string]interface{})["suggestions"].([]interface{})
	if len(sugs) != 0 {
		t.Fatalf("query kosong harus mengembalikan daftar kosong, dapat %v", sugs)
	}
}

func TestSearchSuggestionsIDNumerik(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "GET", "/toko/search-suggestions?q=1&types=toko", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	sugs := body["data"].(map[string]interface{})["suggestions"].([]interface{})
	if len(sugs) != 1 {
		t.Fatalf("harus 1 saran, dapat %v", sugs)
	}
	s := sugs[0].(map[string]interface{})
	if s["value"] != "Toko Jaya" || s["type"] != "toko" {
		t.Fatalf("saran tidak sesuai: %v", s)
	}
	meta := s["metadata"].(map[string]interface{})
	if meta["id_toko"].(float64) != 1 {
		t.Fatalf("metadata id_toko salah: %v", meta)
	}
}

func TestSearchSuggestionsTanggal(t *testing.T) {
	setupTestDB(t)
	r := testRouter()

	w := doJSON(t, r, "GET", "/toko/search-suggestions?q=15/08/2025&types=tanggal", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d, body %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	sugs := body["data"].(map[string]interface{})["suggestions"].([]interface{})
	if len(sugs) != 1 {
		t.Fatalf("harus 1 saran tanggal, dapat %v", sugs)
	}
	s := sugs[0].(map[string]interface{})
	if s["value"] != "2025-08-15" || s["type"] != "tanggal" {
		t.Fatalf("tanggal tidak dinormalisasi: %v", s)
	}
}
