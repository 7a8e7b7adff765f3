// Package search berisi logika ranking saran autocomplete yang dipakai
// bersama oleh endpoint search-suggestions produk/toko/pengiriman/penagihan.
package search

import (
	"sort"
	"strings"
	"time"
)

type Suggestion struct {
	Value    string                 `json:"value"`
	Label    string                 `json:"label"`
	Type     string                 `json:"type"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Prioritas tipe: entitas utama dulu, lalu master data, lalu lokasi/tanggal.
var typePriority = map[string]int{
	"penagihan":  0,
	"pengiriman": 0,
	"toko":       0,
	"produk":     1,
	"sales":      1,
	"kabupaten":  2,
	"kecamatan":  2,
	"tanggal":    2,
}

func priorityOf(typ string) int {
	if p, ok := typePriority[typ]; ok {
		return p
	}
	return 3
}

// Rank mengurutkan saran: match persis > match prefix > prioritas tipe >
// alfabetis. Sort stabil supaya urutan asal tidak teracak pada skor sama.
func Rank(items []Suggestion, query string) []Suggestion {
	q := strings.ToLower(strings.TrimSpace(query))
	ranked := make([]Suggestion, len(items))
	copy(ranked, items)

	score := func(s Suggestion) int {
		v := strings.ToLower(s.Value)
		switch {
		case v == q:
			return 0
		case strings.HasPrefix(v, q):
			return 1
		default:
			return 2
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(ranked[i]), score(ranked[j])
		if si != sj {
			return si < sj
		}
		pi, pj := priorityOf(ranked[i].Type), priorityOf(ranked[j].Type)
		if pi != pj {
			return pi < pj
		}
		return strings.ToLower(ranked[i].Value) < strings.ToLower(ranked[j].Value)
	})
	return ranked
}

// Dedupe membuang duplikat berdasarkan (type, value); entri pertama menang.
func Dedupe(items []Suggestion) []Suggestion {
	seen := make(map[string]struct{}, len(items))
	out := items[:0:0]
	for _, s := range items {
		key := s.Type + "\x00" + strings.ToLower(s.Value)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

// NormalizeDateQuery mengenali input berbentuk tanggal (YYYY-MM-DD atau
// DD/MM/YYYY) dan menormalkannya ke YYYY-MM-DD.
func NormalizeDateQuery(q string) (string, bool) {
	q = strings.TrimSpace(q)
	if t, err := time.Parse("2006-01-02", q); err == nil {
		return t.Format("2006-01-02"), true
	}
	if t, err := time.Parse("02/01/2006", q); err == nil {
		return t.Format("2006-01-02"), true
	}
	return "", false
}
