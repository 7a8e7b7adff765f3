package utils

import "time"

// Semua field tanggal-saja (tanggal_kirim, tanggal_pembayaran, dst) mengikuti
// "hari ini" menurut zona waktu kantor, bukan UTC server.

var orgLocation = loadOrgLocation()

func loadOrgLocation() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*3600)
	}
	return loc
}

// Now bisa diganti di test untuk membekukan waktu.
var Now = func() time.Time {
	return time.Now().In(orgLocation)
}

// Today mengembalikan awal hari ini (00:00) di zona waktu kantor.
func Today() time.Time {
	n := Now()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, orgLocation)
}

func OrgLocation() *time.Location { return orgLocation }
