package models

import (
	"time"

	"gorm.io/datatypes"
)

// Pengiriman = stocking barang ke toko (model konsinyasi).
// IsAutorestock true kalau pengiriman dibuat otomatis saat penagihan.
type Pengiriman struct {
	ID            uint               `gorm:"primaryKey" json:"id_pengiriman"`
	IDToko        uint               `gorm:"not null;index" json:"id_toko"`
	Toko          Toko               `gorm:"foreignKey:IDToko" json:"toko"`
	TanggalKirim  datatypes.Date     `gorm:"not null;index" json:"tanggal_kirim"`
	IsAutorestock bool               `gorm:"default:false" json:"is_autorestock"`
	Details       []DetailPengiriman `gorm:"foreignKey:IDPengiriman;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"detail_pengiriman"`
	CreatedAt     time.Time          `json:"dibuat_pada"`
	UpdatedAt     time.Time          `json:"diperbarui_pada"`
}

func (Pengiriman) TableName() string { return "pengiriman" }

type DetailPengiriman struct {
	ID           uint      `gorm:"primaryKey" json:"id_detail_kirim"`
	IDPengiriman uint      `gorm:"not null;index" json:"id_pengiriman"`
	IDProduk     uint      `gorm:"not null;index" json:"id_produk"`
	Produk       *Produk   `gorm:"foreignKey:IDProduk" json:"produk,omitempty"`
	JumlahKirim  int       `gorm:"not null" json:"jumlah_kirim"`
	HargaSatuan  float64   `gorm:"not null" json:"harga_satuan"` // snapshot harga produk saat kirim
	CreatedAt    time.Time `json:"dibuat_pada"`
	UpdatedAt    time.Time `json:"diperbarui_pada"`
}

func (DetailPengiriman) TableName() string { return "detail_pengiriman" }
