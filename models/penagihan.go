package models

import (
	"time"

	"gorm.io/datatypes"
)

type MetodePembayaran string

const (
	PembayaranCash     MetodePembayaran = "Cash"
	PembayaranTransfer MetodePembayaran = "Transfer"
)

// Penagihan = setor hasil penjualan toko: terjual, kembali, uang diterima.
type Penagihan struct {
	ID                uint               `gorm:"primaryKey" json:"id_penagihan"`
	IDToko            uint               `gorm:"not null;index" json:"id_toko"`
	Toko              Toko               `gorm:"foreignKey:IDToko" json:"toko"`
	TotalUangDiterima float64            `gorm:"not null" json:"total_uang_diterima"`
	MetodePembayaran  MetodePembayaran   `gorm:"size:12;not null" json:"metode_pembayaran"`
	AdaPotongan       bool               `gorm:"default:false" json:"ada_potongan"`
	TanggalPembayaran *datatypes.Date    `gorm:"index" json:"tanggal_pembayaran"`
	Details           []DetailPenagihan  `gorm:"foreignKey:IDPenagihan;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"detail_penagihan"`
	Potongan          *PotonganPenagihan `gorm:"foreignKey:IDPenagihan;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"potongan,omitempty"`
	CreatedAt         time.Time          `json:"dibuat_pada"`
	UpdatedAt         time.Time          `json:"diperbarui_pada"`
}

func (Penagihan) TableName() string { return "penagihan" }

type DetailPenagihan struct {
	ID            uint      `gorm:"primaryKey" json:"id_detail_tagih"`
	IDPenagihan   uint      `gorm:"not null;index" json:"id_penagihan"`
	IDProduk      uint      `gorm:"not null;index" json:"id_produk"`
	Produk        *Produk   `gorm:"foreignKey:IDProduk" json:"produk,omitempty"`
	JumlahTerjual int       `gorm:"not null" json:"jumlah_terjual"`
	JumlahKembali int       `gorm:"not null" json:"jumlah_kembali"`
	CreatedAt     time.Time `json:"dibuat_pada"`
	UpdatedAt     time.Time `json:"diperbarui_pada"`
}

func (DetailPenagihan) TableName() string { return "detail_penagihan" }

type PotonganPenagihan struct {
	ID             uint      `gorm:"primaryKey" json:"id_potongan"`
	IDPenagihan    uint      `gorm:"uniqueIndex;not null" json:"id_penagihan"`
	JumlahPotongan float64   `gorm:"not null" json:"jumlah_potongan"`
	Keterangan     *string   `gorm:"size:255" json:"keterangan"`
	CreatedAt      time.Time `json:"dibuat_pada"`
	UpdatedAt      time.Time `json:"diperbarui_pada"`
}

func (PotonganPenagihan) TableName() string { return "potongan_penagihan" }
