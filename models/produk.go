package models

import "time"

type Produk struct {
	ID            uint      `gorm:"primaryKey" json:"id_produk"`
	NamaProduk    string    `gorm:"size:180;not null" json:"nama_produk"`
	HargaSatuan   float64   `gorm:"not null" json:"harga_satuan"` // harga jual per unit, >= 0
	StatusProduk  bool      `gorm:"default:true;index" json:"status_produk"`
	IsPriority    bool      `gorm:"default:false" json:"is_priority"`
	PriorityOrder int       `gorm:"default:0" json:"priority_order"`
	CreatedAt     time.Time `json:"dibuat_pada"`
	UpdatedAt     time.Time `json:"diperbarui_pada"`
}

func (Produk) TableName() string { return "produk" }
