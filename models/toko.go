package models

import "time"

type Toko struct {
	ID         uint      `gorm:"primaryKey" json:"id_toko"`
	IDSales    uint      `gorm:"not null;index" json:"id_sales"`
	Sales      Sales     `gorm:"foreignKey:IDSales" json:"sales"`
	NamaToko   string    `gorm:"size:180;not null" json:"nama_toko"`
	Kecamatan  string    `gorm:"size:120;index" json:"kecamatan"`
	Kabupaten  string    `gorm:"size:120;index" json:"kabupaten"`
	NoTelepon  *string   `gorm:"size:60" json:"no_telepon"`
	LinkGmaps  *string   `gorm:"size:500" json:"link_gmaps"`
	StatusToko bool      `gorm:"default:true;index" json:"status_toko"`
	CreatedAt  time.Time `json:"dibuat_pada"`
	UpdatedAt  time.Time `json:"diperbarui_pada"`
}

func (Toko) TableName() string { return "toko" }
