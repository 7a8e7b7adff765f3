package models

import "time"

type Sales struct {
	ID           uint      `gorm:"primaryKey" json:"id_sales"`
	NamaSales    string    `gorm:"size:180;not null" json:"nama_sales"`
	NomorTelepon *string   `gorm:"size:60" json:"nomor_telepon"`
	StatusAktif  bool      `gorm:"default:true;index" json:"status_aktif"`
	CreatedAt    time.Time `json:"dibuat_pada"`
	UpdatedAt    time.Time `json:"diperbarui_pada"`
}

func (Sales) TableName() string { return "sales" }
