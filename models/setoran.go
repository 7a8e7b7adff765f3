package models

import (
	"time"

	"gorm.io/datatypes"
)

// Setoran kas dari sales ke kantor.
type Setoran struct {
	ID             uint           `gorm:"primaryKey" json:"id_setoran"`
	TotalSetoran   float64        `gorm:"not null" json:"total_setoran"`
	Penerima       string         `gorm:"size:180;not null" json:"penerima_setoran"`
	TanggalSetoran datatypes.Date `gorm:"not null;index" json:"tanggal_setoran"`
	CreatedAt      time.Time      `json:"dibuat_pada"`
	UpdatedAt      time.Time      `json:"diperbarui_pada"`
}

func (Setoran) TableName() string { return "setoran" }
