package models

import (
	"time"

	"gorm.io/datatypes"
)

type PengeluaranOperasional struct {
	ID                 uint           `gorm:"primaryKey" json:"id_pengeluaran"`
	TanggalPengeluaran datatypes.Date `gorm:"not null;index" json:"tanggal_pengeluaran"`
	Keterangan         string         `gorm:"size:255;not null" json:"keterangan"`
	Jumlah             float64        `gorm:"not null" json:"jumlah"`
	URLBuktiFoto       *string        `gorm:"size:500" json:"url_bukti_foto"` // foto sudah diupload terpisah, simpan URL saja
	CreatedAt          time.Time      `json:"dibuat_pada"`
	UpdatedAt          time.Time      `json:"diperbarui_pada"`
}

func (PengeluaranOperasional) TableName() string { return "pengeluaran_operasional" }
