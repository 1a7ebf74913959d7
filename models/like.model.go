package models

import (
	"time"
)

// Like marks that a user appreciated a visit. One row per (visit, user)
// pair, enforced by the composite primary key. There is no unlike.
type Like struct {
	VisitID   uint `gorm:"primaryKey" json:"visitaId"`
	UserID    uint `gorm:"primaryKey" json:"usuarioId"`
	CreatedAt time.Time
}

func (Like) TableName() string {
	return "me_gusta"
}
