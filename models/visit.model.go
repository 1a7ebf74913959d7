package models

import (
	"gorm.io/gorm"
)

type Visit struct {
	gorm.Model
	Park      string `gorm:"size:50;not null;uniqueIndex:idx_park_visitor" json:"parque" form:"parque"`
	Rating    int    `gorm:"not null" json:"rating"`
	VisitDate string `gorm:"size:10;not null" json:"fechaVisita"` // ISO 8601, compares lexicographically
	Details   string `gorm:"type:text;not null" json:"detalles"`
	VisitorID uint   `gorm:"not null;index;uniqueIndex:idx_park_visitor" json:"visitanteId"`
	Visitor   User   `gorm:"foreignKey:VisitorID" json:"visitante,omitempty"`
}

// CanModify reports whether userID owns the visit. Edit, delete and the
// edit form all go through this single predicate.
func (v *Visit) CanModify(userID uint) bool {
	return v.VisitorID == userID
}
