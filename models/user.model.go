package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	FirstName string `gorm:"size:50;not null" json:"nombre" form:"nombre"`
	LastName  string `gorm:"size:50;not null" json:"apellido" form:"apellido"`
	Email     string `gorm:"size:120;unique;not null" json:"email" form:"email"`
	Password  string `gorm:"size:255;not null" json:"-" form:"password"`
}

// FullName is the display name kept in the session after login.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
