package models

import "time"

// Reservation statuses, stored as-is in the statut column.
const (
	ReservationPending  = "en_attente"
	ReservationApproved = "approuvee"
)

type Reservation struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:nom;size:100;not null" json:"nom"`
	Email       string    `gorm:"column:email;size:100;not null" json:"email"`
	Phone       string    `gorm:"column:telephone;size:30;not null" json:"telephone"`
	Destination string    `gorm:"column:destination;size:255;not null" json:"destination"`
	Class       string    `gorm:"column:classe;size:50;not null" json:"classe"`
	Date        string    `gorm:"column:date;size:30;not null" json:"date"`
	Status      string    `gorm:"column:statut;size:20;default:'en_attente'" json:"statut"`
	CreatedAt   time.Time `gorm:"column:date_creation;autoCreateTime" json:"date_creation"`
}

func (Reservation) TableName() string {
	return "reservations"
}
