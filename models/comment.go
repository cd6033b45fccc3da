package models

import "time"

// MaxCommentLength is the longest message accepted from the public form.
const MaxCommentLength = 500

type Comment struct {
	ID       uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name     string    `gorm:"column:nom;size:100;not null" json:"nom"`
	Message  string    `gorm:"column:message;type:text;not null" json:"message"`
	Date     time.Time `gorm:"column:date;autoCreateTime" json:"date"`
	Approved int       `gorm:"column:approuve;default:0" json:"approuve"`
}

func (Comment) TableName() string {
	return "commentaires"
}
