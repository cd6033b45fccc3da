package models

type Destination struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"column:titre;size:255;not null" json:"titre"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Price       float64 `gorm:"column:prix;not null" json:"prix"`
	ImageURL    *string `gorm:"column:image_url;size:255" json:"image_url"`
}

func (Destination) TableName() string {
	return "destinations"
}
