package models

type HomepageImage struct {
	ID    uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	URL   string `gorm:"column:url;size:255;not null" json:"url"`
	Order int    `gorm:"column:ordre;default:0" json:"ordre"`
}

func (HomepageImage) TableName() string {
	return "images_accueil"
}
