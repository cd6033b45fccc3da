package models

// Identifiers of the three editable site texts, seeded at first boot.
const (
	TextPresentation = "presentation"
	TextContact      = "contact"
	TextFooter       = "footer"
)

type SiteText struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Identifier string `gorm:"column:identifiant;size:50;unique;not null" json:"identifiant"`
	Content    string `gorm:"column:contenu;type:text;not null" json:"contenu"`
}

func (SiteText) TableName() string {
	return "textes"
}
