package model

// swagger:model Category
type Category struct {
	BaseModel
	Name        string     `gorm:"size:100;unique;not null" json:"name"`
	Description string     `gorm:"size:255" json:"description"`
	Questions   []Question `gorm:"foreignKey:CategoryID" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}
