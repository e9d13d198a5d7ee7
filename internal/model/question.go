package model

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// swagger:model Question
type Question struct {
	BaseModel
	Content    string     `gorm:"type:text;not null" json:"content"`
	CategoryID uint       `gorm:"index;not null" json:"categoryId"`
	CreatorID  uint       `gorm:"index;not null" json:"creatorId"`
	Difficulty Difficulty `gorm:"type:enum('easy','medium','hard');default:'easy'" json:"difficulty"`
	Category   *Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Choices    []Choice   `gorm:"foreignKey:QuestionID" json:"choices,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// swagger:model Choice
type Choice struct {
	BaseModel
	QuestionID uint   `gorm:"index;not null" json:"questionId"`
	Content    string `gorm:"size:255;not null" json:"content"`
	IsCorrect  bool   `gorm:"not null" json:"isCorrect"`
}

func (Choice) TableName() string {
	return "choices"
}
