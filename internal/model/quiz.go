package model

import "time"

// Quiz is one attempt by a player: created at submission time with both
// timestamps set to the moment of submission, score finalized in the same
// transaction as its answers.
//
// swagger:model Quiz
type Quiz struct {
	BaseModel
	PlayerID  uint      `gorm:"index;not null" json:"playerId"`
	Score     int       `gorm:"not null;default:0" json:"score"`
	StartedAt time.Time `json:"startedAt"`
	EndedAt   time.Time `json:"endedAt"`
	Player    *User     `gorm:"foreignKey:PlayerID" json:"-"`
	Answers   []Answer  `gorm:"foreignKey:QuizID" json:"answers,omitempty"`
}

func (Quiz) TableName() string {
	return "quizzes"
}

// Answer records one submitted (question, choice) pair. IsCorrect is a
// snapshot of the choice's flag at submission time, not a live reference.
//
// swagger:model Answer
type Answer struct {
	BaseModel
	QuizID     uint `gorm:"index;not null" json:"quizId"`
	QuestionID uint `gorm:"index;not null" json:"questionId"`
	ChoiceID   uint `gorm:"not null" json:"choiceId"`
	IsCorrect  bool `gorm:"not null" json:"isCorrect"`
}

func (Answer) TableName() string {
	return "answers"
}
