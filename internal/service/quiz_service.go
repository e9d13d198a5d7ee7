package service

import (
	"time"

	"quiz_arena_backend/internal/config"
	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/util"
)

type QuizService struct {
	Categories CategoryRepo
	Questions  QuestionRepo
	Quizzes    QuizRepo
	Cfg        *config.Config
}

func NewQuizService(categories CategoryRepo, questions QuestionRepo, quizzes QuizRepo, cfg *config.Config) *QuizService {
	return &QuizService{
		Categories: categories,
		Questions:  questions,
		Quizzes:    quizzes,
		Cfg:        cfg,
	}
}

// QuizChoice deliberately omits the correctness flag: handing it to the
// client at start time would let it grade itself.
type QuizChoice struct {
	ID      uint   `json:"id"`
	Content string `json:"content"`
}

type QuizQuestion struct {
	ID         uint             `json:"id"`
	Content    string           `json:"content"`
	Difficulty model.Difficulty `json:"difficulty"`
	Choices    []QuizChoice     `json:"choices"`
}

type AnswerReq struct {
	QuestionID uint `json:"question_id" binding:"required"`
	ChoiceID   uint `json:"choice_id" binding:"required"`
}

type SubmitResult struct {
	QuizID uint `json:"quiz_id"`
	Score  int  `json:"score"`
}

// Start samples up to count random questions of the category. It writes
// nothing: the attempt record is created at submission time.
func (s *QuizService) Start(categoryID uint, count int) ([]QuizQuestion, error) {
	if _, err := s.Categories.FindByID(categoryID); err != nil {
		return nil, util.ErrCategoryNotFound
	}

	if count <= 0 {
		count = s.Cfg.Quiz.DefaultCount
	}
	if count > s.Cfg.Quiz.MaxCount {
		count = s.Cfg.Quiz.MaxCount
	}

	questions, err := s.Questions.RandomByCategory(categoryID, count)
	if err != nil {
		return nil, err
	}

	result := make([]QuizQuestion, 0, len(questions))
	for _, q := range questions {
		qq := QuizQuestion{
			ID:         q.ID,
			Content:    q.Content,
			Difficulty: q.Difficulty,
			Choices:    make([]QuizChoice, 0, len(q.Choices)),
		}
		for _, c := range q.Choices {
			qq.Choices = append(qq.Choices, QuizChoice{ID: c.ID, Content: c.Content})
		}
		result = append(result, qq)
	}
	return result, nil
}

// Submit grades the pairs in input order and records the attempt. Every
// referenced question and choice is validated, including that the choice
// belongs to the stated question, before anything is written; the attempt,
// its answer rows and the player's score increment then land in a single
// transaction.
func (s *QuizService) Submit(playerID uint, answers []AnswerReq) (*SubmitResult, error) {
	if len(answers) == 0 {
		return nil, util.ErrEmptySubmission
	}

	questionIDs := make([]uint, 0, len(answers))
	choiceIDs := make([]uint, 0, len(answers))
	for _, a := range answers {
		questionIDs = append(questionIDs, a.QuestionID)
		choiceIDs = append(choiceIDs, a.ChoiceID)
	}

	existing, err := s.Questions.ExistingIDs(questionIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range questionIDs {
		if !existing[id] {
			return nil, util.ErrQuestionNotFound
		}
	}

	choices, err := s.Questions.ChoicesByIDs(choiceIDs)
	if err != nil {
		return nil, err
	}
	choiceByID := make(map[uint]model.Choice, len(choices))
	for _, c := range choices {
		choiceByID[c.ID] = c
	}

	score := 0
	rows := make([]model.Answer, 0, len(answers))
	for _, a := range answers {
		choice, ok := choiceByID[a.ChoiceID]
		if !ok {
			return nil, util.ErrChoiceNotFound
		}
		if choice.QuestionID != a.QuestionID {
			return nil, util.ErrChoiceMismatch
		}
		if choice.IsCorrect {
			score++
		}
		rows = append(rows, model.Answer{
			QuestionID: a.QuestionID,
			ChoiceID:   a.ChoiceID,
			IsCorrect:  choice.IsCorrect,
		})
	}

	now := time.Now()
	quiz := &model.Quiz{
		PlayerID:  playerID,
		Score:     score,
		StartedAt: now,
		EndedAt:   now,
	}
	if err := s.Quizzes.CreateWithAnswers(quiz, rows); err != nil {
		return nil, err
	}

	return &SubmitResult{QuizID: quiz.ID, Score: score}, nil
}

// History lists the caller's own attempts. Attempts of other players are
// never reachable through any exposed operation.
func (s *QuizService) History(playerID uint) ([]model.Quiz, error) {
	return s.Quizzes.FindByPlayer(playerID)
}
