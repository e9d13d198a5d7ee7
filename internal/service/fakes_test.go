package service_test

import (
	"sort"

	"quiz_arena_backend/internal/model"

	"gorm.io/gorm"
)

// In-memory repository fakes. They return gorm.ErrRecordNotFound for misses
// so the services exercise the same error mapping as against MySQL.

type fakeUserRepo struct {
	users  []*model.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(user *model.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users = append(r.users, user)
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*model.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Update(user *model.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindTopPlayers(limit int) ([]model.User, error) {
	players := make([]model.User, 0)
	for _, u := range r.users {
		if u.Role == model.Player {
			players = append(players, *u)
		}
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Score > players[j].Score
	})
	if len(players) > limit {
		players = players[:limit]
	}
	return players, nil
}

type fakeCategoryRepo struct {
	categories []*model.Category
	nextID     uint
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1}
}

func (r *fakeCategoryRepo) Create(category *model.Category) error {
	category.ID = r.nextID
	r.nextID++
	r.categories = append(r.categories, category)
	return nil
}

func (r *fakeCategoryRepo) FindByID(id uint) (*model.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) FindAll() ([]model.Category, error) {
	out := make([]model.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(category *model.Category) error {
	for i, c := range r.categories {
		if c.ID == category.ID {
			r.categories[i] = category
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) Delete(id uint) error {
	for i, c := range r.categories {
		if c.ID == id {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeCategoryRepo) NameExists(name string, excludeID uint) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

type fakeQuestionRepo struct {
	questions    []*model.Question
	nextID       uint
	nextChoiceID uint
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{nextID: 1, nextChoiceID: 1}
}

func (r *fakeQuestionRepo) CreateWithChoices(question *model.Question, choices []model.Choice) error {
	question.ID = r.nextID
	r.nextID++
	for i := range choices {
		choices[i].ID = r.nextChoiceID
		r.nextChoiceID++
		choices[i].QuestionID = question.ID
	}
	question.Choices = choices
	r.questions = append(r.questions, question)
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	for _, q := range r.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) FindByCreator(creatorID uint) ([]model.Question, error) {
	out := make([]model.Question, 0)
	for _, q := range r.questions {
		if q.CreatorID == creatorID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Update(question *model.Question) error {
	for i, q := range r.questions {
		if q.ID == question.ID {
			r.questions[i] = question
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) Delete(id uint) error {
	for i, q := range r.questions {
		if q.ID == id {
			r.questions = append(r.questions[:i], r.questions[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *fakeQuestionRepo) RandomByCategory(categoryID uint, limit int) ([]model.Question, error) {
	out := make([]model.Question, 0)
	for _, q := range r.questions {
		if q.CategoryID == categoryID {
			out = append(out, *q)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) ExistingIDs(ids []uint) (map[uint]bool, error) {
	existing := make(map[uint]bool, len(ids))
	for _, id := range ids {
		for _, q := range r.questions {
			if q.ID == id {
				existing[id] = true
				break
			}
		}
	}
	return existing, nil
}

func (r *fakeQuestionRepo) ChoicesByIDs(ids []uint) ([]model.Choice, error) {
	want := make(map[uint]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	out := make([]model.Choice, 0, len(ids))
	for _, q := range r.questions {
		for _, c := range q.Choices {
			if want[c.ID] {
				out = append(out, c)
			}
		}
	}
	return out, nil
}

// fakeQuizRepo mimics the transactional side effect of the real repository:
// a stored attempt with a positive score bumps the player's running total.
type fakeQuizRepo struct {
	quizzes []*model.Quiz
	nextID  uint
	users   *fakeUserRepo
}

func newFakeQuizRepo(users *fakeUserRepo) *fakeQuizRepo {
	return &fakeQuizRepo{nextID: 1, users: users}
}

func (r *fakeQuizRepo) CreateWithAnswers(quiz *model.Quiz, answers []model.Answer) error {
	quiz.ID = r.nextID
	r.nextID++
	for i := range answers {
		answers[i].QuizID = quiz.ID
	}
	quiz.Answers = answers
	r.quizzes = append(r.quizzes, quiz)

	if quiz.Score > 0 && r.users != nil {
		if player, err := r.users.FindByID(quiz.PlayerID); err == nil {
			player.Score += quiz.Score
		}
	}
	return nil
}

func (r *fakeQuizRepo) FindByPlayer(playerID uint) ([]model.Quiz, error) {
	out := make([]model.Quiz, 0)
	for i := len(r.quizzes) - 1; i >= 0; i-- {
		if r.quizzes[i].PlayerID == playerID {
			out = append(out, *r.quizzes[i])
		}
	}
	return out, nil
}
