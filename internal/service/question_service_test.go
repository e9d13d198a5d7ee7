package service_test

import (
	"testing"

	"quiz_arena_backend/internal/model"
	"quiz_arena_backend/internal/service"
	"quiz_arena_backend/internal/util"
)

func boolPtr(b bool) *bool { return &b }

func newQuestionService(t *testing.T) (*service.QuestionService, *model.Category) {
	t.Helper()
	categories := newFakeCategoryRepo()
	category := &model.Category{Name: "Science"}
	if err := categories.Create(category); err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return service.NewQuestionService(newFakeQuestionRepo(), categories), category
}

func validCreateReq(categoryID uint) service.CreateQuestionReq {
	return service.CreateQuestionReq{
		Content:    "Which planet is known as the Red Planet?",
		CategoryID: categoryID,
		Difficulty: "easy",
		Choices: []service.ChoiceReq{
			{Content: "Mars", IsCorrect: boolPtr(true)},
			{Content: "Venus", IsCorrect: boolPtr(false)},
		},
	}
}

func TestQuestionCreateWithChoices(t *testing.T) {
	svc, category := newQuestionService(t)

	question, err := svc.Create(7, validCreateReq(category.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if question.ID == 0 {
		t.Fatalf("expected a persisted question id")
	}
	if question.CreatorID != 7 {
		t.Fatalf("expected creator 7, got %d", question.CreatorID)
	}
	if len(question.Choices) != 2 {
		t.Fatalf("expected 2 choices, got %d", len(question.Choices))
	}
	for _, c := range question.Choices {
		if c.QuestionID != question.ID {
			t.Fatalf("choice not attached to question: %+v", c)
		}
	}
}

func TestQuestionCreateUnknownCategory(t *testing.T) {
	svc, _ := newQuestionService(t)

	if _, err := svc.Create(7, validCreateReq(999)); err != util.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuestionOwnership(t *testing.T) {
	svc, category := newQuestionService(t)

	question, err := svc.Create(7, validCreateReq(category.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Another creator reaching an existing question is a permission failure,
	// not a not-found.
	if _, err := svc.Get(8, question.ID); err != util.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if _, err := svc.Update(8, question.ID, service.UpdateQuestionReq{}); err != util.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
	if err := svc.Delete(8, question.ID); err != util.ErrPermissionDenied {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}

	if _, err := svc.Get(7, question.ID); err != nil {
		t.Fatalf("owner get failed: %v", err)
	}
}

func TestQuestionNotFound(t *testing.T) {
	svc, _ := newQuestionService(t)

	if _, err := svc.Get(7, 42); err != util.ErrQuestionNotFound {
		t.Fatalf("expected ErrQuestionNotFound, got %v", err)
	}
}

func TestQuestionUpdateFields(t *testing.T) {
	svc, category := newQuestionService(t)

	question, err := svc.Create(7, validCreateReq(category.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	content := "Updated prompt"
	difficulty := "hard"
	updated, err := svc.Update(7, question.ID, service.UpdateQuestionReq{
		Content:    &content,
		Difficulty: &difficulty,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Content != "Updated prompt" || updated.Difficulty != model.Hard {
		t.Fatalf("fields not applied: %+v", updated)
	}
	// Choices are creation-only.
	if len(updated.Choices) != 2 {
		t.Fatalf("update must not touch choices, got %d", len(updated.Choices))
	}
}

func TestQuestionUpdateUnknownCategory(t *testing.T) {
	svc, category := newQuestionService(t)

	question, err := svc.Create(7, validCreateReq(category.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	badCategory := uint(999)
	if _, err := svc.Update(7, question.ID, service.UpdateQuestionReq{CategoryID: &badCategory}); err != util.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestQuestionListByCreator(t *testing.T) {
	svc, category := newQuestionService(t)

	if _, err := svc.Create(7, validCreateReq(category.ID)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(8, validCreateReq(category.ID)); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	mine, err := svc.ListByCreator(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(mine) != 1 || mine[0].CreatorID != 7 {
		t.Fatalf("expected only creator 7's questions, got %+v", mine)
	}
}

func TestQuestionDelete(t *testing.T) {
	svc, category := newQuestionService(t)

	question, err := svc.Create(7, validCreateReq(category.ID))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.Delete(7, question.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.Get(7, question.ID); err != util.ErrQuestionNotFound {
		t.Fatalf("expected ErrQuestionNotFound after delete, got %v", err)
	}
}
