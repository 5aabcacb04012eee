package service

import (
	"biotutor_backend/internal/catalog"
	"biotutor_backend/internal/repository"
	"biotutor_backend/internal/util"
	"strings"
)

// RecordOutcome distinguishes a fresh completion from an idempotent repeat.
type RecordOutcome int

const (
	RecordedNew RecordOutcome = iota
	AlreadyCompleted
)

type ProgressService struct {
	Completions *repository.CompletedLessonRepository
}

func NewProgressService(completions *repository.CompletedLessonRepository) *ProgressService {
	return &ProgressService{Completions: completions}
}

// List returns the caller's completed lesson titles. The service never
// reads another account's rows; userID comes from the session claims.
func (s *ProgressService) List(userID string) ([]string, error) {
	return s.Completions.ListTitles(userID)
}

// Record marks a lesson complete for the caller. Recording a lesson twice
// has the same observable effect as once.
func (s *ProgressService) Record(userID, lessonTitle string) (RecordOutcome, error) {
	title := strings.TrimSpace(lessonTitle)
	if title == "" {
		return 0, util.ErrLessonTitleRequired
	}
	if _, ok := catalog.Find(title); !ok {
		return 0, util.ErrLessonUnknown
	}

	result, err := s.Completions.Insert(userID, title)
	if err != nil {
		return 0, err
	}
	if result == repository.AlreadyExists {
		return AlreadyCompleted, nil
	}
	return RecordedNew, nil
}
