package repository

import (
	"biotutor_backend/internal/model"
	"errors"

	"gorm.io/gorm"
)

// InsertResult is the typed outcome of a completion insert. A uniqueness
// violation on (user_id, lesson_title) is not an error; it means the
// completion already exists.
type InsertResult int

const (
	Inserted InsertResult = iota
	AlreadyExists
)

type CompletedLessonRepository struct {
	DB *gorm.DB
}

func NewCompletedLessonRepository(db *gorm.DB) *CompletedLessonRepository {
	return &CompletedLessonRepository{DB: db}
}

// ListTitles returns the lesson titles the user has completed.
func (r *CompletedLessonRepository) ListTitles(userID string) ([]string, error) {
	titles := []string{}
	err := r.DB.Model(&model.CompletedLesson{}).
		Where("user_id = ?", userID).
		Pluck("lesson_title", &titles).Error
	if err != nil {
		return nil, err
	}
	return titles, nil
}

// Insert records a completion. The unique index arbitrates concurrent
// inserts; losing that race reports AlreadyExists, not an error.
func (r *CompletedLessonRepository) Insert(userID, lessonTitle string) (InsertResult, error) {
	record := &model.CompletedLesson{
		UserID:      userID,
		LessonTitle: lessonTitle,
	}
	if err := r.DB.Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return AlreadyExists, nil
		}
		return 0, err
	}
	return Inserted, nil
}
