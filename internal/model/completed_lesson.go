package model

import "time"

// CompletedLesson records that a user finished a lesson.
// swagger:model CompletedLesson
type CompletedLesson struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      string `gorm:"size:36;index:idx_user_lesson,unique;not null"`
	LessonTitle string `gorm:"size:191;index:idx_user_lesson,unique;not null"`
	CreatedAt   time.Time
}

func (CompletedLesson) TableName() string {
	return "completed_lessons"
}
