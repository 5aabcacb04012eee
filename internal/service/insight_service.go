package service

import (
	"biotutor_backend/internal/catalog"
	"biotutor_backend/pkg/logger"
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const insightTTL = 24 * time.Hour

// InsightService generates a short AI insight for a lesson. The catalog is
// static, so insights are cached in redis per lesson title.
type InsightService struct {
	AI    *AIService
	Redis *redis.Client
}

func NewInsightService(ai *AIService, rdb *redis.Client) *InsightService {
	return &InsightService{
		AI:    ai,
		Redis: rdb,
	}
}

func insightKey(title string) string {
	return "lesson:insight:" + title
}

// LessonInsight returns the insight text and whether it was served from
// cache.
func (s *InsightService) LessonInsight(ctx context.Context, lesson catalog.Lesson) (string, bool, error) {
	key := insightKey(lesson.Title)

	if val, err := s.Redis.Get(ctx, key).Result(); err == nil {
		return val, true, nil
	}

	messages := []ChatMessage{
		{
			Role:    RoleSystem,
			Content: "You are an AI biology tutor. Answer concisely and factually for a student audience.",
		},
		{
			Role:    RoleUser,
			Content: fmt.Sprintf("Give me one short, interesting insight about the %s that goes beyond this definition: %s", lesson.Title, lesson.Definition),
		},
	}

	text, err := s.AI.Chat(ctx, messages)
	if err != nil {
		return "", false, err
	}

	if err := s.Redis.Set(ctx, key, text, insightTTL).Err(); err != nil {
		logger.Log.Warn("failed to cache lesson insight", zap.String("lesson", lesson.Title), zap.Error(err))
	}

	return text, false, nil
}
