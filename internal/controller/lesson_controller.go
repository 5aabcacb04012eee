package controller

import (
	"biotutor_backend/internal/catalog"
	"biotutor_backend/internal/quiz"
	"biotutor_backend/internal/service"
	"biotutor_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	InsightService *service.InsightService
	StorageService *service.StorageService
}

func NewLessonController(insightService *service.InsightService, storageService *service.StorageService) *LessonController {
	return &LessonController{
		InsightService: insightService,
		StorageService: storageService,
	}
}

// ListLessons godoc
// @Summary Lesson catalog
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]catalog.Lesson
// @Router /lessons [get]
func (c *LessonController) ListLessons(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"lessons": catalog.Lessons()})
}

// GetLesson godoc
// @Summary One lesson with its quiz questions
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param title path string true "lesson title"
// @Success 200 {object} catalog.Lesson
// @Failure 404 {object} util.Response
// @Router /lessons/{title} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lesson, ok := catalog.Find(ctx.Param("title"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	ctx.JSON(http.StatusOK, lesson)
}

type submitQuizRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// SubmitQuiz godoc
// @Summary Score a quiz submission
// @Description All questions must be answered; passing requires every answer correct.
// @Tags lessons
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param title path string true "lesson title"
// @Param body body submitQuizRequest true "answers keyed by question id"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} util.Response "unanswered questions"
// @Failure 404 {object} util.Response
// @Router /lessons/{title}/quiz [post]
func (c *LessonController) SubmitQuiz(ctx *gin.Context) {
	lesson, ok := catalog.Find(ctx.Param("title"))
	if !ok {
		util.NotFound(ctx)
		return
	}

	var req submitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Answers are required")
		return
	}

	correct, passed, err := quiz.Score(lesson, req.Answers)
	if err != nil {
		if errors.Is(err, quiz.ErrUnanswered) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"passed":  passed,
		"correct": correct,
		"total":   len(lesson.Questions),
	})
}

// GetInsight godoc
// @Summary AI-generated insight for a lesson
// @Tags lessons
// @Produce json
// @Security ApiKeyAuth
// @Param title path string true "lesson title"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /lessons/{title}/insight [get]
func (c *LessonController) GetInsight(ctx *gin.Context) {
	lesson, ok := catalog.Find(ctx.Param("title"))
	if !ok {
		util.NotFound(ctx)
		return
	}

	insight, cached, err := c.InsightService.LessonInsight(ctx.Request.Context(), lesson)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"insight": insight, "cached": cached})
}

// GetModel godoc
// @Summary Serve a lesson's 3D model asset
// @Tags lessons
// @Produce octet-stream
// @Param file path string true "model file name"
// @Success 200 {file} binary
// @Failure 404 {object} util.Response
// @Router /models/{file} [get]
func (c *LessonController) GetModel(ctx *gin.Context) {
	file := ctx.Param("file")
	if !catalog.HasModelFile(file) {
		util.NotFound(ctx)
		return
	}

	if c.StorageService.IsLocal() {
		ctx.File(c.StorageService.LocalPath(file))
		return
	}

	url, err := c.StorageService.PresignedURL(ctx.Request.Context(), file)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, url)
}
