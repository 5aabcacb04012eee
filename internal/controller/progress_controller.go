package controller

import (
	"biotutor_backend/internal/service"
	"biotutor_backend/internal/util"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// GetProgress godoc
// @Summary Completed lessons of the current user
// @Tags progress
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string][]string
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /lessons/progress [get]
func (c *ProgressController) GetProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	titles, err := c.ProgressService.List(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"completedLessonTitles": titles})
}

type saveProgressRequest struct {
	LessonTitle string `json:"lessonTitle"`
}

// SaveProgress godoc
// @Summary Mark a lesson as completed
// @Description Recording an already-completed lesson is not an error; it returns 200 instead of 201.
// @Tags progress
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body saveProgressRequest true "lesson title"
// @Success 200 {object} map[string]string "already completed"
// @Success 201 {object} map[string]string "newly recorded"
// @Failure 400 {object} util.Response
// @Failure 401 {object} util.Response
// @Failure 500 {object} util.Response
// @Router /lessons/progress [post]
func (c *ProgressController) SaveProgress(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req saveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Lesson title is required")
		return
	}

	outcome, err := c.ProgressService.Record(claims.UserID, req.LessonTitle)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrLessonTitleRequired), errors.Is(err, util.ErrLessonUnknown):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	if outcome == service.AlreadyCompleted {
		ctx.JSON(http.StatusOK, gin.H{"message": "Lesson already marked as complete"})
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{"message": "Progress saved successfully"})
}
