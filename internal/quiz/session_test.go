package quiz

import (
	"testing"

	"biotutor_backend/internal/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLesson(t *testing.T) catalog.Lesson {
	t.Helper()
	lesson, ok := catalog.Find("Amoeba")
	require.True(t, ok)
	require.Len(t, lesson.Questions, 3)
	return lesson
}

func answerAll(t *testing.T, s *Session, lesson catalog.Lesson, wrong int) {
	t.Helper()
	for i, q := range lesson.Questions {
		answer := q.CorrectAnswer
		if i == wrong {
			for _, opt := range q.Options {
				if opt != q.CorrectAnswer {
					answer = opt
					break
				}
			}
		}
		require.NoError(t, s.Answer(q.ID, answer))
	}
}

func TestStartBlockedWhenAlreadyCompleted(t *testing.T) {
	s := NewSession(testLesson(t), true)
	assert.ErrorIs(t, s.Start(), ErrAlreadyCompleted)
	assert.True(t, s.CanComplete())
}

func TestSubmitRequiresStart(t *testing.T) {
	s := NewSession(testLesson(t), false)
	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSubmitRejectsUnansweredQuestions(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())
	require.NoError(t, s.Answer(lesson.Questions[0].ID, lesson.Questions[0].CorrectAnswer))

	_, err := s.Submit()
	assert.ErrorIs(t, err, ErrUnanswered)
	// No state transition on a rejected submit.
	assert.Equal(t, InProgress, s.State())
}

func TestSubmitAllCorrectPasses(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())
	answerAll(t, s, lesson, -1)

	passed, err := s.Submit()
	require.NoError(t, err)
	assert.True(t, passed)
	assert.Equal(t, Attempted, s.State())
	assert.True(t, s.CanComplete())
}

func TestSubmitOneWrongFails(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())
	answerAll(t, s, lesson, 1)

	passed, err := s.Submit()
	require.NoError(t, err)
	assert.False(t, passed)
	assert.False(t, s.CanComplete())
}

func TestReanswerClearsFailedVerdict(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())
	answerAll(t, s, lesson, 0)

	passed, err := s.Submit()
	require.NoError(t, err)
	require.False(t, passed)

	// Correcting the answer returns the session to InProgress.
	require.NoError(t, s.Answer(lesson.Questions[0].ID, lesson.Questions[0].CorrectAnswer))
	assert.Equal(t, InProgress, s.State())
	_, attempted := s.Passed()
	assert.False(t, attempted)

	passed, err = s.Submit()
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestAnswerUnknownQuestion(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Answer("nope", "x"), ErrUnknownQuestion)
}

func TestCompletionLifecycle(t *testing.T) {
	lesson := testLesson(t)
	s := NewSession(lesson, false)
	require.NoError(t, s.Start())

	// Not eligible before passing.
	assert.ErrorIs(t, s.BeginCompletion(), ErrNotEligible)

	answerAll(t, s, lesson, -1)
	passed, err := s.Submit()
	require.NoError(t, err)
	require.True(t, passed)

	require.NoError(t, s.BeginCompletion())
	assert.Equal(t, CompletionPending, s.CompletionStatus())

	s.FailCompletion()
	assert.Equal(t, CompletionFailed, s.CompletionStatus())
	assert.False(t, s.Completed())

	// A deliberate retry can still confirm.
	require.NoError(t, s.BeginCompletion())
	s.ConfirmCompletion()
	assert.Equal(t, CompletionConfirmed, s.CompletionStatus())
	assert.True(t, s.Completed())

	// Confirmed completion locks the quiz.
	err = s.Answer(lesson.Questions[0].ID, "anything")
	assert.ErrorIs(t, err, ErrLocked)
	_, err = s.Submit()
	assert.ErrorIs(t, err, ErrLocked)
}

func TestScore(t *testing.T) {
	lesson := testLesson(t)

	answers := map[string]string{}
	for _, q := range lesson.Questions {
		answers[q.ID] = q.CorrectAnswer
	}

	correct, passed, err := Score(lesson, answers)
	require.NoError(t, err)
	assert.Equal(t, len(lesson.Questions), correct)
	assert.True(t, passed)

	answers[lesson.Questions[2].ID] = ""
	_, _, err = Score(lesson, answers)
	assert.ErrorIs(t, err, ErrUnanswered)
}
