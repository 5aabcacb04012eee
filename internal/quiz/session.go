// Package quiz implements the per-lesson quiz session state machine and
// answer scoring. Sessions are in-memory and single-caller; persistence of a
// passed quiz is the progress ledger's job.
package quiz

import (
	"errors"

	"biotutor_backend/internal/catalog"
)

type State int

const (
	NotStarted State = iota
	InProgress
	Attempted
)

// CompletionStatus tracks reconciliation of a passed quiz with the progress
// ledger: the completion is marked Pending while the save is in flight and
// moves to Confirmed or Failed depending on the outcome.
type CompletionStatus int

const (
	CompletionNone CompletionStatus = iota
	CompletionPending
	CompletionConfirmed
	CompletionFailed
)

var (
	ErrAlreadyCompleted = errors.New("lesson already completed")
	ErrNotStarted       = errors.New("quiz has not been started")
	ErrUnanswered       = errors.New("all questions must be answered before submitting")
	ErrUnknownQuestion  = errors.New("unknown question")
	ErrLocked           = errors.New("quiz is locked after completion")
	ErrNotEligible      = errors.New("lesson completion requires a passed quiz")
)

type Session struct {
	lesson     catalog.Lesson
	state      State
	answers    map[string]string
	passed     bool
	completed  bool
	completion CompletionStatus
}

// NewSession creates a session for one lesson. alreadyCompleted reflects the
// progress ledger; a completed lesson's quiz is read-only from the start.
func NewSession(lesson catalog.Lesson, alreadyCompleted bool) *Session {
	return &Session{
		lesson:    lesson,
		answers:   make(map[string]string),
		completed: alreadyCompleted,
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) CompletionStatus() CompletionStatus { return s.completion }

// Start moves NotStarted -> InProgress. Starting is refused once the lesson
// is recorded complete.
func (s *Session) Start() error {
	if s.completed {
		return ErrAlreadyCompleted
	}
	if s.state == NotStarted {
		s.state = InProgress
	}
	return nil
}

// Answer records an answer. Changing any answer after a failed attempt
// clears the verdict and returns the session to InProgress.
func (s *Session) Answer(questionID, answer string) error {
	if s.completed {
		return ErrLocked
	}
	if s.state == NotStarted {
		return ErrNotStarted
	}
	if !s.hasQuestion(questionID) {
		return ErrUnknownQuestion
	}
	s.answers[questionID] = answer
	if s.state == Attempted {
		s.state = InProgress
		s.passed = false
	}
	return nil
}

// Submit scores the answers. An incomplete answer set is rejected and the
// session stays InProgress.
func (s *Session) Submit() (bool, error) {
	if s.completed {
		return false, ErrLocked
	}
	if s.state == NotStarted {
		return false, ErrNotStarted
	}
	_, passed, err := Score(s.lesson, s.answers)
	if err != nil {
		return false, err
	}
	s.state = Attempted
	s.passed = passed
	return passed, nil
}

// Passed returns the verdict of the last attempt and whether an attempt
// has been scored at all.
func (s *Session) Passed() (passed, attempted bool) {
	return s.passed, s.state == Attempted
}

// CanComplete reports whether the lesson may be recorded as complete:
// already in the ledger, or passed this session.
func (s *Session) CanComplete() bool {
	return s.completed || (s.state == Attempted && s.passed)
}

// BeginCompletion marks the ledger save as in flight.
func (s *Session) BeginCompletion() error {
	if !s.CanComplete() {
		return ErrNotEligible
	}
	if !s.completed {
		s.completion = CompletionPending
	}
	return nil
}

// ConfirmCompletion records that the ledger accepted the completion. The
// quiz becomes permanently read-only.
func (s *Session) ConfirmCompletion() {
	s.completed = true
	s.completion = CompletionConfirmed
}

// FailCompletion records that the ledger save failed. The verdict is kept
// so the caller can retry deliberately.
func (s *Session) FailCompletion() {
	if s.completion == CompletionPending {
		s.completion = CompletionFailed
	}
}

func (s *Session) Completed() bool { return s.completed }

func (s *Session) hasQuestion(id string) bool {
	for _, q := range s.lesson.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Score checks answers against the lesson's questions by exact string
// equality. Every question must be answered; passing requires all correct.
func Score(lesson catalog.Lesson, answers map[string]string) (correct int, passed bool, err error) {
	for _, q := range lesson.Questions {
		answer, ok := answers[q.ID]
		if !ok || answer == "" {
			return 0, false, ErrUnanswered
		}
		if answer == q.CorrectAnswer {
			correct++
		}
	}
	return correct, correct == len(lesson.Questions), nil
}
