package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestCatalogInvariants(t *testing.T) {
	lessons := Lessons()
	require.NotEmpty(t, lessons)

	seen := map[string]bool{}
	for _, l := range lessons {
		assert.False(t, seen[l.Title], "duplicate lesson title %q", l.Title)
		seen[l.Title] = true

		assert.NotEmpty(t, l.Definition)
		assert.NotEmpty(t, l.ModelFile)
		assert.NotEmpty(t, l.Questions)

		ids := map[string]bool{}
		for _, q := range l.Questions {
			assert.False(t, ids[q.ID], "lesson %q: duplicate question id %q", l.Title, q.ID)
			ids[q.ID] = true

			assert.Contains(t, q.Options, q.CorrectAnswer,
				"lesson %q question %q: correct answer must be an option", l.Title, q.ID)
		}
	}
}

func TestFind(t *testing.T) {
	lesson, ok := Find("Lungs")
	require.True(t, ok)
	assert.Equal(t, "lungs.glb", lesson.ModelFile)

	_, ok = Find("Pancreas")
	assert.False(t, ok)

	// Titles are exact keys; casing matters.
	_, ok = Find("lungs")
	assert.False(t, ok)
}

func TestNext(t *testing.T) {
	next, ok := Next("Human Brain")
	require.True(t, ok)
	assert.Equal(t, "Lungs", next.Title)

	last := Lessons()[len(Lessons())-1]
	_, ok = Next(last.Title)
	assert.False(t, ok)
}

func TestHasModelFile(t *testing.T) {
	assert.True(t, HasModelFile("amoeba.glb"))
	assert.False(t, HasModelFile("../../etc/passwd"))
}
