package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	r := Build("greeting", []string{
		"You are a helpful assistant. Greet warmly.",
		"You are a helpful assistant. Greet briefly.",
	})

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "greeting", r.Name)
	assert.Equal(t, 2, r.InputCount)
	assert.Contains(t, r.Shared, "helpful assistant")
	assert.Greater(t, r.CommonWordCount, 0)
	assert.Greater(t, r.Similarity, 0.8, "near-identical variants should score high")
	assert.LessOrEqual(t, r.Similarity, 1.0)
	assert.False(t, r.CreatedAt.IsZero())
}

func TestBuild_UniqueIDs(t *testing.T) {
	a := Build("x", []string{"one text here", "another text here"})
	b := Build("x", []string{"one text here", "another text here"})
	assert.NotEqual(t, a.ID, b.ID)
}

func TestBuild_NothingUsable(t *testing.T) {
	r := Build("empty", []string{"", "ab"})
	assert.Equal(t, 0, r.InputCount)
	assert.Empty(t, r.Shared)
	assert.Zero(t, r.Similarity)
}

func TestBuild_DissimilarInputs(t *testing.T) {
	r := Build("none", []string{"apple", "zebra", "music"})
	assert.Empty(t, r.Shared)
	assert.Equal(t, 0, r.CommonWordCount)
	assert.Less(t, r.Similarity, 0.8)
}

func TestMeanPairwiseSimilarity_Degenerate(t *testing.T) {
	assert.Equal(t, 0.0, meanPairwiseSimilarity(nil))
	assert.Equal(t, 1.0, meanPairwiseSimilarity([]string{"solo"}))
	assert.Equal(t, 1.0, meanPairwiseSimilarity([]string{"same", "same"}))
}
