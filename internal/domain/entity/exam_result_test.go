package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewExamResult_PassAtThreshold(t *testing.T) {
	// 14/20 = ровно 70% — порог включительный
	result := NewExamResult(1, 14)

	assert.Equal(t, 14, result.Score)
	assert.Equal(t, 70.0, result.Percentage)
	assert.True(t, result.Passed)
}

func TestNewExamResult_FailBelowThreshold(t *testing.T) {
	// 13/20 = 65%
	result := NewExamResult(1, 13)

	assert.Equal(t, 65.0, result.Percentage)
	assert.False(t, result.Passed)
}

func TestNewExamResult_PerfectScore(t *testing.T) {
	result := NewExamResult(1, 20)

	assert.Equal(t, 100.0, result.Percentage)
	assert.True(t, result.Passed)
}

func TestNewExamResult_ZeroScore(t *testing.T) {
	result := NewExamResult(1, 0)

	assert.Equal(t, 0.0, result.Percentage)
	assert.False(t, result.Passed)
}

func TestNewExamResult_FixedDenominator(t *testing.T) {
	// Знаменатель не зависит от числа фактически отвеченных вопросов:
	// 10 баллов — это всегда 50%
	result := NewExamResult(1, 10)

	assert.Equal(t, 50.0, result.Percentage)
	assert.False(t, result.Passed)
}
