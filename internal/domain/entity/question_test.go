package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_IsCorrect_KeyTrue(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		QuestionText:  "Перед началом работ необходимо надеть каску?",
		IsCorrectTrue: true,
	}

	// Act & Assert
	assert.True(t, question.IsCorrect(true), "Ответ «верно» совпадает с ключом")
	assert.False(t, question.IsCorrect(false), "Ответ «неверно» не совпадает с ключом")
}

func TestQuestion_IsCorrect_KeyFalse(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            2,
		QuestionText:  "Можно курить рядом с горючими материалами?",
		IsCorrectTrue: false,
	}

	// Act & Assert
	assert.True(t, question.IsCorrect(false))
	assert.False(t, question.IsCorrect(true))
}

func TestQuestion_AnswerKeyHiddenFromJSON(t *testing.T) {
	// Тест: ключ ответа не должен утекать в выдачу экзамена
	question := &Question{
		ID:            1,
		QuestionText:  "Вопрос",
		IsCorrectTrue: true,
	}

	data, err := json.Marshal(question)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NotContains(t, decoded, "is_correct_true", "Ключ ответа не сериализуется")
	assert.Contains(t, decoded, "question_text")
}
