package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdmin_BeforeSave_HashesPassword(t *testing.T) {
	// Arrange
	admin := &Admin{Username: "admin", Password: "plain-password"}

	// Act
	require.NoError(t, admin.BeforeSave(nil))

	// Assert
	assert.NotEqual(t, "plain-password", admin.Password, "Пароль не хранится открытым текстом")
	assert.True(t, strings.HasPrefix(admin.Password, "$2"), "Сохраняется bcrypt-хеш")
	assert.True(t, admin.CheckPassword("plain-password"))
	assert.False(t, admin.CheckPassword("other-password"))
}

func TestAdmin_BeforeSave_DoesNotRehash(t *testing.T) {
	// Тест: повторное сохранение не хеширует хеш
	admin := &Admin{Username: "admin", Password: "plain-password"}
	require.NoError(t, admin.BeforeSave(nil))
	firstHash := admin.Password

	require.NoError(t, admin.BeforeSave(nil))

	assert.Equal(t, firstHash, admin.Password, "Готовый bcrypt-хеш не перехешируется")
	assert.True(t, admin.CheckPassword("plain-password"))
}
