package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAccessCode_MatchesEmployee(t *testing.T) {
	code := &AccessCode{
		Code:           "SAFE-AAAA1111",
		EmployeeNumber: "EMP-100",
	}

	assert.True(t, code.MatchesEmployee("EMP-100"))
	assert.False(t, code.MatchesEmployee("EMP-200"), "Код выдан под другой табельный номер")
}
