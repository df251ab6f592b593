package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestGinContext создает *gin.Context для тестов с JSON body
func newTestGinContext(method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()

	var req *http.Request
	if body != nil {
		bodyBytes, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, path, bytes.NewReader(bodyBytes))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, path, nil)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// parseJSONResponse парсит JSON ответ из *httptest.ResponseRecorder
func parseJSONResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Response body should be valid JSON: %s", w.Body.String())
	return resp
}

// ============================================================================
// Request validation tests — не требуют реальных сервисов,
// handler возвращает 400 до их вызова
// ============================================================================

func TestRegister_ValidationErrors(t *testing.T) {
	handler := &WorkerHandler{} // nil сервисы — OK для validation tests

	tests := []struct {
		name       string
		body       interface{}
		wantStatus int
	}{
		{
			name:       "empty body",
			body:       nil,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing access_code",
			body:       map[string]string{"full_name": "Иванов Иван", "employee_number": "EMP-100"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing full_name",
			body:       map[string]string{"access_code": "SAFE-AAAA1111", "employee_number": "EMP-100"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing employee_number",
			body:       map[string]string{"access_code": "SAFE-AAAA1111", "full_name": "Иванов Иван"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "full_name too short",
			body:       map[string]string{"access_code": "SAFE-AAAA1111", "full_name": "И", "employee_number": "EMP-100"},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/workers/register", tt.body)
			handler.Register(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
		})
	}
}

func TestRegisterRequest_BindsClientPayload(t *testing.T) {
	// Форма регистрации шлет поле access_code
	c, _ := newTestGinContext("POST", "/api/workers/register", map[string]string{
		"full_name":       "Иванов Иван",
		"employee_number": "EMP-100",
		"access_code":     "SAFE-AAAA1111",
	})

	var req RegisterRequest
	require.NoError(t, c.ShouldBindJSON(&req))
	assert.Equal(t, "SAFE-AAAA1111", req.AccessCode)
	assert.Equal(t, "EMP-100", req.EmployeeNumber)
}

func TestVerifyCode_MissingCode(t *testing.T) {
	handler := &WorkerHandler{}

	c, w := newTestGinContext("POST", "/api/verify-code", map[string]string{})
	handler.VerifyCode(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := parseJSONResponse(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Code is required", resp["message"])
}

func TestSubmitExamRequest_BindsNumericAnswers(t *testing.T) {
	// Клиенты шлют ответы числами 0/1 — binding их принимает
	body := map[string]interface{}{
		"worker_id": 1,
		"answers": []map[string]interface{}{
			{"question_id": 1, "answer": 1},
			{"question_id": 2, "answer": 0},
			{"question_id": 3, "answer": true},
		},
	}
	c, _ := newTestGinContext("POST", "/api/exam/submit", body)

	var req SubmitExamRequest
	require.NoError(t, c.ShouldBindJSON(&req))
	require.Len(t, req.Answers, 3)
	assert.True(t, bool(req.Answers[0].Answer))
	assert.False(t, bool(req.Answers[1].Answer))
	assert.True(t, bool(req.Answers[2].Answer))
}

func TestSubmitExam_ValidationErrors(t *testing.T) {
	handler := &ExamHandler{}

	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "empty body",
			body: nil,
		},
		{
			name: "missing worker_id",
			body: map[string]interface{}{"answers": []map[string]interface{}{{"question_id": 1, "answer": true}}},
		},
		{
			name: "empty answers",
			body: map[string]interface{}{"worker_id": 1, "answers": []map[string]interface{}{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestGinContext("POST", "/api/exam/submit", tt.body)
			handler.SubmitExam(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			resp := parseJSONResponse(t, w)
			assert.Equal(t, false, resp["success"])
		})
	}
}
