package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	database "github.com/sebuszqo/TriviaAPI/db"
	"github.com/sebuszqo/TriviaAPI/internal/config"
	"github.com/sebuszqo/TriviaAPI/internal/trivia/application"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	ctx := context.Background()

	dbService, err := database.Open(config.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbService.Close() })

	require.NoError(t, dbService.EnsureSchema(ctx))
	require.NoError(t, dbService.Seed(ctx))

	return newServerFromDB(dbService, application.NewSelectorWithSource(rand.NewPCG(11, 13)))
}

func do(t *testing.T, s *Server, method, path string, payload interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = &bytes.Buffer{}
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	res := w.Result()
	t.Cleanup(func() { res.Body.Close() })

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&decoded))
	return res, decoded
}

func allQuestionIDs(t *testing.T, s *Server) []int {
	t.Helper()
	var ids []int
	for page := 1; ; page++ {
		res, body := do(t, s, http.MethodGet, "/questions?page="+strconv.Itoa(page), nil)
		if res.StatusCode == http.StatusNotFound {
			return ids
		}
		for _, q := range body["questions"].([]interface{}) {
			ids = append(ids, int(q.(map[string]interface{})["id"].(float64)))
		}
	}
}

func TestGetCategories_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodGet, "/categories", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["success"])

	categories := body["categories"].(map[string]interface{})
	assert.Len(t, categories, 6)
	assert.Equal(t, "Science", categories["1"])
	assert.Equal(t, "Sports", categories["6"])
}

func TestGetQuestions_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodGet, "/questions", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["questions"], 10)
	assert.Equal(t, float64(17), body["totalQuestions"])
	assert.Len(t, body["categories"], 6)
	assert.Nil(t, body["currentCategory"])

	res, body = do(t, s, http.MethodGet, "/questions?page=2", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["questions"], 7)

	res, body = do(t, s, http.MethodGet, "/questions?page=1000", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "resource not found", body["message"])
}

func TestCreateThenDelete_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodPost, "/questions", map[string]interface{}{
		"question": "New Question Test", "answer": "New Answer Test", "difficulty": 3, "category": 3,
	})
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, float64(18), body["totalQuestions"])
	createdID := int(body["created"].(float64))
	assert.Contains(t, allQuestionIDs(t, s), createdID)

	res, body = do(t, s, http.MethodPost, "/questions", map[string]interface{}{
		"question": "", "answer": "", "difficulty": 3, "category": 3,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, false, body["success"])

	res, body = do(t, s, http.MethodDelete, "/questions/"+strconv.Itoa(createdID), nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, float64(createdID), body["deleted"])
	assert.NotContains(t, allQuestionIDs(t, s), createdID)

	res, body = do(t, s, http.MethodDelete, "/questions/"+strconv.Itoa(createdID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	assert.Equal(t, "unprocessable", body["message"])
}

func TestSearch_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "TITLE"})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, body["questions"], 1)
	assert.Equal(t, float64(17), body["totalQuestions"])

	res, _ = do(t, s, http.MethodPost, "/questions/search", map[string]string{"searchTerm": ""})
	assert.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)

	res, _ = do(t, s, http.MethodPost, "/questions/search", map[string]string{"searchTerm": "xyzzy"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestCategoryQuestions_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodGet, "/categories/6/questions", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "Sports", body["category"])
	assert.Equal(t, float64(2), body["totalQuestions"])

	res, _ = do(t, s, http.MethodGet, "/categories/1000/questions", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestQuiz_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodPost, "/quizzes", map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 0}, "previous_questions": []int{},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.NotNil(t, body["question"])

	res, body = do(t, s, http.MethodPost, "/quizzes", map[string]interface{}{
		"quiz_category": map[string]interface{}{"id": 0}, "previous_questions": allQuestionIDs(t, s),
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body, "question")
	assert.Nil(t, body["question"])

	res, body = do(t, s, http.MethodPost, "/quizzes", map[string]interface{}{"previous_questions": []int{}})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "bad request", body["message"])
}

func TestQuiz_PlaysThroughCategory(t *testing.T) {
	s := newTestServer(t)

	var previous []int
	for i := 0; i < 10; i++ {
		_, body := do(t, s, http.MethodPost, "/quizzes", map[string]interface{}{
			"quiz_category": map[string]interface{}{"type": "Art", "id": "2"}, "previous_questions": append([]int{}, previous...),
		})
		if body["question"] == nil {
			break
		}
		q := body["question"].(map[string]interface{})
		assert.Equal(t, float64(2), q["category"])
		id := int(q["id"].(float64))
		assert.NotContains(t, previous, id)
		previous = append(previous, id)
	}
	assert.Len(t, previous, 3)
}

func TestRouter_ErrorEnvelopesAndCORS(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodGet, "/nope", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, false, body["success"])

	res, body = do(t, s, http.MethodPatch, "/questions", nil)
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
	assert.Equal(t, float64(405), body["error"])
	assert.Equal(t, "method not found", body["message"])

	res, _ = do(t, s, http.MethodGet, "/categories", nil)
	assert.Equal(t, "Content-Type,Authorization,true", res.Header.Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "GET,PUT,POST,DELETE,OPTIONS", res.Header.Get("Access-Control-Allow-Methods"))
	assert.NotEmpty(t, res.Header.Get("X-Request-ID"))
}

func TestHealth_EndToEnd(t *testing.T) {
	s := newTestServer(t)

	res, body := do(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "up", body["status"])
}

func TestRouter_PreflightCarriesFullCORSLists(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/questions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodDelete)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	res := w.Result()
	defer res.Body.Close()

	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, []string{"GET,PUT,POST,DELETE,OPTIONS"}, res.Header.Values("Access-Control-Allow-Methods"))
	assert.Equal(t, []string{"Content-Type,Authorization,true"}, res.Header.Values("Access-Control-Allow-Headers"))
	assert.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
}
