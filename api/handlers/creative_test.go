package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/mindspacehq/mindspace-api/api/handlers"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/databases/mocks"
)

func TestCreative_PromptHandlerKnownMood(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/creative/prompt?mood=happy", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Creative{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.PromptHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Write a joyful poem about your day.")
}

func TestCreative_PromptHandlerFallsBackToNeutral(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/creative/prompt?mood=bewildered", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	c := handlers.Creative{}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.PromptHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Draw a simple sketch representing balance.")
}

func TestCreative_CreateCreativeContentHandlerRejectsUnknownType(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/creative", strings.NewReader(`{"userId":"user-a","contentType":"interpretive-dance","contentData":"..."}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	c := handlers.Creative{DB: databases.NewCreativeDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCreativeContentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid creative content")
}

func TestCreative_CreateCreativeContentHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/creative", strings.NewReader(`{"userId":"user-a","contentType":"poetry","contentData":"roses are red","mood":"happy"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertResult, nil)
	db.On("Collection", "creativeContents").Return(conn)

	c := handlers.Creative{DB: databases.NewCreativeDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCreativeContentHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"contentType":"poetry"`)
	assert.Contains(t, rr.Body.String(), `"contentData":"roses are red"`)
}
