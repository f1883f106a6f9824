package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mindspacehq/mindspace-api/api/handlers"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/databases/mocks"
	"github.com/mindspacehq/mindspace-api/models"
)

func TestCircle_CreateCircleHandlerEmptyName(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles", strings.NewReader(`{"name":"   ","creatorId":"user-a"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCircleHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "circle name and creatorId are required")
}

func TestCircle_CreateCircleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles", strings.NewReader(`{"name":"Morning Calm","creatorId":"user-a"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertResult, nil)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCircleHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"Morning Calm"`)
	assert.Contains(t, rr.Body.String(), `"members":["user-a"]`)
	assert.Contains(t, rr.Body.String(), `"isPrivate":true`)
}

func TestCircle_CreateCircleHandlerInsertFailure(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles", strings.NewReader(`{"name":"Morning Calm","creatorId":"user-a"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CreateCircleHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to create circle")
	assert.NotContains(t, rr.Body.String(), `"members"`)
}

func TestCircle_JoinCircleHandlerNotFound(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles/608cafe595eb9dc05379b7f4/join", strings.NewReader(`{"userId":"user-b"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 0}, nil)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/join", c.JoinCircleHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "circle not found")
}

func TestCircle_JoinCircleHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles/608cafe595eb9dc05379b7f4/join", strings.NewReader(`{"userId":"user-b"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResult := &mocks.SingleResultHelper{}

	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil)
	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.SupportCircle)
		(*arg).Name = "Morning Calm"
		(*arg).Members = []string{"user-a", "user-b"}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/join", c.JoinCircleHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"members":["user-a","user-b"]`)
}

func TestCircle_JoinCircleHandlerBadObjectID(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles/1234/join", strings.NewReader(`{"userId":"user-b"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/join", c.JoinCircleHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestCircle_LeaveCircleHandlerNonMemberIsNoop(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/circles/608cafe595eb9dc05379b7f4/leave", strings.NewReader(`{"userId":"user-z"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResult := &mocks.SingleResultHelper{}

	// matched but nothing modified: user was not a member
	conn.On("UpdateOne", mock.Anything, mock.Anything, mock.Anything).Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 0}, nil)
	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.SupportCircle)
		(*arg).Name = "Morning Calm"
		(*arg).Members = []string{"user-a"}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/leave", c.LeaveCircleHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"members":["user-a"]`)
}

func TestCircle_CirclesHandlerReturnsSummaries(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/circles", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	cursor := &mocks.CursorHelper{}

	cursor.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.SupportCircle)
		*arg = []models.SupportCircle{
			{Name: "Morning Calm", Members: []string{"user-a", "user-b"}, IsPrivate: true},
			{Name: "Night Owls", Members: []string{"user-c"}},
		}
	})
	conn.On("Find", mock.Anything, mock.Anything).Return(cursor)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(c.CirclesHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"memberCount":2`)
	assert.Contains(t, rr.Body.String(), `"name":"Night Owls"`)
}

func TestCircle_CircleMessagesHandlerReturnsHistory(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/circles/608cafe595eb9dc05379b7f4/messages", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResult := &mocks.SingleResultHelper{}

	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.SupportCircle)
		(*arg).Messages = []models.Message{
			{SenderID: "user-a", Text: "first"},
			{SenderID: "user-b", Text: "second"},
		}
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/messages", c.CircleMessagesHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"text":"first"`)
	assert.Contains(t, rr.Body.String(), `"text":"second"`)
}

func TestCircle_CircleMessagesHandlerEmptyHistory(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/circles/608cafe595eb9dc05379b7f4/messages", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResult := &mocks.SingleResultHelper{}

	singleResult.On("Decode", mock.Anything).Return(nil)
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)
	db.On("Collection", "supportCircles").Return(conn)

	c := handlers.Circle{DB: databases.NewCircleDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/circles/{circle_id}/messages", c.CircleMessagesHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]", rr.Body.String())
}
