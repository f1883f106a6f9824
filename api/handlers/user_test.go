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

	"github.com/mindspacehq/mindspace-api/api"
	"github.com/mindspacehq/mindspace-api/api/handlers"
	"github.com/mindspacehq/mindspace-api/databases"
	"github.com/mindspacehq/mindspace-api/databases/mocks"
	"github.com/mindspacehq/mindspace-api/models"
)

func TestUser_UserCreateHandlerMissingFields(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{"username":"ada"}`))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.DatabaseHelper{}
	u := handlers.User{DB: databases.NewUserDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "username and password are required")
}

func TestUser_UserCreateHandlerDuplicateUsername(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{"username":"ada","password":"hunter2"}`))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(1), nil)
	db.On("Collection", "users").Return(conn)

	u := handlers.User{DB: databases.NewUserDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, `{"message": "User exists"}`, rr.Body.String())
}

func TestUser_UserCreateHandlerSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	req, err := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{"username":"ada","password":"hunter2"}`))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	insertResult := &mocks.InsertOneResultHelper{}

	conn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(insertResult, nil)
	db.On("Collection", "users").Return(conn)

	userDB := databases.NewUserDatabase(db)
	m := api.MiddlewareDB{DB: userDB}
	m.SetupGoGuardian()

	u := handlers.User{DB: userDB}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"ada"`)
	assert.Contains(t, rr.Body.String(), `"token":"`)
	assert.NotContains(t, rr.Body.String(), "hunter2")
}

func TestUser_UserCreateHandlerInsertFailure(t *testing.T) {
	req, err := http.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(`{"username":"ada","password":"hunter2"}`))
	if err != nil {
		t.Fatal(err)
	}

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}

	conn.On("CountDocuments", mock.Anything, mock.Anything).Return(int64(0), nil)
	conn.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))
	db.On("Collection", "users").Return(conn)

	u := handlers.User{DB: databases.NewUserDatabase(db)}

	rr := httptest.NewRecorder()
	http.HandlerFunc(u.UserCreateHandler).ServeHTTP(rr, req)

	// no token may be issued for a user that was never stored
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to create user")
	assert.NotContains(t, rr.Body.String(), `"token"`)
}

func TestUser_UserHandlerBadObjectID(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/user/1234", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	u := handlers.User{DB: databases.NewUserDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/user/{user_id}", u.UserHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "failed to get objectID from Hex")
}

func TestUser_UserHandlerSuccess(t *testing.T) {
	req, err := http.NewRequest("GET", "/api/v1/user/608cafd695eb9dc05379b7f3", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer abc123")

	db := &mocks.DatabaseHelper{}
	conn := &mocks.CollectionHelper{}
	singleResult := &mocks.SingleResultHelper{}

	singleResult.On("Decode", mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.User)
		(*arg).Username = "ada"
		(*arg).Name = "Ada L"
	})
	conn.On("FindOne", mock.Anything, mock.Anything).Return(singleResult)
	db.On("Collection", "users").Return(conn)

	u := handlers.User{DB: databases.NewUserDatabase(db)}

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/user/{user_id}", u.UserHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"ada"`)
}
