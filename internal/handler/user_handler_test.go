package handler

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokoprima/admin-api/internal/models"
	"github.com/tokoprima/admin-api/internal/service"
)

type userStoreStub struct {
	byID    map[int]*models.User
	byEmail map[string]*models.User
	nextID  int
	touched []int
}

func newUserStoreStub(users ...*models.User) *userStoreStub {
	s := &userStoreStub{byID: map[int]*models.User{}, byEmail: map[string]*models.User{}, nextID: 1}
	for _, u := range users {
		s.byID[u.ID] = u
		s.byEmail[u.Email] = u
		if u.ID >= s.nextID {
			s.nextID = u.ID + 1
		}
	}
	return s
}

func (s *userStoreStub) GetAll() ([]models.User, error) {
	var users []models.User
	for _, u := range s.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (s *userStoreStub) GetByID(id int) (*models.User, error) {
	u, ok := s.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s *userStoreStub) GetByEmail(email string) (*models.User, error) {
	u, ok := s.byEmail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *u
	return &copied, nil
}

func (s *userStoreStub) Create(user *models.User) error {
	user.ID = s.nextID
	s.nextID++
	stored := *user
	s.byID[user.ID] = &stored
	s.byEmail[user.Email] = &stored
	return nil
}

func (s *userStoreStub) Update(user *models.User) error {
	stored := *user
	s.byID[user.ID] = &stored
	return nil
}

func (s *userStoreStub) Delete(id int) error {
	delete(s.byID, id)
	return nil
}

func (s *userStoreStub) TouchLastActive(id int) error {
	if _, ok := s.byID[id]; !ok {
		return sql.ErrNoRows
	}
	s.touched = append(s.touched, id)
	return nil
}

func newUserRouter(store *userStoreStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(service.NewUserService(store))

	r := gin.New()
	r.GET("/v1/users", h.ListUsers)
	r.POST("/v1/users", h.CreateUser)
	r.PATCH("/v1/users/:id", h.UpdateUser)
	r.DELETE("/v1/users/:id", h.DeleteUser)
	r.POST("/v1/users/activity", h.TouchActivity)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

// errorCode extracts the string error code nested in the response envelope.
// The top-level code field carries the numeric HTTP status.
func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp.Error.Code
}

func TestCreateUserResponseHidesPasswordHash(t *testing.T) {
	r := newUserRouter(newUserStoreStub())

	body := `{"name":"Jane","email":"jane@tokoprima.co.id","password":"super-secret","role":"cashier"}`
	w := doJSON(r, http.MethodPost, "/v1/users", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotContains(t, w.Body.String(), "super-secret")
	assert.NotContains(t, w.Body.String(), "passwordHash")
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	r := newUserRouter(newUserStoreStub())

	body := `{"name":"Jane","email":"jane@tokoprima.co.id","password":"super-secret","role":"manager"}`
	w := doJSON(r, http.MethodPost, "/v1/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateUserDuplicateEmailCode(t *testing.T) {
	store := newUserStoreStub(&models.User{ID: 1, Email: "jane@tokoprima.co.id"})
	r := newUserRouter(store)

	body := `{"name":"Jane","email":"jane@tokoprima.co.id","password":"super-secret","role":"cashier"}`
	w := doJSON(r, http.MethodPost, "/v1/users", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "EMAIL_EXISTS", errorCode(t, w.Body.Bytes()))
}

func TestTouchActivityMissingUserID(t *testing.T) {
	r := newUserRouter(newUserStoreStub())

	w := doJSON(r, http.MethodPost, "/v1/users/activity", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTouchActivityUnknownUser(t *testing.T) {
	r := newUserRouter(newUserStoreStub())

	w := doJSON(r, http.MethodPost, "/v1/users/activity", `{"userId": 42}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "USER_NOT_FOUND", errorCode(t, w.Body.Bytes()))
}

func TestTouchActivityOK(t *testing.T) {
	store := newUserStoreStub(&models.User{ID: 3, Email: "kasir@tokoprima.co.id"})
	r := newUserRouter(store)

	w := doJSON(r, http.MethodPost, "/v1/users/activity", `{"userId": 3}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int{3}, store.touched)
}
