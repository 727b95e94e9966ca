package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apihttp "github.com/campushub/clubevents/api/http"
	"github.com/campushub/clubevents/api/http/handlers"
	"github.com/campushub/clubevents/pkg/catalog"
	"github.com/campushub/clubevents/pkg/directory"
	"github.com/campushub/clubevents/pkg/health"
	"github.com/campushub/clubevents/pkg/ledger"
	storage "github.com/campushub/clubevents/pkg/storage/postgres"
)

const testOrigin = "http://localhost:5173"

// memUsers is an in-memory directory.Repository with the same atomicity
// contract as the store-backed one.
type memUsers struct {
	mu            sync.Mutex
	byEmail       map[string]directory.User
	registrations map[uuid.UUID][]string
	unavailable   bool
}

func newMemUsers() *memUsers {
	return &memUsers{
		byEmail:       map[string]directory.User{},
		registrations: map[uuid.UUID][]string{},
	}
}

func (m *memUsers) Create(ctx context.Context, user directory.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return storage.ErrStoreUnavailable
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return directory.ErrDuplicateEmail
	}
	m.byEmail[user.Email] = user
	m.registrations[user.ID] = []string{}
	return nil
}

func (m *memUsers) GetByEmail(ctx context.Context, email string) (directory.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return directory.User{}, storage.ErrStoreUnavailable
	}
	user, ok := m.byEmail[email]
	if !ok {
		return directory.User{}, directory.ErrUnknownEmail
	}
	return user, nil
}

func (m *memUsers) RegisteredEventIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, storage.ErrStoreUnavailable
	}
	return append([]string{}, m.registrations[userID]...), nil
}

func (m *memUsers) AddRegisteredEvent(ctx context.Context, userID uuid.UUID, eventID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return storage.ErrStoreUnavailable
	}
	set, ok := m.registrations[userID]
	if !ok {
		return directory.ErrUserNotFound
	}
	for _, id := range set {
		if id == eventID {
			return directory.ErrAlreadyRegistered
		}
	}
	m.registrations[userID] = append(set, eventID)
	return nil
}

type memEvents struct {
	mu          sync.Mutex
	events      []catalog.Event
	unavailable bool
}

func (m *memEvents) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return 0, storage.ErrStoreUnavailable
	}
	return len(m.events), nil
}

func (m *memEvents) InsertBatch(ctx context.Context, events []catalog.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return storage.ErrStoreUnavailable
	}
	m.events = append(m.events, events...)
	return nil
}

func (m *memEvents) ListAll(ctx context.Context) ([]catalog.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, storage.ErrStoreUnavailable
	}
	return append([]catalog.Event{}, m.events...), nil
}

func (m *memEvents) GetByEventIDs(ctx context.Context, ids []string) ([]catalog.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return nil, storage.ErrStoreUnavailable
	}
	want := map[string]bool{}
	for _, id := range ids {
		want[id] = true
	}
	res := []catalog.Event{}
	for _, e := range m.events {
		if want[e.EventID] {
			res = append(res, e)
		}
	}
	return res, nil
}

func newTestApp(users directory.Repository, events catalog.Repository) *fiber.App {
	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: testOrigin,
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type",
	}))

	usersUC := directory.NewService(users)
	eventsUC := catalog.NewService(events)
	ledgerUC := ledger.NewService(usersUC, eventsUC)

	// No checkers wired: readiness reflects only what the test fakes simulate.
	readiness := health.NewService()

	apihttp.Register(app,
		handlers.NewAuthHandler(usersUC),
		handlers.NewEventsHandler(eventsUC),
		handlers.NewRegistrationHandler(ledgerUC),
		handlers.NewHealthHandler(readiness),
	)
	return app
}

func seededApp(t *testing.T) (*fiber.App, *memEvents) {
	t.Helper()
	events := &memEvents{}
	svc := catalog.NewService(events)
	_, err := svc.SeedIfEmpty(context.Background(), catalog.DefaultEvents())
	require.NoError(t, err)
	return newTestApp(newMemUsers(), events), events
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestWelcomeRoute(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodGet, "/", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Clubs Events API")
}

func TestSignupLoginRegisterScenario(t *testing.T) {
	app, _ := seededApp(t)

	signup := map[string]string{
		"name": "A", "gender": "female", "email": "a@x.com",
		"phoneNumber": "123456", "password": "p1",
	}
	resp := doJSON(t, app, http.MethodPost, "/signup", signup)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/signup", signup)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var loginBody struct {
		User struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decodeBody(t, resp, &loginBody)
	require.NotEmpty(t, loginBody.User.ID)
	assert.Equal(t, "a@x.com", loginBody.User.Email)

	register := map[string]string{"userId": loginBody.User.ID, "eventId": "e1"}
	resp = doJSON(t, app, http.MethodPost, "/register-event", register)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/register-event", register)
	resp.Body.Close()
	require.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/myevents-ids/"+loginBody.User.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ids []string
	decodeBody(t, resp, &ids)
	assert.Equal(t, []string{"e1"}, ids)

	resp = doJSON(t, app, http.MethodGet, "/myevents/"+loginBody.User.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var full []catalog.Event
	decodeBody(t, resp, &full)
	require.Len(t, full, 1)
	assert.Equal(t, "e1", full[0].EventID)
	assert.Equal(t, "Tech Workshop", full[0].Name)
}

func TestLoginNeverReturnsCredential(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p1"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "password")
	assert.NotContains(t, string(b), "p1")
}

func TestLoginFailures(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodPost, "/signup", map[string]string{
		"name": "A", "email": "a@x.com", "password": "p1",
	})
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	cases := []struct {
		name     string
		email    string
		password string
		wantMsg  string
	}{
		{"unknown email", "nobody@x.com", "p1", "email not found"},
		{"wrong password", "a@x.com", "p2", "wrong password"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/login", map[string]string{
				"email": tc.email, "password": tc.password,
			})
			require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			var body struct {
				Message string `json:"message"`
			}
			decodeBody(t, resp, &body)
			assert.Contains(t, body.Message, tc.wantMsg)
		})
	}
}

func TestSignupMissingFields(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodPost, "/signup", map[string]string{"email": "a@x.com"})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRegisterEventUnknownUser(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodPost, "/register-event", map[string]string{
		"userId": uuid.NewString(), "eventId": "e1",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMalformedUserIdentifier(t *testing.T) {
	app, _ := seededApp(t)

	resp := doJSON(t, app, http.MethodPost, "/register-event", map[string]string{
		"userId": "not-a-uuid", "eventId": "e1",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	for _, path := range []string{"/myevents-ids/not-a-uuid", "/myevents/not-a-uuid"} {
		resp := doJSON(t, app, http.MethodGet, path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
	}
}

func TestMyEventIDsUnknownUserIsEmptyList(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodGet, "/myevents-ids/"+uuid.NewString(), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var ids []string
	decodeBody(t, resp, &ids)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestListEvents(t *testing.T) {
	app, _ := seededApp(t)
	resp := doJSON(t, app, http.MethodGet, "/events", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var events []catalog.Event
	decodeBody(t, resp, &events)
	assert.Len(t, events, len(catalog.DefaultEvents()))
	assert.Equal(t, "e1", events[0].EventID)
}

func TestStoreUnavailable(t *testing.T) {
	users := newMemUsers()
	users.unavailable = true
	events := &memEvents{unavailable: true}
	app := newTestApp(users, events)

	checks := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "/signup", map[string]string{"name": "A", "email": "a@x.com", "password": "p1"}},
		{http.MethodPost, "/login", map[string]string{"email": "a@x.com", "password": "p1"}},
		{http.MethodPost, "/register-event", map[string]string{"userId": uuid.NewString(), "eventId": "e1"}},
		{http.MethodGet, "/events", nil},
		{http.MethodGet, fmt.Sprintf("/myevents-ids/%s", uuid.NewString()), nil},
		{http.MethodGet, fmt.Sprintf("/myevents/%s", uuid.NewString()), nil},
	}
	for _, tc := range checks {
		resp := doJSON(t, app, tc.method, tc.path, tc.body)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode, tc.path)
		var body struct {
			Message string `json:"message"`
			Error   string `json:"error"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "store not connected yet", body.Error, tc.path)
	}

	// Welcome route keeps answering regardless of the store.
	resp := doJSON(t, app, http.MethodGet, "/", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSHeaders(t *testing.T) {
	app, _ := seededApp(t)
	req := httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Origin", testOrigin)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, testOrigin, resp.Header.Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/events", nil)
	req.Header.Set("Origin", "http://evil.example")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}
