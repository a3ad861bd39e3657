package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pickuphub/backend/config"
	"github.com/pickuphub/backend/internal/comment"
	"github.com/pickuphub/backend/internal/event"
	"github.com/pickuphub/backend/internal/middleware"
	"github.com/pickuphub/backend/internal/rsvp"
	"github.com/pickuphub/backend/internal/sport"
	"github.com/pickuphub/backend/internal/user"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to access underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&user.User{},
		&sport.Sport{},
		&event.GameEvent{},
		&rsvp.RSVP{},
		&comment.Comment{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	cfg := &config.Config{
		App: config.AppConfig{
			Env:         "test",
			Port:        "8080",
			FrontendURL: "http://localhost:5173",
		},
		JWT: config.JWTConfig{
			Secret:          "router-test-secret",
			SessionTTLHours: 1,
		},
	}
	return SetupRoutes(db, cfg)
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response body %q: %v", w.Body.String(), err)
	}
	return body
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookieName && c.Value != "" {
			return c
		}
	}
	t.Fatalf("No session cookie in response; headers: %v", w.Header())
	return nil
}

func registerAndLogin(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	creds := map[string]string{"username": username, "password": password}

	w := doRequest(t, r, http.MethodPost, "/users/register", creds)
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s status = %d, body = %s", username, w.Code, w.Body.String())
	}
	w = doRequest(t, r, http.MethodPost, "/users/login", creds)
	if w.Code != http.StatusOK {
		t.Fatalf("login %s status = %d, body = %s", username, w.Code, w.Body.String())
	}
	return sessionCookie(t, w)
}

func createEvent(t *testing.T, r *gin.Engine, cookie *http.Cookie, title, sportName, datetime string) uint {
	t.Helper()
	w := doRequest(t, r, http.MethodPost, "/events/create", map[string]interface{}{
		"title":       title,
		"sport":       sportName,
		"location":    "Central Park",
		"datetime":    datetime,
		"max_players": 10,
		"skill_level": "Intermediate",
	}, cookie)
	if w.Code != http.StatusCreated {
		t.Fatalf("create event status = %d, body = %s", w.Code, w.Body.String())
	}
	body := decodeBody(t, w)
	created, ok := body["event"].(map[string]interface{})
	if !ok {
		t.Fatalf("create event response missing event object: %v", body)
	}
	return uint(created["id"].(float64))
}

func TestRegisterLoginProfileLogout(t *testing.T) {
	r := setupTestRouter(t)
	creds := map[string]string{"username": "alice", "password": "p1"}

	t.Run("register", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/register", creds)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		body := decodeBody(t, w)
		if body["success"] != true {
			t.Errorf("success = %v, want true", body["success"])
		}
		u := body["user"].(map[string]interface{})
		if u["username"] != "alice" {
			t.Errorf("username = %v, want alice", u["username"])
		}
		if _, leaked := u["password"]; leaked {
			t.Error("register response leaked the password field")
		}
	})

	t.Run("register duplicate username", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/register", creds)
		if w.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Username already exists" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("register missing password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/register", map[string]string{"username": "carol"})
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Username and password are required" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("login wrong password", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/login", map[string]string{"username": "alice", "password": "wrong"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Invalid credentials" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("login unknown user", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/login", map[string]string{"username": "mallory", "password": "p1"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Invalid credentials" {
			t.Errorf("message = %v", msg)
		}
	})

	var cookie *http.Cookie
	t.Run("login sets http-only cookie", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/login", creds)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		cookie = sessionCookie(t, w)
		if !cookie.HttpOnly {
			t.Error("session cookie is not HTTP-only")
		}
		if cookie.MaxAge <= 0 {
			t.Errorf("session cookie MaxAge = %d, want positive", cookie.MaxAge)
		}
	})

	t.Run("profile with session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/users/profile", nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		u := decodeBody(t, w)["user"].(map[string]interface{})
		if u["username"] != "alice" {
			t.Errorf("username = %v, want alice", u["username"])
		}
	})

	t.Run("profile without session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/users/profile", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "No token provided" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("profile with tampered token", func(t *testing.T) {
		bad := &http.Cookie{Name: middleware.SessionCookieName, Value: cookie.Value + "x"}
		w := doRequest(t, r, http.MethodGet, "/users/profile", nil, bad)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Invalid token" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("logout clears cookie", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/users/logout", nil, cookie)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		cleared := false
		for _, c := range w.Result().Cookies() {
			if c.Name == middleware.SessionCookieName && c.MaxAge < 0 {
				cleared = true
			}
		}
		if !cleared {
			t.Error("logout did not expire the session cookie")
		}
	})
}

func TestEventAndMembershipFlow(t *testing.T) {
	r := setupTestRouter(t)

	alice := registerAndLogin(t, r, "alice", "p1")
	bob := registerAndLogin(t, r, "bob", "p2")

	t.Run("create event requires session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/create", map[string]interface{}{
			"title": "No session", "sport": "Soccer", "location": "Park",
			"datetime": "2026-09-01 18:00:00", "max_players": 10, "skill_level": "Beginner",
		})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("create event rejects bad datetime", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/create", map[string]interface{}{
			"title": "Bad time", "sport": "Soccer", "location": "Park",
			"datetime": "next tuesday", "max_players": 10, "skill_level": "Beginner",
		}, alice)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "datetime must be formatted as YYYY-MM-DD HH:MM:SS" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("create event rejects non-positive max_players", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/create", map[string]interface{}{
			"title": "Bad cap", "sport": "Soccer", "location": "Park",
			"datetime": "2026-09-01 18:00:00", "max_players": -3, "skill_level": "Beginner",
		}, alice)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "max_players must be a positive number" {
			t.Errorf("message = %v", msg)
		}
	})

	gameID := createEvent(t, r, alice, "Pickup 5v5", "Soccer", "2026-09-01 18:00:00")

	t.Run("event creation registers the sport lazily", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/sports", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		sports := decodeBody(t, w)["sports"].([]interface{})
		found := false
		for _, s := range sports {
			if s.(map[string]interface{})["name"] == "Soccer" {
				found = true
			}
		}
		if !found {
			t.Error("sport Soccer was not created alongside the event")
		}
	})

	t.Run("listing shows zero players before any join", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/events", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		events := decodeBody(t, w)["events"].([]interface{})
		if len(events) != 1 {
			t.Fatalf("events count = %d, want 1", len(events))
		}
		detail := events[0].(map[string]interface{})
		if detail["current_players"].(float64) != 0 {
			t.Errorf("current_players = %v, want 0", detail["current_players"])
		}
		if detail["organizer_name"] != "alice" {
			t.Errorf("organizer_name = %v, want alice", detail["organizer_name"])
		}
	})

	joinPath := fmt.Sprintf("/events/%d/join", gameID)
	t.Run("both users join", func(t *testing.T) {
		for _, c := range []*http.Cookie{alice, bob} {
			w := doRequest(t, r, http.MethodPost, joinPath, nil, c)
			if w.Code != http.StatusCreated {
				t.Fatalf("join status = %d, body = %s", w.Code, w.Body.String())
			}
			if msg := decodeBody(t, w)["message"]; msg != "Successfully joined game" {
				t.Errorf("message = %v", msg)
			}
		}

		w := doRequest(t, r, http.MethodGet, "/events", nil)
		detail := decodeBody(t, w)["events"].([]interface{})[0].(map[string]interface{})
		if detail["current_players"].(float64) != 2 {
			t.Errorf("current_players = %v, want 2", detail["current_players"])
		}
	})

	t.Run("second join is rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, joinPath, nil, bob)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "You have already joined this game" {
			t.Errorf("message = %v", msg)
		}

		w = doRequest(t, r, http.MethodGet, "/events", nil)
		detail := decodeBody(t, w)["events"].([]interface{})[0].(map[string]interface{})
		if detail["current_players"].(float64) != 2 {
			t.Errorf("current_players after rejected join = %v, want 2", detail["current_players"])
		}
	})

	t.Run("join status endpoint", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, fmt.Sprintf("/events/%d/joined", gameID), nil, bob)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if joined := decodeBody(t, w)["hasJoined"]; joined != true {
			t.Errorf("hasJoined = %v, want true", joined)
		}
	})

	t.Run("invalid game id", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/events/abc/join", nil, bob)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Invalid game ID" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("leave drops the membership", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, fmt.Sprintf("/events/%d/leave", gameID), nil, bob)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if msg := decodeBody(t, w)["message"]; msg != "Successfully left game" {
			t.Errorf("message = %v", msg)
		}

		w = doRequest(t, r, http.MethodGet, fmt.Sprintf("/events/%d/joined", gameID), nil, bob)
		if joined := decodeBody(t, w)["hasJoined"]; joined != false {
			t.Errorf("hasJoined after leave = %v, want false", joined)
		}

		w = doRequest(t, r, http.MethodGet, "/events", nil)
		detail := decodeBody(t, w)["events"].([]interface{})[0].(map[string]interface{})
		if detail["current_players"].(float64) != 1 {
			t.Errorf("current_players after leave = %v, want 1", detail["current_players"])
		}
	})

	t.Run("joined-games lists only the caller's events", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/users/joined-games", nil, alice)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		games := decodeBody(t, w)["games"].([]interface{})
		if len(games) != 1 {
			t.Fatalf("alice joined-games count = %d, want 1", len(games))
		}

		w = doRequest(t, r, http.MethodGet, "/users/joined-games", nil, bob)
		games = decodeBody(t, w)["games"].([]interface{})
		if len(games) != 0 {
			t.Errorf("bob joined-games count = %d, want 0", len(games))
		}
	})
}

func TestSportEndpoints(t *testing.T) {
	r := setupTestRouter(t)
	alice := registerAndLogin(t, r, "alice", "p1")

	t.Run("create requires session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/sports/create", map[string]string{"name": "Soccer"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("create and list", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/sports/create", map[string]string{"name": "Soccer"}, alice)
		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}

		w = doRequest(t, r, http.MethodGet, "/sports", nil)
		sports := decodeBody(t, w)["sports"].([]interface{})
		if len(sports) != 1 {
			t.Fatalf("sports count = %d, want 1", len(sports))
		}
		if name := sports[0].(map[string]interface{})["name"]; name != "Soccer" {
			t.Errorf("name = %v, want Soccer", name)
		}
	})

	t.Run("duplicate name rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/sports/create", map[string]string{"name": "Soccer"}, alice)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
		if msg := decodeBody(t, w)["message"]; msg != "Sport already exists" {
			t.Errorf("message = %v", msg)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/sports/create", map[string]string{"name": "   "}, alice)
		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", w.Code)
		}
	})
}

func TestCommentFlow(t *testing.T) {
	r := setupTestRouter(t)

	alice := registerAndLogin(t, r, "alice", "p1")
	bob := registerAndLogin(t, r, "bob", "p2")
	gameID := createEvent(t, r, alice, "Pickup 5v5", "Soccer", "2026-09-01 18:00:00")
	path := fmt.Sprintf("/events/%d/comments", gameID)

	t.Run("posting requires session", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, path, map[string]string{"text": "hello"})
		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", w.Code)
		}
	})

	t.Run("blank text rejected", func(t *testing.T) {
		for _, body := range []map[string]string{{}, {"text": "   "}} {
			w := doRequest(t, r, http.MethodPost, path, body, alice)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if msg := decodeBody(t, w)["message"]; msg != "Comment text required" {
				t.Errorf("message = %v", msg)
			}
		}
	})

	t.Run("comments list in posting order with authors", func(t *testing.T) {
		for _, post := range []struct {
			cookie *http.Cookie
			text   string
		}{
			{alice, "Anyone up for a game?"},
			{bob, "I'm in"},
		} {
			w := doRequest(t, r, http.MethodPost, path, map[string]string{"text": post.text}, post.cookie)
			if w.Code != http.StatusCreated {
				t.Fatalf("post comment status = %d, body = %s", w.Code, w.Body.String())
			}
		}

		w := doRequest(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		comments := decodeBody(t, w)["comments"].([]interface{})
		if len(comments) != 2 {
			t.Fatalf("comments count = %d, want 2", len(comments))
		}
		first := comments[0].(map[string]interface{})
		if first["user"] != "alice" || first["text"] != "Anyone up for a game?" {
			t.Errorf("first comment = %v", first)
		}
		second := comments[1].(map[string]interface{})
		if second["user"] != "bob" || second["text"] != "I'm in" {
			t.Errorf("second comment = %v", second)
		}
	})

	t.Run("listing is public", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, path, nil)
		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200", w.Code)
		}
	})
}
