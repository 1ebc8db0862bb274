package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lifelog/internal/db"
	"github.com/lifelog/internal/service"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open("file:router_"+t.Name()+"?mode=memory&cache=shared", db.Options{Silent: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close(gdb) })

	if err := db.EnsureOwner(gdb, "owner", "secret"); err != nil {
		t.Fatalf("EnsureOwner returned error: %v", err)
	}
	return SetupRouter("test-secret", service.NewServices(gdb, nil), nil)
}

func TestPing(t *testing.T) {
	r := setupTestRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestAPIRequiresSession(t *testing.T) {
	r := setupTestRouter(t)

	for _, path := range []string{"/api/habits", "/api/dashboard", "/api/export"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", path, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestLoginGrantsAccess(t *testing.T) {
	r := setupTestRouter(t)

	body, _ := json.Marshal(map[string]string{"username": "owner", "password": "wrong"})
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewReader(body)))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected wrong password to be rejected, got %d", rr.Code)
	}

	body, _ = json.Marshal(map[string]string{"username": "owner", "password": "secret"})
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/session", bytes.NewReader(body)))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected login to succeed, got %d: %s", rr.Code, rr.Body.String())
	}
	cookies := rr.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("expected session cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/habits", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected authenticated request to succeed, got %d", rr.Code)
	}
}
