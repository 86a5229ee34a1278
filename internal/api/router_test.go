package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dogtraining/dashboard/internal/core/domain"
	"github.com/dogtraining/dashboard/internal/core/service"
	"github.com/dogtraining/dashboard/internal/infrastructure/db/memory"
	"github.com/dogtraining/dashboard/internal/infrastructure/seed"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	log := zerolog.Nop()
	s := memory.NewStores()

	require.NoError(t, seed.Load(context.Background(), seed.Targets{
		Users:         s.Users,
		Clients:       s.Clients,
		Media:         s.Media,
		Notifications: s.Notifications,
	}, time.Now(), log))

	auth, err := service.NewAuthService(s.Users, "router-test-secret", service.DefaultTokenTTL, log)
	require.NoError(t, err)

	return NewRouter(Dependencies{
		Auth:          auth,
		Clients:       service.NewClientService(s.Clients, log),
		Media:         service.NewMediaService(s.Media, s.Clients, s.Notifications, log),
		Notifications: service.NewNotificationService(s.Notifications, s.Clients, log),
		Payments:      service.NewPaymentService(s.Payments, s.Clients, s.Notifications, log),
		Logger:        log,
	})
}

func do(e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()
	rec := do(e, http.MethodPost, "/login", "", `{"email":"`+email+`","password":"`+password+`"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRouter_Login(t *testing.T) {
	e := newTestRouter(t)

	rec := do(e, http.MethodPost, "/api/auth/login", "", `{"email":"admin@dogtraining.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "admin", resp["role"])
	assert.Equal(t, "1", resp["userId"])
	assert.Equal(t, "Adalberto Alves", resp["name"])

	wrongPassword := do(e, http.MethodPost, "/login", "", `{"email":"admin@dogtraining.com","password":"nope"}`)
	unknownEmail := do(e, http.MethodPost, "/login", "", `{"email":"ghost@example.com","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())

	malformed := do(e, http.MethodPost, "/login", "", `{"email":`)
	assert.Equal(t, http.StatusInternalServerError, malformed.Code)
}

func TestRouter_GatedRoutesRequireMatchingRole(t *testing.T) {
	e := newTestRouter(t)
	adminToken := login(t, e, "admin@dogtraining.com", "admin123")
	clientToken := login(t, e, "cliente@exemplo.com", "cliente123")

	adminRoutes := []struct{ method, path string }{
		{http.MethodGet, "/api/admin/clients"},
		{http.MethodPost, "/api/admin/clients"},
		{http.MethodGet, "/api/admin/media"},
		{http.MethodPost, "/api/admin/media"},
		{http.MethodGet, "/api/admin/notifications"},
		{http.MethodPost, "/api/admin/notifications"},
		{http.MethodGet, "/api/admin/payments"},
		{http.MethodPost, "/api/admin/payments"},
	}
	clientRoutes := []struct{ method, path string }{
		{http.MethodGet, "/api/client/media"},
		{http.MethodGet, "/api/client/notifications"},
		{http.MethodPost, "/api/client/notifications/read"},
	}

	for _, r := range adminRoutes {
		assert.Equal(t, http.StatusUnauthorized, do(e, r.method, r.path, "", "").Code, "no token %s %s", r.method, r.path)
		assert.Equal(t, http.StatusUnauthorized, do(e, r.method, r.path, "garbage", "").Code, "bad token %s %s", r.method, r.path)
		assert.Equal(t, http.StatusUnauthorized, do(e, r.method, r.path, clientToken, "").Code, "client token %s %s", r.method, r.path)
	}
	for _, r := range clientRoutes {
		assert.Equal(t, http.StatusUnauthorized, do(e, r.method, r.path, "", "").Code, "no token %s %s", r.method, r.path)
		assert.Equal(t, http.StatusUnauthorized, do(e, r.method, r.path, adminToken, "").Code, "admin token %s %s", r.method, r.path)
	}
}

func TestRouter_AdminFlow(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin@dogtraining.com", "admin123")
	client := login(t, e, "cliente@exemplo.com", "cliente123")

	rec := do(e, http.MethodGet, "/api/admin/clients", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var clients []domain.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &clients))
	assert.Len(t, clients, 3)

	rec = do(e, http.MethodPost, "/api/admin/clients", admin, `{"name":"Ana","email":"ana@example.com","dogName":"Bolt","phone":"1199"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/admin/media", admin, `{"clientId":"c1","type":"video","url":"https://example.com/v.mp4","title":"Junto"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = do(e, http.MethodPost, "/api/admin/media", admin, `{"clientId":"nope","type":"video","url":"https://example.com/v.mp4","title":"Junto"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(e, http.MethodPost, "/api/admin/payments", admin, `{"clientId":"c1"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/admin/payments", admin, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var payments []domain.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payments))
	require.Len(t, payments, 1)
	assert.Equal(t, "1", payments[0].RecordedBy)

	// the client sees the new media and both generated notifications
	rec = do(e, http.MethodGet, "/api/client/media", client, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var media []domain.Media
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &media))
	for _, m := range media {
		assert.Equal(t, "c1", m.ClientID)
	}

	rec = do(e, http.MethodGet, "/api/client/notifications", client, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notes []domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notes))
	require.NotEmpty(t, notes)
	kinds := map[domain.NotificationType]bool{}
	for i, n := range notes {
		assert.Equal(t, "c1", n.ClientID)
		kinds[n.Type] = true
		if i > 0 {
			assert.False(t, n.Date.After(notes[i-1].Date), "notifications must be newest first")
		}
	}
	assert.True(t, kinds[domain.NotificationMedia], "media notice missing")
	assert.True(t, kinds[domain.NotificationPayment], "payment notice missing")

	rec = do(e, http.MethodPost, "/api/client/notifications/read", client, `{"notificationId":"`+notes[0].ID+`"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ClientCannotReadOthersNotifications(t *testing.T) {
	e := newTestRouter(t)
	admin := login(t, e, "admin@dogtraining.com", "admin123")
	client := login(t, e, "cliente@exemplo.com", "cliente123")

	rec := do(e, http.MethodPost, "/api/admin/notifications", admin, `{"clientId":"c2","message":"Só para a Maria"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var n domain.Notification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))

	rec = do(e, http.MethodPost, "/api/client/notifications/read", client, `{"notificationId":"`+n.ID+`"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_OpsEndpoints(t *testing.T) {
	e := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health", "", "").Code)
	assert.Equal(t, http.StatusOK, do(e, http.MethodGet, "/health/ready", "", "").Code)

	_ = do(e, http.MethodPost, "/login", "", `{"email":"admin@dogtraining.com","password":"wrong"}`)
	rec := do(e, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dashboard_auth_login_attempts_total")
	assert.Contains(t, rec.Body.String(), "requests_total{")

	rec = do(e, http.MethodGet, "/swagger/doc.json", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/client/notifications/read")
}
