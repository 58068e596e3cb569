package subscription

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	domain "tripalert-gateway/internal/domain/subscription"
	"tripalert-gateway/internal/metrics"
	"tripalert-gateway/internal/middleware"
	xerrors "tripalert-gateway/internal/pkg/errors"
	"tripalert-gateway/internal/pkg/session"
	"tripalert-gateway/internal/proxy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testCookie = "app_session"

type fixtureStore struct {
	sessions map[string]*session.Data
}

func (s *fixtureStore) Get(_ context.Context, sid string) (*session.Data, error) {
	data, ok := s.sessions[sid]
	if !ok {
		return nil, xerrors.ErrNoSession
	}
	return data, nil
}

// fakeBackend records forwarded requests and plays back canned
// responses, standing in for the trip-matching service.
type fakeBackend struct {
	*httptest.Server
	calls      atomic.Int64
	lastMethod string
	lastPath   string
	lastAuth   string
	lastBody   []byte
	status     int
	body       string
}

func newFakeBackend(status int, body string) *fakeBackend {
	fb := &fakeBackend{status: status, body: body}
	fb.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fb.calls.Add(1)
		fb.lastMethod = r.Method
		fb.lastPath = r.URL.Path
		fb.lastAuth = r.Header.Get("Authorization")
		fb.lastBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(fb.status)
		w.Write([]byte(fb.body))
	}))
	return fb
}

func newTestRouter(t *testing.T, backend *fakeBackend) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &fixtureStore{sessions: map[string]*session.Data{
		"sid-1": {
			UserID:      "auth0|u1",
			Email:       "u1@example.com",
			Roles:       []string{"user"},
			AccessToken: "tok-1",
			ExpiresAt:   time.Now().Add(time.Hour),
		},
	}}
	am := middleware.NewAuthMiddleware(session.NewManager(store), testCookie, zap.NewNop(), metrics.Nop())
	h := NewSubscriptionHandler(proxy.NewClient(backend.URL, zap.NewNop(), metrics.Nop()), zap.NewNop())

	r := gin.New()
	r.Use(middleware.RecoveryMiddleware(zap.NewNop()))
	grp := r.Group("/api/subscriptions")
	grp.Use(am.Auth())
	{
		grp.GET("", h.ListSubscriptions)
		grp.POST("", h.CreateSubscription)
		grp.PUT("/:id", h.UpdateSubscription)
		grp.DELETE("/:id", h.DeleteSubscription)
	}
	return r
}

func doJSON(r *gin.Engine, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if authenticated {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: "sid-1"})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUnauthenticated_NoBackendCall(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[]`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/api/subscriptions"},
		{http.MethodPost, "/api/subscriptions"},
		{http.MethodPut, "/api/subscriptions/s-1"},
		{http.MethodDelete, "/api/subscriptions/s-1"},
	} {
		w := doJSON(r, req.method, req.path, nil, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", req.method, req.path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}
	assert.Equal(t, int64(0), backend.calls.Load(), "no backend traffic for unauthenticated callers")
}

func TestListSubscriptions_QueriesByVerifiedUser(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[{"id":"s-1"}]`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodGet, "/api/subscriptions", nil, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/api/subscriptions/auth0|u1", backend.lastPath)
	assert.Equal(t, "Bearer tok-1", backend.lastAuth)

	var subs []domain.Subscription
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	require.Len(t, subs, 1)
	assert.Equal(t, "s-1", subs[0].ID)
}

func TestCreateSubscription_IdentityOverridesClientFields(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, `{"id":"s-new"}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodPost, "/api/subscriptions", map[string]any{
		"user_id":          "auth0|forged",
		"email":            "attacker@example.com",
		"origin_id":        11,
		"origin_code":      "HAN",
		"destination_id":   31,
		"destination_code": "SGN",
		"date_time":        "2025-06-15T08:30:00+07:00",
	}, true)

	require.Equal(t, http.StatusCreated, w.Code)

	var forwarded map[string]any
	require.NoError(t, json.Unmarshal(backend.lastBody, &forwarded))
	assert.Equal(t, "auth0|u1", forwarded["user_id"])
	assert.Equal(t, "u1@example.com", forwarded["email"])
	assert.Equal(t, "2025-06-15T08:30:00+07:00", forwarded["date_time"])
}

func TestCreateSubscription_EncodesDateWhenDateTimeAbsent(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, `{"id":"s-new"}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodPost, "/api/subscriptions", domain.CreateRequest{
		OriginID:        11,
		OriginCode:      "HAN",
		Origin:          "Hà Nội",
		DestinationID:   31,
		DestinationCode: "SGN",
		Destination:     "TP. Hồ Chí Minh",
		Date:            "2025-06-15",
		Time:            "08:30",
	}, true)

	require.Equal(t, http.StatusCreated, w.Code)

	var forwarded map[string]any
	require.NoError(t, json.Unmarshal(backend.lastBody, &forwarded))

	want := time.Date(2025, time.June, 15, 8, 30, 0, 0, time.Local).Format("2006-01-02T15:04:05-07:00")
	assert.Equal(t, want, forwarded["date_time"])
	assert.NotContains(t, forwarded, "date")
	assert.NotContains(t, forwarded, "time")
}

func TestCreateSubscription_RejectsEqualOriginAndDestination(t *testing.T) {
	backend := newFakeBackend(http.StatusCreated, `{}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodPost, "/api/subscriptions", map[string]any{
		"origin_id":      11,
		"destination_id": 11,
		"date_time":      "2025-06-15T08:30:00+07:00",
	}, true)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(0), backend.calls.Load())
}

func TestCreateSubscription_RelaysDuplicateConflict(t *testing.T) {
	backend := newFakeBackend(http.StatusConflict,
		`{"error":"Active subscription already exists for this route and datetime"}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodPost, "/api/subscriptions", map[string]any{
		"origin_id":      11,
		"destination_id": 31,
		"date_time":      "2025-06-15T08:30:00+07:00",
	}, true)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.JSONEq(t,
		`{"error":"Active subscription already exists for this route and datetime"}`,
		w.Body.String())
}

func TestUpdateSubscription_ForwardsBody(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `{"id":"s-1","is_active":false}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	inactive := false
	w := doJSON(r, http.MethodPut, "/api/subscriptions/s-1", domain.UpdateRequest{IsActive: &inactive}, true)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.MethodPut, backend.lastMethod)
	assert.Equal(t, "/api/subscriptions/s-1", backend.lastPath)
	assert.JSONEq(t, `{"is_active":false}`, string(backend.lastBody))
}

func TestDeleteSubscription_RelaysNotFound(t *testing.T) {
	backend := newFakeBackend(http.StatusNotFound, `{"error":"Subscription not found"}`)
	defer backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodDelete, "/api/subscriptions/s-gone", nil, true)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Subscription not found"}`, w.Body.String())
}

func TestBackendDown_GenericFailure(t *testing.T) {
	backend := newFakeBackend(http.StatusOK, `[]`)
	backend.Close()
	r := newTestRouter(t, backend)

	w := doJSON(r, http.MethodGet, "/api/subscriptions", nil, true)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}
