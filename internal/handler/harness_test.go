package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"github.com/talenthub-dev/job-board/backend/internal/config"
	"github.com/talenthub-dev/job-board/backend/internal/domain"
	"github.com/talenthub-dev/job-board/backend/internal/handler"
)

// fakePublisher records the mail messages the handlers publish instead of
// talking to a broker.
type fakePublisher struct {
	mu       sync.Mutex
	messages []domain.MailMessage
}

func (f *fakePublisher) PublishWithContext(_ context.Context, _, _ string, _, _ bool, msg amqp.Publishing) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	var m domain.MailMessage
	if err := json.Unmarshal(msg.Body, &m); err != nil {
		return err
	}
	f.messages = append(f.messages, m)
	return nil
}

func (f *fakePublisher) published() []domain.MailMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.MailMessage(nil), f.messages...)
}

type testApp struct {
	handler *handler.Handler
	store   *fakeStore
	mail    *fakePublisher
	redis   *miniredis.Miniredis
	cfg     *config.Config
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 1
	cfg.RabbitMQ.PublishTimeout = 1
	cfg.Redis.OperationExpiration = 1
	cfg.OTP.Expiration = 900

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	store := newFakeStore()
	mail := &fakePublisher{}

	h, err := handler.NewHandler(cfg, store, mail, rdb)
	require.NoError(t, err)
	h.RegisterRoutes()

	return &testApp{handler: h, store: store, mail: mail, redis: mr, cfg: cfg}
}

func (a *testApp) createUser(t *testing.T, email, password string, role domain.Role) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, password, role, domain.NewUserParams{
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	require.NoError(t, a.store.CreateUser(user))
	return user
}

func (a *testApp) tokenFor(t *testing.T, user *domain.User) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, handler.AuthClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   strconv.FormatInt(user.ID, 10),
		},
	})
	ss, err := token.SignedString([]byte(a.cfg.JWT.Secret))
	require.NoError(t, err)
	return ss
}

func (a *testApp) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	a.handler.Mux.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}

// jsonBody is a shorthand for free-form request payloads.
type jsonBody map[string]any

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
