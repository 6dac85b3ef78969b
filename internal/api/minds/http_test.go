package minds

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/minds/internal/api/minds/converter"
	"github.com/evgeniy-krivenko/minds/internal/entity"
	"github.com/evgeniy-krivenko/minds/internal/repository/memory"
	mindsuc "github.com/evgeniy-krivenko/minds/internal/usecase/minds"
)

type brokenUsecase struct{}

func (brokenUsecase) ListMinds(context.Context) ([]entity.Mind, error) {
	return nil, errors.Join(entity.ErrStorage, errors.New("connection refused"))
}

func (brokenUsecase) CreateMind(context.Context, string) (entity.Mind, error) {
	return entity.Mind{}, errors.New("boom")
}

func (brokenUsecase) DeleteMind(context.Context, uint64) error {
	return errors.Join(entity.ErrStorage, errors.New("connection refused"))
}

// contextUsecase fails every call with err, which wraps a context error.
type contextUsecase struct {
	err error
}

func (u contextUsecase) ListMinds(context.Context) ([]entity.Mind, error) {
	return nil, u.err
}

func (u contextUsecase) CreateMind(context.Context, string) (entity.Mind, error) {
	return entity.Mind{}, u.err
}

func (u contextUsecase) DeleteMind(context.Context, uint64) error {
	return u.err
}

func newTestHandler(t *testing.T, seed []entity.Mind) http.Handler {
	t.Helper()

	uc, err := mindsuc.New(mindsuc.NewOptions(memory.New(memory.WithSeed(seed))))
	require.NoError(t, err)

	return NewHandler(uc).Routes()
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func decodeList(t *testing.T, rec *httptest.ResponseRecorder) []converter.Mind {
	t.Helper()

	var resp converter.ListMindsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	return resp.Minds
}

func TestHTTP_CreateIntoEmptyThenList(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := do(t, h, http.MethodPost, "/minds", `{"content":"hello"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var created converter.Mind
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, uint64(1), created.ID)
	assert.Equal(t, "hello", created.Content)
	assert.Zero(t, created.PublishTime.Nanosecond())

	rec = do(t, h, http.MethodGet, "/minds", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []converter.Mind{created}, decodeList(t, rec))
}

func TestHTTP_ListEmpty(t *testing.T) {
	rec := do(t, newTestHandler(t, nil), http.MethodGet, "/minds", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"minds":[]}`, rec.Body.String())
}

func TestHTTP_ListSeed(t *testing.T) {
	rec := do(t, newTestHandler(t, memory.DefaultSeed()), http.MethodGet, "/minds", "")
	require.Equal(t, http.StatusOK, rec.Code)

	minds := decodeList(t, rec)
	require.Len(t, minds, 3)
	assert.Equal(t, "2024-10-31T23:59:59Z", minds[2].PublishTime.Format("2006-01-02T15:04:05Z07:00"))
	assert.Equal(t, "写点什么好呢？", minds[2].Content)
}

func TestHTTP_DeleteThenCreateDoesNotReuse(t *testing.T) {
	h := newTestHandler(t, memory.DefaultSeed())

	rec := do(t, h, http.MethodDelete, "/minds/2", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	minds := decodeList(t, do(t, h, http.MethodGet, "/minds", ""))
	require.Len(t, minds, 2)
	assert.Equal(t, uint64(1), minds[0].ID)
	assert.Equal(t, uint64(3), minds[1].ID)

	rec = do(t, h, http.MethodPost, "/minds", `{"content":"x"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created converter.Mind
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, uint64(4), created.ID)
}

func TestHTTP_DeleteMissingIsNoContent(t *testing.T) {
	h := newTestHandler(t, memory.DefaultSeed())

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodDelete, "/minds/999", "")
		require.Equal(t, http.StatusNoContent, rec.Code)
	}

	assert.Len(t, decodeList(t, do(t, h, http.MethodGet, "/minds", "")), 3)
}

func TestHTTP_CreateEmptyContent(t *testing.T) {
	rec := do(t, newTestHandler(t, nil), http.MethodPost, "/minds", `{"content":""}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"content":""`)
}

func TestHTTP_BadRequests(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "missing content", method: http.MethodPost, target: "/minds", body: `{}`},
		{name: "content is a number", method: http.MethodPost, target: "/minds", body: `{"content":42}`},
		{name: "not json", method: http.MethodPost, target: "/minds", body: `content=hello`},
		{name: "trailing garbage", method: http.MethodPost, target: "/minds", body: `{"content":"a"} junk`},
		{name: "two objects", method: http.MethodPost, target: "/minds", body: `{"content":"a"}{"content":"b"}`},
		{name: "id is not a number", method: http.MethodDelete, target: "/minds/abc"},
		{name: "negative id", method: http.MethodDelete, target: "/minds/-1"},
	}

	h := newTestHandler(t, nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestHTTP_MethodNotAllowed(t *testing.T) {
	rec := do(t, newTestHandler(t, nil), http.MethodPut, "/minds", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHTTP_StorageFailure(t *testing.T) {
	h := NewHandler(brokenUsecase{}).Routes()

	rec := do(t, h, http.MethodGet, "/minds", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"error":"storage unavailable"}`, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/minds/1", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = do(t, h, http.MethodPost, "/minds", `{"content":"x"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}

func TestHTTP_TrailingDataDoesNotCreate(t *testing.T) {
	h := newTestHandler(t, nil)

	rec := do(t, h, http.MethodPost, "/minds", `{"content":"a"}{"content":"b"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Empty(t, decodeList(t, do(t, h, http.MethodGet, "/minds", "")))
}

func TestHTTP_ContextErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{
			name: "deadline",
			err:  fmt.Errorf("usecase list minds: %w", context.DeadlineExceeded),
			code: http.StatusGatewayTimeout,
		},
		{
			name: "canceled",
			err:  fmt.Errorf("usecase list minds: %w", context.Canceled),
			code: http.StatusRequestTimeout,
		},
		{
			name: "deadline reported by the storage driver",
			err:  errors.Join(entity.ErrStorage, context.DeadlineExceeded),
			code: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(contextUsecase{err: tt.err}).Routes()

			rec := do(t, h, http.MethodGet, "/minds", "")
			assert.Equal(t, tt.code, rec.Code)

			rec = do(t, h, http.MethodDelete, "/minds/1", "")
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHTTP_Healthz(t *testing.T) {
	rec := do(t, newTestHandler(t, nil), http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}

func TestHTTP_ConcurrentCreates(t *testing.T) {
	h := newTestHandler(t, nil)

	const workers = 32

	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			rec := do(t, h, http.MethodPost, "/minds", `{"content":"c"}`)
			if rec.Code != http.StatusOK {
				t.Errorf("unexpected status %d", rec.Code)
			}
		}()
	}

	wg.Wait()

	minds := decodeList(t, do(t, h, http.MethodGet, "/minds", ""))
	require.Len(t, minds, workers)

	seen := make(map[uint64]struct{}, workers)
	for _, m := range minds {
		seen[m.ID] = struct{}{}
	}
	assert.Len(t, seen, workers)
}
