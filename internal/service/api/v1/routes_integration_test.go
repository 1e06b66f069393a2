package v1

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/darkkaiser/task-engine/internal/config"
	"github.com/darkkaiser/task-engine/internal/engine"
	apperrors "github.com/darkkaiser/task-engine/internal/pkg/errors"
	apiauth "github.com/darkkaiser/task-engine/internal/service/api/auth"
	"github.com/darkkaiser/task-engine/internal/service/api/model/response"
	"github.com/darkkaiser/task-engine/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIntegrationEngine은 통합 테스트에서 사용하는 TaskEngine 더블입니다.
type fakeIntegrationEngine struct {
	mu sync.Mutex

	addTaskErr error
	nextID     int64

	stopped     []int64
	terminated  []int64
	stopAllHits int32
	idle        bool
}

func (f *fakeIntegrationEngine) AddTask(taskType int, args ...engine.Box) (int64, error) {
	if f.addTaskErr != nil {
		return 0, f.addTaskErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	return f.nextID, nil
}

func (f *fakeIntegrationEngine) StopByID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopped = append(f.stopped, id)
}

func (f *fakeIntegrationEngine) TerminateByID(id int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terminated = append(f.terminated, id)
}

func (f *fakeIntegrationEngine) StopAll() {
	atomic.AddInt32(&f.stopAllHits, 1)
}

func (f *fakeIntegrationEngine) IsIdle() bool {
	return f.idle
}

// =============================================================================
// Integration Tests - Success Scenarios
// =============================================================================

// TestV1API_Success_DispatchTask 유효한 작업 디스패치 요청이 성공하는지 검증합니다.
func TestV1API_Success_DispatchTask(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)

	tests := []struct {
		name           string
		appKeyLocation string // "header" or "query"
		body           string
	}{
		{
			name:           "Header 인증, args 없음",
			appKeyLocation: "header",
			body:           `{}`,
		},
		{
			name:           "Query 인증, args 포함",
			appKeyLocation: "query",
			body:           `{"args":["https://example.com", 1, true]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eng := &fakeIntegrationEngine{}
			h := handler.New(eng)
			RegisterRoutes(e, h, authenticator)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1", bytes.NewReader([]byte(tt.body)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

			testAppKey := "test-app-key"
			if tt.appKeyLocation == "header" {
				req.Header.Set("X-App-Key", testAppKey)
			} else {
				q := req.URL.Query()
				q.Add("app_key", testAppKey)
				req.URL.RawQuery = q.Encode()
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp response.TaskDispatchedResponse
			err := json.Unmarshal(rec.Body.Bytes(), &resp)
			require.NoError(t, err)
			assert.Equal(t, 0, resp.ResultCode)
			assert.Greater(t, resp.TaskID, int64(0))
		})
	}
}

// TestV1API_Success_TaskControl 작업 제어(중지/강제종료/전체중지) 엔드포인트를 검증합니다.
func TestV1API_Success_TaskControl(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)
	eng := &fakeIntegrationEngine{}
	h := handler.New(eng)
	RegisterRoutes(e, h, authenticator)

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Header.Set("X-App-Key", "test-app-key")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/api/v1/tasks/5/stop")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, eng.stopped, int64(5))

	rec = do(http.MethodPost, "/api/v1/tasks/5/terminate")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, eng.terminated, int64(5))

	rec = do(http.MethodPost, "/api/v1/tasks/stop-all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int32(1), atomic.LoadInt32(&eng.stopAllHits))
}

// TestV1API_Success_EngineStatus 엔진 상태 조회 엔드포인트를 검증합니다.
func TestV1API_Success_EngineStatus(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)
	eng := &fakeIntegrationEngine{idle: true}
	h := handler.New(eng)
	RegisterRoutes(e, h, authenticator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", nil)
	req.Header.Set("X-App-Key", "test-app-key")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.EngineStatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Idle)
}

// =============================================================================
// Integration Tests - Failure Scenarios
// =============================================================================

// TestV1API_Failure_Authentication 인증 실패 시나리오를 검증합니다.
func TestV1API_Failure_Authentication(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)
	h := handler.New(&fakeIntegrationEngine{})
	RegisterRoutes(e, h, authenticator)

	tests := []struct {
		name         string
		appKeyHeader string
		expectStatus int
	}{
		{"AppKey 누락", "", http.StatusBadRequest},
		{"잘못된 AppKey", "invalid-key", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1", bytes.NewReader([]byte(`{}`)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.appKeyHeader != "" {
				req.Header.Set("X-App-Key", tt.appKeyHeader)
			}

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

// TestV1API_Failure_Validation 요청 데이터 검증 및 Content-Type 검증 실패를 테스트합니다.
func TestV1API_Failure_Validation(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)
	h := handler.New(&fakeIntegrationEngine{})
	RegisterRoutes(e, h, authenticator)

	tests := []struct {
		name         string
		path         string
		contentType  string
		body         string
		expectStatus int
	}{
		{
			name:         "잘못된 type 파라미터",
			path:         "/api/v1/tasks/not-a-number",
			contentType:  echo.MIMEApplicationJSON,
			body:         `{}`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "잘못된 JSON 형식",
			path:         "/api/v1/tasks/1",
			contentType:  echo.MIMEApplicationJSON,
			body:         `INVALID_JSON_{{`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "Content-Type 불일치 (Text)",
			path:         "/api/v1/tasks/1",
			contentType:  echo.MIMETextPlain,
			body:         "Plain Text",
			expectStatus: http.StatusUnsupportedMediaType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, tt.path, bytes.NewReader([]byte(tt.body)))
			if tt.contentType != "" {
				req.Header.Set(echo.HeaderContentType, tt.contentType)
			}
			req.Header.Set("X-App-Key", "test-app-key")

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

// TestV1API_Failure_MethodNotAllowed 지원하지 않는 메서드 요청 시 처리를 검증합니다.
func TestV1API_Failure_MethodNotAllowed(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)
	h := handler.New(&fakeIntegrationEngine{})
	RegisterRoutes(e, h, authenticator)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestV1API_Failure_TaskTypeNotRegistered 등록되지 않은 작업 타입 디스패치 시 404 처리를 검증합니다.
func TestV1API_Failure_TaskTypeNotRegistered(t *testing.T) {
	e, _, authenticator := setupIntegrationTest(t)

	eng := &fakeIntegrationEngine{
		addTaskErr: apperrors.New(apperrors.NotRegistered, "등록되지 않음"),
	}
	h := handler.New(eng)
	RegisterRoutes(e, h, authenticator)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/999", bytes.NewReader([]byte(`{}`)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set("X-App-Key", "test-app-key")

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// =============================================================================
// Helpers
// =============================================================================

func setupIntegrationTest(t *testing.T) (*echo.Echo, *config.AppConfig, *apiauth.Authenticator) {
	t.Helper()
	appConfig := createTestAppConfig()
	authenticator := apiauth.NewAuthenticator(appConfig)
	e := echo.New()
	return e, appConfig, authenticator
}

// TestV1API_ConcurrentRequests 동시 요청 처리 능력을 검증합니다.
func TestV1API_ConcurrentRequests(t *testing.T) {
	// Setup
	appConfig := createTestAppConfig()
	authenticator := apiauth.NewAuthenticator(appConfig)
	e := echo.New()
	eng := &fakeIntegrationEngine{}
	h := handler.New(eng)
	RegisterRoutes(e, h, authenticator)

	const numRequests = 20
	var wg sync.WaitGroup
	wg.Add(numRequests)

	var successCount int32

	// Execute
	for i := 0; i < numRequests; i++ {
		go func() {
			defer wg.Done()

			req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks/1", bytes.NewReader([]byte(`{}`)))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			req.Header.Set("X-App-Key", "test-app-key")
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			if rec.Code == http.StatusOK {
				atomic.AddInt32(&successCount, 1)
			} else {
				t.Logf("Request failed with status: %d, body: %s", rec.Code, rec.Body.String())
			}
		}()
	}

	wg.Wait()

	// Verify
	assert.Equal(t, int32(numRequests), atomic.LoadInt32(&successCount), "모든 동시 요청이 성공해야 합니다")
}
