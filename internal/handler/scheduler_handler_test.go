package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"

	"github.com/JulianRR24/planningweb-push-scheduler/internal/domain"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/clock"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/cycle"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/dispatch"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/schedule"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/trigger"
	"github.com/JulianRR24/planningweb-push-scheduler/internal/service/window"
)

func setupRouter(t *testing.T, state domain.StateRepository, gateway domain.PushGateway) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	cycleService := cycle.NewService(
		state,
		dispatch.NewDispatcher(gateway, nil),
		clock.NewNormalizer(0),
		schedule.NewResolver(),
		window.NewEvaluator(),
		trigger.NewPlanner(),
		nil,
		nil,
		cycle.CredentialStatus{AppID: true, APIKey: true},
	)
	h := NewSchedulerHandler(cycleService)

	router := gin.New()
	router.Any("/trigger", h.Handle)
	return router
}

func emptySnapshot() *domain.StateSnapshot {
	return &domain.StateSnapshot{
		Notify: domain.DefaultNotifyConfig(),
	}
}

func TestHandleTriggerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := domain.NewMockStateRepository(ctrl)
	gateway := domain.NewMockPushGateway(ctrl)

	state.EXPECT().Snapshot(gomock.Any()).Return(emptySnapshot(), nil)

	router := setupRouter(t, state, gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected CORS origin *, got %q", origin)
	}

	var resp cycle.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Errorf("expected success response, got %+v", resp)
	}
	if resp.Message != "No devices subscribed" {
		t.Errorf("expected no-devices message, got %q", resp.Message)
	}
}

func TestHandleTriggerTimeOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := domain.NewMockStateRepository(ctrl)
	gateway := domain.NewMockPushGateway(ctrl)

	state.EXPECT().Snapshot(gomock.Any()).Return(emptySnapshot(), nil)

	router := setupRouter(t, state, gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger?at=2024-01-15T07:50:00Z", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp cycle.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Debug.NowMinute != 470 {
		t.Errorf("expected now_minute 470 for 07:50 override, got %d", resp.Debug.NowMinute)
	}
	if resp.Debug.DayKey != "mon" {
		t.Errorf("expected day_key mon, got %q", resp.Debug.DayKey)
	}
}

func TestHandleTriggerInvalidTimeOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := domain.NewMockStateRepository(ctrl)
	gateway := domain.NewMockPushGateway(ctrl)

	router := setupRouter(t, state, gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger?at=yesterday", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected error field in response, got %s", w.Body.String())
	}
}

func TestHandleTriggerCycleError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := domain.NewMockStateRepository(ctrl)
	gateway := domain.NewMockPushGateway(ctrl)

	state.EXPECT().Snapshot(gomock.Any()).Return(nil, errors.New("connection refused"))

	router := setupRouter(t, state, gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/trigger", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("expected error field in response, got %s", w.Body.String())
	}
}

func TestHandlePreflight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	state := domain.NewMockStateRepository(ctrl)
	gateway := domain.NewMockPushGateway(ctrl)

	router := setupRouter(t, state, gateway)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/trigger", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "ok" {
		t.Errorf("expected body ok, got %q", w.Body.String())
	}
	if methods := w.Header().Get("Access-Control-Allow-Methods"); methods == "" {
		t.Errorf("expected Access-Control-Allow-Methods header")
	}
}
