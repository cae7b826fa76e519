package emergency_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Aftab0008/car-end/internal/api/handlers/http/emergency"
	mock_emergency "github.com/Aftab0008/car-end/internal/api/handlers/http/emergency/mocks"
	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func postEmergency(h *emergency.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/emergency", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.SubmitEmergency(rr, req)
	return rr
}

func TestSubmitEmergency_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_emergency.NewMockEmergencyIntake(ctrl)
	h := emergency.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req domain.CreateEmergencyRequest) error {
			if req.Name != "Jane Doe" || req.Latitude == nil || *req.Latitude != 37.422 {
				t.Fatalf("payload not bound: %+v", req)
			}
			return nil
		}).
		Times(1)

	rr := postEmergency(h, `{"name":"Jane Doe","phone":"+15550001","issue":"flat tire","vehicle":"Toyota Corolla","latitude":37.422,"longitude":-122.084}`)

	if rr.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "Notification sent" {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

func TestSubmitEmergency_MalformedJSON(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Submit expectation: the service must not be reached
	svc := mock_emergency.NewMockEmergencyIntake(ctrl)
	h := emergency.NewHandler(newTestLogger(), svc)

	rr := postEmergency(h, `{"name":`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "Invalid or missing required fields" {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

func TestSubmitEmergency_NonNumericCoordinate(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_emergency.NewMockEmergencyIntake(ctrl)
	h := emergency.NewHandler(newTestLogger(), svc)

	// latitude as a JSON string does not bind to *float64
	rr := postEmergency(h, `{"name":"Jane","phone":"+1","issue":"x","vehicle":"y","latitude":"37.4","longitude":-122.084}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
}

func TestSubmitEmergency_ValidationError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock_emergency.NewMockEmergencyIntake(ctrl)
	h := emergency.NewHandler(newTestLogger(), svc)

	svc.EXPECT().
		Submit(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service.Emergency.Submit: %w", e.ErrInvalidRequest)).
		Times(1)

	rr := postEmergency(h, `{"name":"  ","phone":"+15550001","issue":"flat tire","vehicle":"Toyota Corolla","latitude":37.422,"longitude":-122.084}`)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "Invalid or missing required fields" {
		t.Fatalf("unexpected body: %q", rr.Body.String())
	}
}

func TestSubmitEmergency_ServerErrorsAreGeneric(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
	}{
		{"persistence", fmt.Errorf("postgres.Emergency.Create: %w", e.ErrPersistence)},
		{"delivery", fmt.Errorf("notify.Twilio.Send: status 401: %w", e.ErrDelivery)},
		{"unknown", errors.New("twilio said: secret detail")},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := mock_emergency.NewMockEmergencyIntake(ctrl)
			h := emergency.NewHandler(newTestLogger(), svc)

			svc.EXPECT().Submit(gomock.Any(), gomock.Any()).Return(tc.err).Times(1)

			rr := postEmergency(h, `{"name":"Jane","phone":"+1","issue":"x","vehicle":"y","latitude":1,"longitude":2}`)

			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status=%d body=%s", rr.Code, rr.Body.String())
			}
			if rr.Body.String() != "Internal server error" {
				t.Fatalf("provider detail leaked: %q", rr.Body.String())
			}
		})
	}
}
