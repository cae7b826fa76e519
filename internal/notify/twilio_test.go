package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aftab0008/car-end/internal/config"
	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/observability"
	"github.com/Aftab0008/car-end/pkg/e"
)

func testRequest() *domain.EmergencyRequest {
	return &domain.EmergencyRequest{
		Name:      "Jane Doe",
		Phone:     "+15550001",
		Issue:     "flat tire",
		Vehicle:   "Toyota Corolla",
		Latitude:  37.422,
		Longitude: -122.084,
	}
}

func testNotifier(baseURL string) *TwilioNotifier {
	n := NewTwilioNotifier(config.TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "secret",
		From:       "whatsapp:+14155238886",
		To:         "whatsapp:+15550002",
		Timeout:    5 * time.Second,
	}, slog.New(slog.NewTextHandler(io.Discard, nil)), observability.NewMetricsForTesting())
	n.baseURL = baseURL
	return n
}

func TestComposeMessage(t *testing.T) {
	t.Parallel()

	got := ComposeMessage(testRequest(), domain.ResolvedAddress("1600 Amphitheatre Pkwy"))

	assert.Equal(t,
		"New Emergency Request:\n"+
			"Name: Jane Doe\n"+
			"Phone: +15550001\n"+
			"Issue: flat tire\n"+
			"Vehicle: Toyota Corolla\n"+
			"Address: 1600 Amphitheatre Pkwy\n"+
			"Map: https://www.google.com/maps?q=37.422,-122.084",
		got)
}

func TestComposeMessage_DegradedAddress(t *testing.T) {
	t.Parallel()

	got := ComposeMessage(testRequest(), domain.DegradedAddress())
	assert.Contains(t, got, "Address: Unknown location")
	assert.Contains(t, got, "Map: https://www.google.com/maps?q=37.422,-122.084")
}

func TestMapURL_ZeroCoordinates(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://www.google.com/maps?q=0,0", MapURL(0, 0))
}

func TestTwilioNotifier_Send_OK(t *testing.T) {
	var gotForm map[string]string
	var gotPath string
	var gotAuthUser, gotAuthPass string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotForm = map[string]string{
			"From": r.PostFormValue("From"),
			"To":   r.PostFormValue("To"),
			"Body": r.PostFormValue("Body"),
		}
		gotPath = r.URL.Path
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1"}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	err := n.Send(context.Background(), testRequest(), domain.ResolvedAddress("Mountain View, CA"))
	require.NoError(t, err)

	assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
	assert.Equal(t, "AC123", gotAuthUser)
	assert.Equal(t, "secret", gotAuthPass)
	assert.Equal(t, "whatsapp:+14155238886", gotForm["From"])
	assert.Equal(t, "whatsapp:+15550002", gotForm["To"])
	assert.Contains(t, gotForm["Body"], "Name: Jane Doe")
	assert.Contains(t, gotForm["Body"], "Address: Mountain View, CA")
	assert.Contains(t, gotForm["Body"], "Map: https://www.google.com/maps?q=37.422,-122.084")
}

func TestTwilioNotifier_Send_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003,"message":"Authenticate"}`))
	}))
	defer srv.Close()

	n := testNotifier(srv.URL)
	err := n.Send(context.Background(), testRequest(), domain.DegradedAddress())
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrDelivery))
}

func TestTwilioNotifier_Send_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	n := testNotifier(srv.URL)
	err := n.Send(context.Background(), testRequest(), domain.DegradedAddress())
	require.Error(t, err)
	assert.True(t, errors.Is(err, e.ErrDelivery))
}
