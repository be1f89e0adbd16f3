package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gauravmalhotra04/raiden-ai/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const mockCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, gcalendar.TokenFileName)

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), filepath.Join(dir, "missing.json"))
		if err == nil || !strings.Contains(err.Error(), "gcal-auth") {
			t.Fatalf("expected missing token error, got %v", err)
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0o600)
		defer os.Remove(tokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0o600)
		defer os.Remove(tokenPath)

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds), tokenPath); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("from file uses sibling token", func(t *testing.T) {
		credsPath := filepath.Join(dir, "credentials.json")
		os.WriteFile(credsPath, []byte(mockCreds), 0o600)
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer"}`), 0o600)
		defer os.Remove(tokenPath)

		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), credsPath); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("from missing file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), filepath.Join(dir, "nope.json")); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestOAuthConfigFromJSON(t *testing.T) {
	cfg, err := gcalendar.OAuthConfigFromJSON([]byte(mockCreds))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ClientID != "test-client-id.apps.googleusercontent.com" || cfg.RedirectURL != "http://localhost" {
		t.Errorf("unexpected config: %+v", cfg)
	}

	if _, err := gcalendar.OAuthConfigFromJSON([]byte(`{"installed":{}}`)); err == nil {
		t.Errorf("expected error for missing client id")
	}
}

func TestCreateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodPost {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "htmlLink": "https://calendar.google.com/event-uri", "status": "confirmed"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
		Summary:   "Submit essay",
		StartTime: time.Now(),
		EndTime:   time.Now().Add(30 * time.Minute),
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}
	if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected event: %+v", event)
	}

	if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "broken"}); err == nil {
		t.Fatalf("expected create event error")
	}
}

func TestUpdateEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/event-123":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"id": "event-123", "summary": "Moved"}`))
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error": {"code": 404, "message": "Not Found"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	event, err := client.UpdateEvent(context.Background(), "event-123", gcalendar.CreateEventRequest{Summary: "Moved"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Summary != "Moved" {
		t.Errorf("unexpected summary: %s", event.Summary)
	}

	if _, err := client.UpdateEvent(context.Background(), "gone", gcalendar.CreateEventRequest{}); err != gcalendar.ErrEventNotFound {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		switch r.URL.Path {
		case "/calendar/v3/calendars/primary/events/event-123":
			w.WriteHeader(http.StatusNoContent)
		case "/calendar/v3/calendars/primary/events/gone":
			w.WriteHeader(http.StatusGone)
			w.Write([]byte(`{"error": {"code": 410, "message": "Resource has been deleted"}}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	tests := []struct {
		name    string
		eventID string
		wantErr bool
	}{
		{name: "existing", eventID: "event-123"},
		{name: "already deleted", eventID: "gone"},
		{name: "server error", eventID: "boom", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.DeleteEvent(context.Background(), "", tt.eventID)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeleteEvent() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
