package middleware

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"feedhub/domain"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func TestRequestIDMiddleware(t *testing.T) {
	tests := []struct {
		name            string
		requestIDHeader string
		expectGenerated bool
	}{
		{name: "generates request ID when none provided", expectGenerated: true},
		{name: "uses provided request ID", requestIDHeader: "existing-request-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestIDHeader != "" {
				req.Header.Set(HeaderRequestID, tt.requestIDHeader)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var fromContext string
			handler := func(c echo.Context) error {
				fromContext, _ = c.Request().Context().Value(logger.RequestIDKey).(string)
				return c.String(http.StatusOK, "ok")
			}

			require.NoError(t, RequestIDMiddleware()(handler)(c))

			fromHeader := rec.Header().Get(HeaderRequestID)
			assert.Equal(t, fromHeader, fromContext)
			if tt.expectGenerated {
				_, err := uuid.Parse(fromHeader)
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.requestIDHeader, fromHeader)
			}
		})
	}
}

func TestOwnerMiddleware(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantOwner  uuid.UUID
	}{
		{name: "valid owner", header: ownerID.String(), wantStatus: http.StatusOK, wantOwner: ownerID},
		{name: "surrounding whitespace", header: "  " + ownerID.String() + " ", wantStatus: http.StatusOK, wantOwner: ownerID},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", header: "alice", wantStatus: http.StatusUnauthorized},
		{name: "nil uuid", header: uuid.Nil.String(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/v1/feeds", nil)
			if tt.header != "" {
				req.Header.Set(HeaderUserID, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var got uuid.UUID
			handler := func(c echo.Context) error {
				var err error
				got, err = domain.GetOwnerID(c.Request().Context())
				if err != nil {
					return err
				}
				return c.NoContent(http.StatusOK)
			}

			err := OwnerMiddleware()(handler)(c)
			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOwner, got)
				return
			}

			var httpErr *echo.HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, tt.wantStatus, httpErr.Code)
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name      string
		path      string
		handler   echo.HandlerFunc
		wantLevel string
		wantLog   bool
	}{
		{
			name:      "success logs info",
			path:      "/v1/feeds",
			handler:   func(c echo.Context) error { return c.NoContent(http.StatusOK) },
			wantLevel: "INFO",
			wantLog:   true,
		},
		{
			name:      "client error logs warn",
			path:      "/v1/feeds",
			handler:   func(c echo.Context) error { return echo.NewHTTPError(http.StatusNotFound) },
			wantLevel: "WARN",
			wantLog:   true,
		},
		{
			name:      "server error logs error",
			path:      "/v1/feeds",
			handler:   func(c echo.Context) error { return errors.New("boom") },
			wantLevel: "ERROR",
			wantLog:   true,
		},
		{
			name:    "health is not logged",
			path:    "/v1/health",
			handler: func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = LoggingMiddleware(base)(tt.handler)(c)

			if !tt.wantLog {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), `"level":"`+tt.wantLevel+`"`)
			assert.Contains(t, buf.String(), `"msg":"request completed"`)
			assert.Contains(t, buf.String(), `"path":"`+tt.path+`"`)
		})
	}
}
