package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"feedhub/config"
	"feedhub/di"
	"feedhub/domain"
	"feedhub/job"
	"feedhub/middleware"
	"feedhub/mocks"
	"feedhub/rest/rest_feeds"
	"feedhub/usecase/testutil"
	"feedhub/utils/logger"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

type testServer struct {
	echo      *echo.Echo
	store     *testutil.MemoryStore
	parser    *mocks.MockFeedParserPort
	validator *mocks.MockFeedValidatorPort
	container *di.ApplicationComponents
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	cfg := &config.Config{
		Server: config.ServerConfig{WriteTimeout: 5 * time.Second},
		Ingestion: config.IngestionConfig{
			Workers:      2,
			QueueSize:    16,
			MaxAttempts:  1,
			RunTimeout:   time.Second,
			RetryBackoff: time.Millisecond,
		},
	}

	store := testutil.NewMemoryStore()
	parser := mocks.NewMockFeedParserPort(ctrl)
	validator := mocks.NewMockFeedValidatorPort(ctrl)
	container := di.NewApplicationComponentsWithAdapters(cfg, di.Adapters{
		FeedRepo:  store,
		ItemRepo:  store,
		Parser:    parser,
		Validator: validator,
	})
	t.Cleanup(container.Shutdown)

	e := echo.New()
	RegisterRoutes(e, container, cfg)

	return &testServer{echo: e, store: store, parser: parser, validator: validator, container: container}
}

func (s *testServer) do(t *testing.T, method, target string, ownerID uuid.UUID, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if ownerID != uuid.Nil {
		req.Header.Set(middleware.HeaderUserID, ownerID.String())
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestRegisterFeedRoute(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name       string
		owner      uuid.UUID
		body       string
		seedURL    string
		mockSetup  func(v *mocks.MockFeedValidatorPort)
		wantStatus int
		wantCode   string
	}{
		{
			name:  "created",
			owner: ownerID,
			body:  `{"name":"Example","url":"https://example.com/rss.xml"}`,
			mockSetup: func(v *mocks.MockFeedValidatorPort) {
				v.EXPECT().IsValidFeed(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing owner",
			body:       `{"name":"Example","url":"https://example.com/rss.xml"}`,
			mockSetup:  func(v *mocks.MockFeedValidatorPort) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed body",
			owner:      ownerID,
			body:       `{"name":`,
			mockSetup:  func(v *mocks.MockFeedValidatorPort) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "blank name",
			owner:      ownerID,
			body:       `{"name":"  ","url":"https://example.com/rss.xml"}`,
			mockSetup:  func(v *mocks.MockFeedValidatorPort) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_ERROR",
		},
		{
			name:       "duplicate url",
			owner:      ownerID,
			body:       `{"name":"Again","url":"https://example.com/rss.xml"}`,
			seedURL:    "https://example.com/rss.xml",
			mockSetup:  func(v *mocks.MockFeedValidatorPort) {},
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_FEED",
		},
		{
			name:  "not a feed",
			owner: ownerID,
			body:  `{"name":"Example","url":"https://example.com/index.html"}`,
			mockSetup: func(v *mocks.MockFeedValidatorPort) {
				v.EXPECT().IsValidFeed(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "INVALID_FEED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t)
			if tt.seedURL != "" {
				testutil.SeedFeed(t, srv.store, uuid.New(), "Seeded", tt.seedURL)
			}
			tt.mockSetup(srv.validator)

			rec := srv.do(t, http.MethodPost, "/v1/feeds", tt.owner, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())

			if tt.wantStatus == http.StatusCreated {
				feed := decode[rest_feeds.FeedResponse](t, rec)
				assert.Equal(t, "Example", feed.Name)
				assert.Equal(t, "https://example.com/rss.xml", feed.URL)
				assert.Nil(t, feed.LastProcessedAt)
				_, err := uuid.Parse(feed.ID)
				assert.NoError(t, err)
			}
			if tt.wantCode != "" {
				body := decode[map[string]any](t, rec)
				assert.Equal(t, tt.wantCode, body["code"])
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestListRoutes_ScopedToOwner(t *testing.T) {
	srv := newTestServer(t)
	alice, bob := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	aliceFeed := testutil.SeedFeed(t, srv.store, alice, "Alice Feed", "https://alice.example.com/rss")
	bobFeed := testutil.SeedFeed(t, srv.store, bob, "Bob Feed", "https://bob.example.com/rss")
	testutil.SeedItem(t, srv.store, aliceFeed.ID(), "a-1", "Older", "https://alice.example.com/1", now.Add(-time.Hour))
	testutil.SeedItem(t, srv.store, aliceFeed.ID(), "a-2", "Newer", "https://alice.example.com/2", now)
	testutil.SeedItem(t, srv.store, bobFeed.ID(), "b-1", "Bob post", "https://bob.example.com/1", now)

	rec := srv.do(t, http.MethodGet, "/v1/feeds", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	feeds := decode[[]rest_feeds.FeedResponse](t, rec)
	require.Len(t, feeds, 1)
	assert.Equal(t, "Alice Feed", feeds[0].Name)

	rec = srv.do(t, http.MethodGet, "/v1/feeds/items", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	items := decode[[]rest_feeds.FeedItemResponse](t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Title)
	assert.Equal(t, "Alice Feed", items[0].FeedName)
	assert.Equal(t, "a-2", items[0].EntryID)

	rec = srv.do(t, http.MethodGet, "/v1/feeds/"+aliceFeed.ID().String()+"/items", alice, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]rest_feeds.FeedItemResponse](t, rec), 2)

	rec = srv.do(t, http.MethodGet, "/v1/feeds", uuid.New(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListItemsForFeedRoute_Errors(t *testing.T) {
	srv := newTestServer(t)
	alice, bob := uuid.New(), uuid.New()
	bobFeed := testutil.SeedFeed(t, srv.store, bob, "Bob Feed", "https://bob.example.com/rss")

	tests := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "other owner's feed", target: "/v1/feeds/" + bobFeed.ID().String() + "/items", wantStatus: http.StatusForbidden},
		{name: "unknown feed", target: "/v1/feeds/" + uuid.New().String() + "/items", wantStatus: http.StatusNotFound},
		{name: "malformed id", target: "/v1/feeds/not-a-uuid/items", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(t, http.MethodGet, tt.target, alice, "")
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
		})
	}
}

func TestProcessRoutes(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("sync run reports each feed", func(t *testing.T) {
		srv := newTestServer(t)
		ownerID := uuid.New()
		feed := testutil.SeedFeed(t, srv.store, ownerID, "Example", "https://example.com/rss")
		srv.parser.EXPECT().ParseFeed(gomock.Any(), gomock.Any()).Return([]domain.RSSFeedEntry{
			testutil.RSSEntry(t, "e-1", "First", "https://example.com/1", now),
			testutil.RSSEntry(t, "e-2", "Second", "https://example.com/2", now),
		}, nil)

		rec := srv.do(t, http.MethodPost, "/v1/feeds/process?sync=true", ownerID, "")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		report := decode[rest_feeds.ProcessReportResponse](t, rec)
		assert.True(t, report.Sync)
		assert.Equal(t, 1, report.FeedsTotal)
		assert.Equal(t, 1, report.Succeeded)
		require.Len(t, report.Results, 1)
		assert.Equal(t, feed.ID().String(), report.Results[0].FeedID)
		assert.Equal(t, 2, report.Results[0].ItemsProcessed)
		assert.Equal(t, 2, srv.store.ItemCount(feed.ID()))
	})

	t.Run("sync failure is reported without leaking the cause", func(t *testing.T) {
		srv := newTestServer(t)
		ownerID := uuid.New()
		testutil.SeedFeed(t, srv.store, ownerID, "Example", "https://example.com/rss")
		srv.parser.EXPECT().ParseFeed(gomock.Any(), gomock.Any()).
			Return(nil, &domain.FetchError{URL: "https://example.com/rss", StatusCode: http.StatusBadGateway})

		rec := srv.do(t, http.MethodPost, "/v1/feeds/process?sync=true", ownerID, "")
		require.Equal(t, http.StatusOK, rec.Code)

		report := decode[rest_feeds.ProcessReportResponse](t, rec)
		assert.Equal(t, 1, report.Failed)
		require.Len(t, report.Results, 1)
		assert.Equal(t, "feed source could not be read", report.Results[0].Error)
	})

	t.Run("async run queues feeds", func(t *testing.T) {
		srv := newTestServer(t)
		ownerID := uuid.New()
		feed := testutil.SeedFeed(t, srv.store, ownerID, "Example", "https://example.com/rss")
		srv.parser.EXPECT().ParseFeed(gomock.Any(), gomock.Any()).Return([]domain.RSSFeedEntry{
			testutil.RSSEntry(t, "e-1", "First", "https://example.com/1", now),
		}, nil)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		srv.container.Start(ctx, false)

		rec := srv.do(t, http.MethodPost, "/v1/feeds/"+feed.ID().String()+"/process", ownerID, "")
		require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())

		report := decode[rest_feeds.ProcessReportResponse](t, rec)
		assert.False(t, report.Sync)
		assert.Equal(t, 1, report.Queued)

		assert.Eventually(t, func() bool {
			return srv.store.ItemCount(feed.ID()) == 1
		}, 2*time.Second, 10*time.Millisecond)
	})

	t.Run("no feeds", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/v1/feeds/process?sync=true", uuid.New(), "")
		require.Equal(t, http.StatusOK, rec.Code)
		report := decode[rest_feeds.ProcessReportResponse](t, rec)
		assert.Equal(t, "No feeds to process.", report.Message)
		assert.Empty(t, report.Results)
	})

	t.Run("invalid sync flag", func(t *testing.T) {
		srv := newTestServer(t)

		rec := srv.do(t, http.MethodPost, "/v1/feeds/process?sync=maybe", uuid.New(), "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("single feed of another owner", func(t *testing.T) {
		srv := newTestServer(t)
		feed := testutil.SeedFeed(t, srv.store, uuid.New(), "Example", "https://example.com/rss")

		rec := srv.do(t, http.MethodPost, "/v1/feeds/"+feed.ID().String()+"/process?sync=true", uuid.New(), "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestDashboardStatsRoute(t *testing.T) {
	srv := newTestServer(t)
	ownerID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	feed := testutil.SeedFeed(t, srv.store, ownerID, "Example", "https://example.com/rss")
	testutil.SeedItem(t, srv.store, feed.ID(), "e-1", "First", "https://example.com/1", now)

	rec := srv.do(t, http.MethodGet, "/v1/dashboard/stats", ownerID, "")
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[DashboardStatsResponse](t, rec)
	assert.Equal(t, 1, stats.FeedsCount)
	assert.Equal(t, 1, stats.FeedItemsCount)
	assert.Equal(t, "Example", stats.LatestFeedName)
	assert.Nil(t, stats.LastProcessedAt)

	rec = srv.do(t, http.MethodGet, "/v1/dashboard/stats", uuid.Nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/v1/health", uuid.Nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	health := decode[HealthResponse](t, rec)
	assert.Equal(t, "healthy", health.Status)
	require.Len(t, health.Jobs, 1)
	assert.Equal(t, job.IngestionSweepJobName, health.Jobs[0].Name)
	assert.Zero(t, health.Jobs[0].Runs, "scheduler is not started in tests")
	assert.NotEmpty(t, rec.Header().Get(middleware.HeaderRequestID))

	rec = srv.do(t, http.MethodGet, "/metrics", uuid.Nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
