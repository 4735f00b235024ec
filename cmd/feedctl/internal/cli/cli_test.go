package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"feedhub/config"
	"feedhub/di"
	"feedhub/domain"
	"feedhub/driver/redis_stream"
	"feedhub/gateway/event_publisher_gateway"
	"feedhub/usecase/testutil"
	"feedhub/utils/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testStream = "feedhub:events:cli"

type stubParser struct {
	mu      sync.Mutex
	results map[string][]domain.RSSFeedEntry
	errs    map[string]error
}

func (p *stubParser) ParseFeed(_ context.Context, url domain.FeedURL) ([]domain.RSSFeedEntry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err, ok := p.errs[url.String()]; ok {
		return nil, err
	}
	return p.results[url.String()], nil
}

type stubValidator struct{ valid bool }

func (v stubValidator) IsValidFeed(context.Context, domain.FeedURL) (bool, error) {
	return v.valid, nil
}

type testEnv struct {
	store  *testutil.MemoryStore
	parser *stubParser
	redis  *miniredis.Miniredis
}

// useTestApplication swaps the database-backed application for an in-memory one
// sharing store and stream across command runs.
func useTestApplication(t *testing.T, withStream bool) *testEnv {
	t.Helper()
	logger.InitLogger()

	env := &testEnv{
		store:  testutil.NewMemoryStore(),
		parser: &stubParser{results: map[string][]domain.RSSFeedEntry{}, errs: map[string]error{}},
	}
	if withStream {
		env.redis = miniredis.RunT(t)
	}

	previous := openApplication
	t.Cleanup(func() { openApplication = previous })

	openApplication = func(ctx context.Context) (*application, error) {
		cfg := &config.Config{
			Ingestion: config.IngestionConfig{Workers: 2, QueueSize: 16, MaxAttempts: 1, RunTimeout: time.Second},
			Events:    config.EventsConfig{StreamKey: testStream},
		}
		container := di.NewApplicationComponentsWithAdapters(cfg, di.Adapters{
			FeedRepo:  env.store,
			ItemRepo:  env.store,
			Parser:    env.parser,
			Validator: stubValidator{valid: true},
		})

		var stream *redis_stream.RedisStreamDriver
		if env.redis != nil {
			stream = redis_stream.NewRedisStreamDriver(redis.NewClient(&redis.Options{Addr: env.redis.Addr()}), di.StreamMaxLen)
			forwarder := event_publisher_gateway.NewRedisStreamForwarder(stream, testStream)
			container.EventBus.Subscribe(event_publisher_gateway.ForwarderName, forwarder.Handle)
		}

		return &application{
			cfg:       cfg,
			container: container,
			stream:    stream,
			close: func() {
				container.Shutdown()
				if stream != nil {
					_ = stream.Close()
				}
			},
		}, nil
	}
	return env
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, "--color", "never"))
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestProcess_SyncReportsEachFeed(t *testing.T) {
	env := useTestApplication(t, false)
	ownerID := uuid.New()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	good := testutil.SeedFeed(t, env.store, ownerID, "Good", "https://good.example.com/rss")
	testutil.SeedFeed(t, env.store, ownerID, "Bad", "https://bad.example.com/rss")
	env.parser.results["https://good.example.com/rss"] = []domain.RSSFeedEntry{
		testutil.RSSEntry(t, "g-1", "One", "https://good.example.com/1", now),
		testutil.RSSEntry(t, "g-2", "Two", "https://good.example.com/2", now),
	}
	env.parser.errs["https://bad.example.com/rss"] = &domain.FetchError{URL: "https://bad.example.com/rss", StatusCode: 503}

	stdout, stderr, err := execute(t, "process", "--sync")

	require.Error(t, err)
	assert.Equal(t, "1 of 2 feeds failed", err.Error())
	assert.Contains(t, stdout, "[OK] Good: 2 item(s) processed")
	assert.Contains(t, stdout, "1 succeeded, 1 failed")
	assert.Contains(t, stderr, "[ERROR] Bad:")
	assert.Equal(t, 2, env.store.ItemCount(good.ID()))
}

func TestProcess_NoFeeds(t *testing.T) {
	useTestApplication(t, false)

	for _, args := range [][]string{{"process", "--sync"}, {"process"}} {
		stdout, _, err := execute(t, args...)
		require.NoError(t, err)
		assert.Equal(t, "No feeds to process.\n", stdout)
	}
}

func TestProcess_AsyncWaitsForQueue(t *testing.T) {
	env := useTestApplication(t, false)
	ownerID := uuid.New()
	feed := testutil.SeedFeed(t, env.store, ownerID, "Example", "https://example.com/rss")
	env.parser.results["https://example.com/rss"] = []domain.RSSFeedEntry{
		testutil.RSSEntry(t, "e-1", "One", "https://example.com/1", time.Now()),
	}

	stdout, _, err := execute(t, "process", "--user", ownerID.String())

	require.NoError(t, err)
	assert.Contains(t, stdout, "Queued 1 feed(s)")
	assert.Contains(t, stdout, "[OK] Ingestion queue drained")
	assert.Equal(t, 1, env.store.ItemCount(feed.ID()))

	stored, err := env.store.FindFeedByID(context.Background(), feed.ID())
	require.NoError(t, err)
	assert.True(t, stored.IsProcessed())
}

func TestRegisterAndList(t *testing.T) {
	useTestApplication(t, false)
	ownerID := uuid.New().String()

	stdout, _, err := execute(t, "register", "--user", ownerID, "--name", "Example", "--url", "https://example.com/rss.xml")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[OK] Registered Example")

	_, _, err = execute(t, "register", "--user", ownerID, "--name", "Again", "--url", "https://example.com/rss.xml")
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.ErrorIs(t, err, domain.ErrDuplicateFeedURL)

	stdout, _, err = execute(t, "list", "--user", ownerID)
	require.NoError(t, err)
	assert.Contains(t, stdout, "https://example.com/rss.xml")
	assert.Contains(t, stdout, "never")
	assert.Contains(t, stdout, "1 feed(s), 0 item(s)")

	stdout, _, err = execute(t, "list", "--user", uuid.New().String())
	require.NoError(t, err)
	assert.Equal(t, "No feeds registered.\n", stdout)
}

func TestRegister_InvalidUser(t *testing.T) {
	useTestApplication(t, false)

	_, _, err := execute(t, "register", "--user", "alice", "--name", "Example", "--url", "https://example.com/rss.xml")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "invalid --user"))
}

func TestEvents_ShowsForwardedRegistrations(t *testing.T) {
	useTestApplication(t, true)
	ownerID := uuid.New().String()

	_, _, err := execute(t, "register", "--user", ownerID, "--name", "Example", "--url", "https://example.com/rss.xml")
	require.NoError(t, err)

	stdout, _, err := execute(t, "events", "--count", "5")
	require.NoError(t, err)
	assert.Contains(t, stdout, domain.EventTypeFeedRegistered)
}

func TestEvents_StreamDisabled(t *testing.T) {
	useTestApplication(t, false)

	_, _, err := execute(t, "events")
	assert.ErrorIs(t, err, errStreamDisabled)
}

func TestVersion(t *testing.T) {
	SetVersion("1.2.3")
	t.Cleanup(func() { SetVersion("dev") })

	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "feedctl 1.2.3\n", stdout)
}
