package job

import (
	"context"
	"testing"
	"time"

	"feedhub/domain"
	"feedhub/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testFeed(t *testing.T, withID bool) domain.Feed {
	t.Helper()
	url, err := domain.NewFeedURL("https://example.com/rss.xml")
	require.NoError(t, err)
	name, err := domain.NewFeedName("Example")
	require.NoError(t, err)
	feed := domain.NewFeed(uuid.New(), name, url)
	if withID {
		require.NoError(t, feed.AssignID(uuid.New()))
	}
	return *feed
}

func TestRegistrationListener_Handle(t *testing.T) {
	ctrl := gomock.NewController(t)
	queue := mocks.NewMockIngestionQueuePort(ctrl)
	listener := NewRegistrationListener(queue)

	t.Run("queues registered feed", func(t *testing.T) {
		feed := testFeed(t, true)
		queue.EXPECT().Enqueue(gomock.Any(), feed.ID()).Return(true, nil).Times(1)

		assert.NoError(t, listener.Handle(context.Background(), domain.FeedRegistered{Feed: feed, At: time.Now()}))
	})

	t.Run("queue error is returned", func(t *testing.T) {
		feed := testFeed(t, true)
		queue.EXPECT().Enqueue(gomock.Any(), feed.ID()).Return(false, domain.ErrQueueFull).Times(1)

		assert.ErrorIs(t, listener.Handle(context.Background(), domain.FeedRegistered{Feed: feed, At: time.Now()}), domain.ErrQueueFull)
	})

	t.Run("feed without id is ignored", func(t *testing.T) {
		assert.NoError(t, listener.Handle(context.Background(), domain.FeedRegistered{Feed: testFeed(t, false), At: time.Now()}))
	})

	t.Run("processed events are ignored", func(t *testing.T) {
		assert.NoError(t, listener.Handle(context.Background(), domain.FeedProcessed{Feed: testFeed(t, true), At: time.Now()}))
	})
}

type stubTrigger struct {
	report domain.ProcessReport
	err    error
	sync   *bool
}

func (s *stubTrigger) ProcessAll(_ context.Context, sync bool) (domain.ProcessReport, error) {
	s.sync = &sync
	return s.report, s.err
}

func TestIngestionSweepJob(t *testing.T) {
	trigger := &stubTrigger{report: domain.ProcessReport{Outcomes: []domain.FeedProcessOutcome{
		{Status: domain.ProcessStatusQueued},
	}}}

	require.NoError(t, IngestionSweepJob(trigger)(context.Background()))
	require.NotNil(t, trigger.sync)
	assert.False(t, *trigger.sync, "the sweep always goes through the queue")

	trigger.err = domain.ErrQueueStopped
	assert.ErrorIs(t, IngestionSweepJob(trigger)(context.Background()), domain.ErrQueueStopped)
}

func TestRegistrationListener_SubscribeTo(t *testing.T) {
	ctrl := gomock.NewController(t)
	subscriber := mocks.NewMockEventSubscriberPort(ctrl)
	listener := NewRegistrationListener(mocks.NewMockIngestionQueuePort(ctrl))

	subscriber.EXPECT().Subscribe(RegistrationListenerName, gomock.Any()).Times(1)

	listener.SubscribeTo(subscriber)
}
