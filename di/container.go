package di

import (
	"context"

	"feedhub/config"
	"feedhub/driver/feed_db"
	"feedhub/driver/feed_http"
	"feedhub/driver/redis_stream"
	"feedhub/gateway/event_publisher_gateway"
	"feedhub/gateway/feed_parser_gateway"
	"feedhub/gateway/feed_store_gateway"
	"feedhub/gateway/feed_validator_gateway"
	"feedhub/job"
	"feedhub/port/feed_parser_port"
	"feedhub/port/feed_store_port"
	"feedhub/port/feed_validator_port"
	"feedhub/usecase/dashboard_usecase"
	"feedhub/usecase/ingest_feed_usecase"
	"feedhub/usecase/list_feed_items_usecase"
	"feedhub/usecase/list_feeds_usecase"
	"feedhub/usecase/process_feeds_usecase"
	"feedhub/usecase/register_feed_usecase"
	"feedhub/utils/logger"
	"feedhub/utils/rate_limiter"
)

const eventBufferSize = 256

type ApplicationComponents struct {
	RegisterFeedUsecase  *register_feed_usecase.RegisterFeedUsecase
	IngestFeedUsecase    *ingest_feed_usecase.IngestFeedUsecase
	ListFeedsUsecase     *list_feeds_usecase.ListFeedsUsecase
	ListFeedItemsUsecase *list_feed_items_usecase.ListFeedItemsUsecase
	DashboardUsecase     *dashboard_usecase.DashboardUsecase
	ProcessFeedsUsecase  *process_feeds_usecase.ProcessFeedsUsecase

	EventBus       *event_publisher_gateway.EventBus
	IngestionQueue *job.IngestionQueue
	Scheduler      *job.JobScheduler

	FeedDBRepository *feed_db.FeedDBRepository
}

// Adapters are the outward-facing collaborators the usecases are built on.
type Adapters struct {
	FeedRepo  feed_store_port.FeedRepositoryPort
	ItemRepo  feed_store_port.FeedItemRepositoryPort
	Parser    feed_parser_port.FeedParserPort
	Validator feed_validator_port.FeedValidatorPort
}

// NewApplicationComponents wires the production graph over a Postgres pool.
// stream may be nil, in which case events stay in process.
func NewApplicationComponents(cfg *config.Config, pool feed_db.PgxIface, stream *redis_stream.RedisStreamDriver) *ApplicationComponents {
	limiter := rate_limiter.NewHostRateLimiter(cfg.Fetch.HostInterval)
	fetcher := feed_http.NewFetcher(cfg.Fetch, limiter)
	store := feed_store_gateway.NewFeedStoreGateway(pool)

	components := NewApplicationComponentsWithAdapters(cfg, Adapters{
		FeedRepo:  store,
		ItemRepo:  store,
		Parser:    feed_parser_gateway.NewFeedParserGateway(fetcher, cfg.Fetch.ParserTimeout),
		Validator: feed_validator_gateway.NewFeedValidatorGateway(fetcher, cfg.Fetch.ValidatorTimeout),
	})
	components.FeedDBRepository = feed_db.NewFeedDBRepository(pool)

	if stream != nil {
		forwarder := event_publisher_gateway.NewRedisStreamForwarder(stream, cfg.Events.StreamKey)
		components.EventBus.Subscribe(event_publisher_gateway.ForwarderName, forwarder.Handle)
	}

	return components
}

// NewApplicationComponentsWithAdapters wires usecases, the event bus, the ingestion queue
// and the periodic sweep over the given adapters.
func NewApplicationComponentsWithAdapters(cfg *config.Config, adapters Adapters) *ApplicationComponents {
	bus := event_publisher_gateway.NewEventBus(eventBufferSize)

	ingestFeedUsecase := ingest_feed_usecase.NewIngestFeedUsecase(adapters.FeedRepo, adapters.ItemRepo, adapters.Parser, bus)
	queue := job.NewIngestionQueue(ingestFeedUsecase, cfg.Ingestion)
	processFeedsUsecase := process_feeds_usecase.NewProcessFeedsUsecase(adapters.FeedRepo, ingestFeedUsecase, queue, cfg.Ingestion.Workers)

	job.NewRegistrationListener(queue).SubscribeTo(bus)

	scheduler := job.NewJobScheduler()
	scheduler.Add(job.Job{
		Name:     job.IngestionSweepJobName,
		Interval: cfg.Ingestion.SweepInterval,
		Timeout:  cfg.Ingestion.SweepTimeout,
		Fn:       job.IngestionSweepJob(processFeedsUsecase),
	})

	return &ApplicationComponents{
		RegisterFeedUsecase:  register_feed_usecase.NewRegisterFeedUsecase(adapters.FeedRepo, adapters.Validator, bus),
		IngestFeedUsecase:    ingestFeedUsecase,
		ListFeedsUsecase:     list_feeds_usecase.NewListFeedsUsecase(adapters.FeedRepo),
		ListFeedItemsUsecase: list_feed_items_usecase.NewListFeedItemsUsecase(adapters.FeedRepo, adapters.ItemRepo),
		DashboardUsecase:     dashboard_usecase.NewDashboardUsecase(adapters.FeedRepo, adapters.ItemRepo),
		ProcessFeedsUsecase:  processFeedsUsecase,
		EventBus:             bus,
		IngestionQueue:       queue,
		Scheduler:            scheduler,
	}
}

// Start runs the queue workers and, when withSweep is set, the periodic sweep.
func (c *ApplicationComponents) Start(ctx context.Context, withSweep bool) {
	c.IngestionQueue.Start()
	if withSweep {
		c.Scheduler.Start(ctx)
	}
}

// Shutdown waits for the scheduler, stops the queue and drains the event bus.
// Cancel the context passed to Start first.
func (c *ApplicationComponents) Shutdown() {
	c.Scheduler.Shutdown()
	c.IngestionQueue.Stop()
	c.EventBus.Close()
	logger.Logger.Info("Application components stopped")
}
