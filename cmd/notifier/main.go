package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/request-notifier/internal/api/handlers/event"
	"github.com/aliskhannn/request-notifier/internal/api/handlers/notification"
	"github.com/aliskhannn/request-notifier/internal/api/router"
	"github.com/aliskhannn/request-notifier/internal/api/server"
	"github.com/aliskhannn/request-notifier/internal/config"
	"github.com/aliskhannn/request-notifier/internal/dispatch"
	"github.com/aliskhannn/request-notifier/internal/kafka"
	"github.com/aliskhannn/request-notifier/internal/lock"
	"github.com/aliskhannn/request-notifier/internal/metrics"
	"github.com/aliskhannn/request-notifier/internal/rabbitmq/queue"
	"github.com/aliskhannn/request-notifier/internal/reactor"
	notifrepo "github.com/aliskhannn/request-notifier/internal/repository/notification"
	tokenrepo "github.com/aliskhannn/request-notifier/internal/repository/token"
	userrepo "github.com/aliskhannn/request-notifier/internal/repository/user"
	"github.com/aliskhannn/request-notifier/internal/service/lookup"
	"github.com/aliskhannn/request-notifier/internal/telemetry"
	"github.com/aliskhannn/request-notifier/internal/worker"
	"github.com/aliskhannn/request-notifier/migrations"
	"github.com/aliskhannn/request-notifier/pkg/fcm"
	"github.com/aliskhannn/request-notifier/pkg/migration"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	shutdownTracing, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init tracing")
	}

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if cfg.Database.Migrate {
		if err := migration.Run(ctx, db.Master, migrations.FS, migrations.Dir); err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to apply migrations")
		}
	}

	dbNum, err := strconv.Atoi(cfg.Redis.Database)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse redis database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, dbNum)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	push, err := fcm.NewClient(ctx, cfg.FCM.ProjectID, cfg.FCM.CredentialsFile)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to init fcm client")
	}

	notifications := notifrepo.NewRepository(db)
	lookups := lookup.NewService(
		tokenrepo.NewRepository(db),
		userrepo.NewRepository(db),
		rdb,
		cfg.Retry,
		cfg.Cache.TTL,
	)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.NewRecorder(reg)

	var (
		sources []worker.Source
		closers []closer
		sink    *queue.EventQueue
	)

	if cfg.RabbitMQ.Enabled {
		conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to connect to rabbitmq")
		}

		ch, err := conn.Channel()
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to open channel")
		}
		closers = append(closers, closer{"RabbitMQ channel", ch.Close}, closer{"RabbitMQ connection", conn.Close})

		sink, err = queue.NewEventQueue(ch, cfg.RabbitMQ, cfg.Retry)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to create event queue")
		}
		sources = append(sources, sink)
	}

	if cfg.Kafka.Enabled {
		stream := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID, cfg.Kafka.Topic)
		sources = append(sources, stream)
		closers = append([]closer{{"kafka reader", stream.Close}}, closers...)
	}

	var pipe *reactor.Pipeline
	if sink != nil {
		pipe = reactor.NewPipeline(lookups, lookups, push, sink, recorder, cfg.Retry)
	} else {
		pipe = reactor.NewPipeline(lookups, lookups, push, nil, recorder, cfg.Retry)
	}

	locker := lock.NewLocker(rdb, cfg.Dedup.LockTTL, cfg.Dedup.LockWait)
	dispatcher := dispatch.NewDispatcher(
		reactor.NewStatusReactor(pipe, notifications),
		reactor.NewMessageReactor(pipe, notifications, locker),
		val,
	)

	notifier := worker.NewNotifier(dispatcher, sources...)
	notifierDone := make(chan struct{})
	go func() {
		notifier.Run(ctx, cfg.Retry, cfg.Workers.Count)
		close(notifierDone)
	}()

	r := router.New(
		event.NewHandler(dispatcher, val),
		notification.NewHandler(notifications),
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	select {
	case <-notifierDone:
	case <-shutdownCtx.Done():
		zlog.Logger.Warn().Msg("timeout exceeded, workers still running")
	}

	for _, c := range closers {
		if err := c.close(); err != nil {
			zlog.Logger.Error().Err(err).Msgf("failed to close %s", c.name)
		}
	}

	if err := rdb.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close redis")
	}

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}

	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	if err := shutdownTracing(flushCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to flush traces")
	}
}

type closer struct {
	name  string
	close func() error
}
