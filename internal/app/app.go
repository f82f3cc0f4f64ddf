package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshstack-dev/go-backend/internal/cfg"
	v1Http "github.com/freshstack-dev/go-backend/internal/delivery/v1/http"
	minioRepo "github.com/freshstack-dev/go-backend/internal/repository/minio"
	"github.com/freshstack-dev/go-backend/internal/repository/pgdb"
	pgdbConv "github.com/freshstack-dev/go-backend/internal/repository/pgdb/converter/generated"
	redisRepo "github.com/freshstack-dev/go-backend/internal/repository/redis"
	redisConv "github.com/freshstack-dev/go-backend/internal/repository/redis/converter/generated"
	"github.com/freshstack-dev/go-backend/internal/usecase"
	"github.com/freshstack-dev/go-backend/pkg/clients"
	"github.com/freshstack-dev/go-backend/pkg/closer"
	"github.com/freshstack-dev/go-backend/pkg/e"
	"github.com/freshstack-dev/go-backend/pkg/logger"
	"github.com/freshstack-dev/go-backend/pkg/postgres"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App связывает конфигурацию, хранилища, usecase-слой и HTTP-сервер.
type App struct {
	cfg     *cfg.Config
	logger  logger.Logger
	closer  *closer.Closer
	httpSrv *v1Http.Server
}

// NewApp собирает все зависимости приложения.
// Ресурсы регистрируются в closer в порядке создания и закрываются в обратном.
func NewApp(config *cfg.Config, log logger.Logger) (*App, error) {
	c := closer.NewCloser(0)

	db, err := initPGDB(log, config)
	if err != nil {
		log.Errorf(err, "failed to initialize database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add("postgres pool", func(ctx context.Context) error {
		db.Close()
		return nil
	})

	redisClient := clients.NewRedisClient(config.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		log.Errorf(err, "failed to connect to redis")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	c.Add("redis client", func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	minioClient, err := clients.NewMinIOClient(config)
	if err != nil {
		log.Errorf(err, "failed to initialize minio client")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer minioCancel()
	if err := clients.EnsureBucket(minioCtx, minioClient, config.Minio.BucketName); err != nil {
		log.Errorf(err, "failed to initialize MinIO bucket")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	itemConv := pgdbConv.NewItemConverterImpl()
	infoConv := redisConv.NewItemInfoConverterImpl()

	itemRepo := pgdb.NewItemRepo(db.Pool, itemConv)
	cacheRepo := redisRepo.NewCacheRepo(redisClient, infoConv, config.Redis, log)
	reportRepo := minioRepo.NewReportRepo(minioClient, config.Minio)

	itemUC := usecase.NewItemUC(itemRepo, cacheRepo, db.Pool, log)
	reportUC := usecase.NewReportUC(itemRepo, reportRepo, log)

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log)
	router.Init(itemUC, reportUC)

	httpSrv := v1Http.NewServer(r, config.Http)
	c.Add("http server", httpSrv.Stop)

	return &App{
		cfg:     config,
		logger:  log,
		closer:  c,
		httpSrv: httpSrv,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала завершения или
// фатальной ошибки сервера, после чего закрывает ресурсы через closer.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on port %s", a.cfg.Http.Port)
		if err := a.httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Errorf(err, "HTTP server failed")
			errCh <- err
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.closer.Close(shutdownCtx); err != nil {
		a.logger.Errorf(err, "graceful shutdown finished with errors")
		if appErr == nil {
			appErr = err
		}
	} else {
		a.logger.Infof("Application shutdown complete")
	}

	return appErr
}

func initPGDB(logger logger.Logger, cfg *cfg.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
