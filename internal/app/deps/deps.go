package deps

import (
	"context"
	"petminder/internal/config"
	"petminder/internal/core/domain/access"
	c "petminder/internal/core/domain/common"
	dl "petminder/internal/core/domain/logging"
	drl "petminder/internal/core/domain/rate_limiter"
	"petminder/internal/core/domain/reminder"
	duow "petminder/internal/core/domain/unit_of_work"
	"petminder/internal/core/domain/user"
	uow "petminder/internal/db/unit_of_work"
	accesstoken "petminder/internal/implementations/access_token"
	"petminder/internal/implementations/identity"
	"petminder/internal/implementations/logging"
	"petminder/internal/implementations/metrics"
	passwordhasher "petminder/internal/implementations/password_hasher"
	ratelimiter "petminder/internal/implementations/rate_limiter"
	tokenrevoker "petminder/internal/implementations/token_revoker"
	"petminder/internal/rabbitmq"
	duereminder "petminder/internal/rabbitmq/publishers/due_reminder"
	"sync"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Deps struct {
	Config *config.Config
	Logger dl.Logger

	DB       *pgxpool.Pool
	Redis    *redis.Client
	Rabbitmq *rabbitmq.Connection
	Registry *prometheus.Registry

	Now func() time.Time

	UnitOfWork duow.UnitOfWork
	Guard      access.Guard

	RateLimiter drl.RateLimiter

	IdentityGenerator c.IdentityGenerator
	PasswordHasher    user.PasswordHasher
	TokenIssuer       user.TokenIssuer
	TokenValidator    user.TokenValidator
	TokenRevoker      user.TokenRevoker
	HTTPMetrics       *metrics.HTTP

	DuePublisher reminder.DuePublisher
}

// InitDeps builds the dependencies of the HTTP API.
func InitDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRedisClient := deps.initRedisClient()
	deps.initRegistry()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	deps.Guard = metrics.NewGuard(access.NewGuard(), deps.Registry)
	deps.HTTPMetrics = metrics.NewHTTP(deps.Registry)
	deps.RateLimiter = ratelimiter.NewRedis(deps.Redis, deps.Logger, deps.Now)
	deps.IdentityGenerator = identity.NewUUID()
	deps.PasswordHasher = passwordhasher.NewBcrypt(deps.Config.Secret, deps.Config.BcryptHasherCost)
	tokens := accesstoken.NewJWT(deps.Config.Secret, deps.Config.AccessTokenTTL, deps.IdentityGenerator)
	deps.TokenIssuer = tokens
	deps.TokenValidator = tokens
	deps.TokenRevoker = tokenrevoker.NewRedis(deps.Redis)

	return deps, closeAll(closeRedisClient, closePgxPool, closeLogger)
}

// InitSchedulerDeps builds the dependencies of the due reminder scanner.
func InitSchedulerDeps() (*Deps, func()) {
	deps := &Deps{}

	deps.initConfig()
	closeLogger := deps.initLogger()
	closePgxPool := deps.initPgxPool()
	closeRabbitmqConn := deps.initRabbitmqConnection()

	deps.Now = func() time.Time { return time.Now().UTC() }
	deps.UnitOfWork = uow.NewPgxUnitOfWork(deps.DB)
	closeDuePublisher := deps.initRabbitmqDuePublisher()

	return deps, closeAll(closeDuePublisher, closeRabbitmqConn, closePgxPool, closeLogger)
}

func closeAll(closeFuncs ...func()) func() {
	return func() {
		var wg sync.WaitGroup
		wg.Add(len(closeFuncs))
		for _, closeFunc := range closeFuncs {
			closeFunc := closeFunc
			go func() {
				closeFunc()
				wg.Done()
			}()
		}

		wg.Wait()
	}
}

func (deps *Deps) initConfig() {
	config, err := config.Load()
	if err != nil {
		panic(err)
	}
	deps.Config = config
}

func (deps *Deps) initLogger() func() {
	logger := logging.NewZapLogger(deps.Config.IsTestMode)
	deps.Logger = logger
	return func() { logger.Sync() }
}

func (deps *Deps) initRegistry() {
	deps.Registry = prometheus.NewRegistry()
	deps.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

func (deps *Deps) initPgxPool() func() {
	db, err := pgxpool.Connect(context.Background(), deps.Config.PostgresqlURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to DB.", dl.Entry("err", err))
		panic(err)
	}
	deps.DB = db
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down DB connection.")
		db.Close()
		deps.Logger.Info(context.Background(), "DB connection shut down.")
	}
}

func (deps *Deps) initRedisClient() func() {
	redisOpt, err := redis.ParseURL(deps.Config.RedisURL)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to Redis.", dl.Entry("err", err))
		panic(err)
	}
	redisClient := redis.NewClient(redisOpt)
	deps.Redis = redisClient
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down Redis client.")
		redisClient.Close()
		deps.Logger.Info(context.Background(), "Redis client shut down.")
	}
}

func (deps *Deps) initRabbitmqConnection() func() {
	rabbitmqConnection, err := rabbitmq.Dial(deps.Config.RabbitmqURL, deps.Logger)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not connect to RabbitMQ.", dl.Entry("err", err))
		panic("could not connect to RabbitMQ")
	}
	deps.Rabbitmq = rabbitmqConnection
	return func() {
		deps.Logger.Info(context.Background(), "Shutting down RabbitMQ connection.")
		rabbitmqConnection.Close()
		deps.Logger.Info(context.Background(), "RabbitMQ connection shut down.")
	}
}

func (deps *Deps) initRabbitmqDuePublisher() func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	err = rabbitmq.DeclareTopology(
		rabbitmqChannel,
		deps.Config.RabbitmqExchange,
		deps.Config.RabbitmqReminderDueQueue,
	)
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not declare RabbitMQ topology.", dl.Entry("err", err))
		panic(err)
	}

	deps.DuePublisher = duereminder.NewRabbitMQ(
		deps.Logger,
		rabbitmqChannel,
		deps.Config.RabbitmqExchange,
		deps.Config.RabbitmqReminderDueQueue,
	)

	return func() {
		deps.Logger.Info(context.Background(), "Shutting down due reminder publisher.")
		rabbitmqChannel.Close()
		deps.Logger.Info(context.Background(), "Due reminder publisher shut down.")
	}
}
