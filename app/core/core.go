package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/daygo-app/daygo/app/store/sqlstore"
	"github.com/daygo-app/daygo/pkg/ai"
	"github.com/daygo-app/daygo/pkg/billing"
	"github.com/daygo-app/daygo/pkg/objectstorage/s3"
	"github.com/daygo-app/daygo/pkg/security"
	"github.com/daygo-app/daygo/pkg/types"
	"github.com/daygo-app/daygo/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores     func() *sqlstore.Provider
	httpClient *http.Client
	httpEngine *gin.Engine

	redis       redis.UniversalClient
	aiDriver    *ai.Driver
	billing     *billing.Client
	fieldCipher *security.FieldCipher
	fileStorage *s3.S3

	metrics    *Metrics
	singleLock *SingleLock
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("daygo", "core"),
		httpEngine: gin.New(),
		singleLock: NewSingleLock(),
	}

	setupSqlStore(core)

	core.redis = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	core.aiDriver = ai.New(cfg.AI.Token, cfg.AI.Endpoint, ai.ModelName{
		ChatModel:       cfg.AI.ChatModel,
		VisionModel:     cfg.AI.VisionModel,
		TranscribeModel: cfg.AI.TranscribeModel,
	})

	core.billing = billing.NewClient(cfg.Billing.Endpoint, cfg.Billing.APIKey)
	core.fieldCipher = security.NewFieldCipher(cfg.Security.EncryptSalt)

	if s3Cfg := cfg.ObjectStorage.S3; s3Cfg != nil {
		core.fileStorage = s3.NewS3Client(s3Cfg.Endpoint, s3Cfg.Region, s3Cfg.Bucket, s3Cfg.AccessKey, s3Cfg.SecretKey)
	}

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Redis() redis.UniversalClient {
	return s.redis
}

func (s *Core) Cache() types.Cache {
	return &Cache{redis: s.redis}
}

func (s *Core) AI() *ai.Driver {
	return s.aiDriver
}

func (s *Core) Billing() *billing.Client {
	return s.billing
}

func (s *Core) FieldCipher() *security.FieldCipher {
	return s.fieldCipher
}

func (s *Core) FileStorage() *s3.S3 {
	return s.fileStorage
}

func (s *Core) DefaultAppid() string {
	return types.DEFAULT_APPID
}

// TokenExpire returns the login token lifetime.
func (s *Core) TokenExpire() time.Duration {
	if s.cfg.Security.TokenExpireSeconds > 0 {
		return time.Duration(s.cfg.Security.TokenExpireSeconds) * time.Second
	}
	return time.Hour * 24 * 7
}

type Cache struct {
	redis redis.UniversalClient
}

func (c *Cache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.redis.Expire(ctx, key, expiration).Err()
}

func (c *Cache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.redis.SetEx(ctx, key, value, expiresAt).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.redis.Get(ctx, key).Result()
}

func (c *Cache) Del(ctx context.Context, key string) error {
	return c.redis.Del(ctx, key).Err()
}
