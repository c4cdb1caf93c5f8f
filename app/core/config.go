package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	return *conf
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	return c
}

type CoreConfig struct {
	Addr          string              `toml:"addr"`
	Log           Log                 `toml:"log"`
	Postgres      PGConfig            `toml:"postgres"`
	Redis         RedisConfig         `toml:"redis"`
	Security      Security            `toml:"security"`
	AI            AIConfig            `toml:"ai"`
	Billing       BillingConfig       `toml:"billing"`
	ObjectStorage ObjectStorageDriver `toml:"object_storage"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DAYGO_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.Security.FromENV()
	c.AI.FromENV()
	c.Billing.FromENV()
}

type Security struct {
	// JWTSecret signs login tokens (HS256).
	JWTSecret string `toml:"jwt_secret"`
	// EncryptSalt feeds the per-user field encryption key derivation.
	EncryptSalt string `toml:"encrypt_salt"`
	// TokenExpireSeconds bounds login JWT lifetime; 0 means 7 days.
	TokenExpireSeconds int64 `toml:"token_expire_seconds"`
}

func (s *Security) FromENV() {
	s.JWTSecret = os.Getenv("DAYGO_JWT_SECRET")
	s.EncryptSalt = os.Getenv("DAYGO_ENCRYPT_SALT")
}

type AIConfig struct {
	Token           string `toml:"token"`
	Endpoint        string `toml:"endpoint"`
	ChatModel       string `toml:"chat_model"`
	VisionModel     string `toml:"vision_model"`
	TranscribeModel string `toml:"transcribe_model"`
}

func (a *AIConfig) FromENV() {
	a.Token = os.Getenv("DAYGO_AI_TOKEN")
	a.Endpoint = os.Getenv("DAYGO_AI_ENDPOINT")
	a.ChatModel = os.Getenv("DAYGO_AI_CHAT_MODEL")
}

type BillingConfig struct {
	Endpoint      string `toml:"endpoint"`
	APIKey        string `toml:"api_key"`
	WebhookSecret string `toml:"webhook_secret"`
	SuccessURL    string `toml:"success_url"`
	CancelURL     string `toml:"cancel_url"`
}

func (b *BillingConfig) FromENV() {
	b.Endpoint = os.Getenv("DAYGO_BILLING_ENDPOINT")
	b.APIKey = os.Getenv("DAYGO_BILLING_API_KEY")
	b.WebhookSecret = os.Getenv("DAYGO_BILLING_WEBHOOK_SECRET")
}

type ObjectStorageDriver struct {
	StaticDomain string    `toml:"static_domain"`
	Driver       string    `toml:"driver"`
	S3           *S3Config `toml:"s3"`
}

type S3Config struct {
	Bucket    string `toml:"bucket"`
	Region    string `toml:"region"`
	Endpoint  string `toml:"endpoint"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("DAYGO_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("DAYGO_REDIS_ADDR")
	r.Password = os.Getenv("DAYGO_REDIS_PASSWORD")
	if dbStr := os.Getenv("DAYGO_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DAYGO_API_LOG_LEVEL")
	l.Path = os.Getenv("DAYGO_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
