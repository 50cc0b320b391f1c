package app

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"lostfound/db"
	"lostfound/session"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Ctx = gin.Context
type H = gin.H

// App aggregates the process-wide dependencies.
type App struct {
	Router *gin.Engine
	DB     *gorm.DB
	RDB    *redis.Client
	Log    *zap.Logger
	Config Config

	appSess *session.AppSessionStore
}

type Config struct {
	RedisAddr     string
	RedisPwd      string
	WebOrigin     string
	PublicBaseURL string
	UploadDir     string
	SessionTTL    time.Duration
	ItemCacheTTL  time.Duration
	AdminEmails   []string
}

func (a *App) AppSessions() *session.AppSessionStore { return a.appSess }

func MustNew() *App {
	cfg := loadConfig()

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	dbConn := db.ConnectDB()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPwd, DB: 0})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis: %v", err)
	}

	r := gin.Default()
	useCORS(r, cfg.WebOrigin)

	return &App{
		Router: r, DB: dbConn, RDB: rdb, Log: logger, Config: cfg,
		appSess: session.NewAppSessionStore(rdb, cfg.SessionTTL),
	}
}

func (a *App) Close() {
	_ = a.RDB.Close()
	_ = a.Log.Sync()
}

func newLogger() (*zap.Logger, error) {
	if gin.Mode() == gin.ReleaseMode {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func loadConfig() Config {
	get := func(k, def string) string {
		v := os.Getenv(k)
		if v == "" {
			return def
		}
		return v
	}

	ttl := 24 * time.Hour
	if secs, err := strconv.Atoi(get("SESSION_TTL_SECONDS", "")); err == nil && secs > 0 {
		ttl = time.Duration(secs) * time.Second
	}
	cacheTTL := time.Minute
	if secs, err := strconv.Atoi(get("ITEM_CACHE_TTL_SECONDS", "")); err == nil && secs > 0 {
		cacheTTL = time.Duration(secs) * time.Second
	}

	var admins []string
	for _, s := range strings.Split(os.Getenv("ADMIN_EMAILS"), ",") {
		if t := strings.TrimSpace(s); t != "" {
			admins = append(admins, strings.ToLower(t))
		}
	}

	base := get("PUBLIC_BASE_URL", "http://localhost:3001")
	return Config{
		RedisAddr:     get("REDIS_ADDR", "127.0.0.1:6379"),
		RedisPwd:      os.Getenv("REDIS_PASSWORD"),
		WebOrigin:     get("WEB_ORIGIN", base),
		PublicBaseURL: base,
		UploadDir:     get("UPLOAD_DIR", "./uploads"),
		SessionTTL:    ttl,
		ItemCacheTTL:  cacheTTL,
		AdminEmails:   admins,
	}
}
