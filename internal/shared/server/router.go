package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/baehrendtz/FreeResume-sub000/internal/account"
	googleauth "github.com/baehrendtz/FreeResume-sub000/internal/auth"
	"github.com/baehrendtz/FreeResume-sub000/internal/cvs"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/config"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/metrics"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/server/middleware"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/server/respond"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/db"
	"github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/object"
	localstore "github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/object/local"
	s3store "github.com/baehrendtz/FreeResume-sub000/internal/shared/storage/object/s3"
	"github.com/baehrendtz/FreeResume-sub000/internal/usage"
	"github.com/baehrendtz/FreeResume-sub000/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"IMPORT": {Rate: 0.5, Burst: 3},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && strings.HasSuffix(c.FullPath(), "/cvs/import") {
					return "IMPORT"
				}
				return ""
			},
		}),
	)

	// Dependencies
	store := newObjectStore(cfg)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	limits := usage.Limits{Guest: cfg.GuestImportLimit, SignedIn: cfg.UserImportLimit}
	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(sqlDB, limits)
	} else {
		usageSvc = usage.NewService(limits)
	}
	usageHandler := usage.NewHandler(usageSvc)

	var cvRepo cvs.Repo
	if sqlDB != nil {
		cvRepo = &cvs.PGRepo{DB: sqlDB}
	} else {
		cvRepo = cvs.NewMemoryRepo()
	}
	cvSvc := &cvs.Service{Store: store, Repo: cvRepo, Meter: usageSvc}
	cvHandler := cvs.NewHandler(cvSvc)

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	accountSvc := account.NewService(cvRepo, userRepo, store)
	accountHandler := account.NewHandler(accountSvc)

	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL)
	googleAuthSvc.Users = userSvc

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	cvHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	accountHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err == nil {
			return store
		}
		log.Printf("failed to init s3 store, falling back to local: %v", err)
	}
	return localstore.New(cfg.LocalStoreDir)
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
