package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/meinhoongagan/pharmacy-portal/appointments"
	"github.com/meinhoongagan/pharmacy-portal/cache"
	"github.com/meinhoongagan/pharmacy-portal/config"
	"github.com/meinhoongagan/pharmacy-portal/controllers"
	"github.com/meinhoongagan/pharmacy-portal/cron"
	"github.com/meinhoongagan/pharmacy-portal/db"
	"github.com/meinhoongagan/pharmacy-portal/logger"
	"github.com/meinhoongagan/pharmacy-portal/meetings"
	"github.com/meinhoongagan/pharmacy-portal/middleware"
	"github.com/meinhoongagan/pharmacy-portal/profile"
	"github.com/meinhoongagan/pharmacy-portal/redis"
	"github.com/meinhoongagan/pharmacy-portal/routes"
	"github.com/meinhoongagan/pharmacy-portal/session"
	"github.com/meinhoongagan/pharmacy-portal/timezone"
	"github.com/meinhoongagan/pharmacy-portal/upstream"
	"github.com/meinhoongagan/pharmacy-portal/utils"
)

func main() {
	cfg := config.Load()

	log, err := logger.Init(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gdb, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	var (
		store  cache.Store
		memory *cache.MemoryStore
	)
	if cfg.RedisAddr != "" {
		rdb, err := redis.Connect(context.Background(), cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()
		store = cache.NewRedisStore(rdb, "pharmacy-portal:")
	} else {
		log.Warn("REDIS_ADDR not set, caching in process memory")
		memory = cache.NewMemoryStore(nil)
		store = memory
	}

	query := cache.NewQuery(store, cache.QueryConfig{
		StaleTime: cfg.CacheStaleTime,
		GCTime:    cfg.CacheGCTime,
		Logger:    log.Named("cache"),
	})

	client := upstream.New(upstream.Config{
		BaseURL:             cfg.BackendURL,
		Timeout:             cfg.UpstreamTimeout,
		Attempts:            cfg.UpstreamRetries,
		RetryDelay:          cfg.RetryDelay,
		CarePackageDuration: cfg.CarePackageDuration,
		Logger:              log.Named("upstream"),
	})

	var uploader profile.Uploader
	if cfg.CloudinaryCloudName != "" {
		cld, err := utils.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadPreset)
		if err != nil {
			log.Fatal("failed to initialize cloudinary", zap.Error(err))
		}
		uploader = cld
	}

	memo := timezone.NewMemo(timezone.NewResolver(cfg.DefaultTimezone), nil)
	profiles := profile.NewService(client, query, memo, uploader, log.Named("profile"))
	appts := appointments.NewService(client, profiles, query, nil, log.Named("appointments"))
	meets := meetings.NewService(appts, meetings.NewGormAttendance(gdb), cfg.MeetingLead, nil, log.Named("meetings"))

	sessions := session.NewGormRepository(gdb)
	issuer := session.NewIssuer(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	manager := session.NewManager(sessions, issuer, client, nil, log.Named("session"))

	jobs := &cron.Jobs{
		Sessions: sessions,
		Meetings: appts,
		Zones:    profiles,
		Store:    store,
		Lead:     cfg.MeetingLead,
		Logger:   log.Named("cron"),
		Memory:   memory,
	}
	if cfg.SMTPHost != "" {
		jobs.Mailer = utils.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	}
	scheduler, err := cron.Start(jobs)
	if err != nil {
		log.Fatal("failed to start cron jobs", zap.Error(err))
	}
	defer scheduler.Stop()

	h := &controllers.Handler{
		Sessions:     manager,
		Appointments: appts,
		Meetings:     meets,
		Profiles:     profiles,
		Reviews:      client,
		Log:          log.Named("http"),
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Pharmacy portal API")
	})

	protected := middleware.Protected(manager, issuer.Secret(), log.Named("auth"))
	routes.SetupAuthRoutes(app, h, protected)
	routes.SetupAppointmentRoutes(app, h, protected)
	routes.SetupMeetingRoutes(app, h, protected)
	routes.SetupProfileRoutes(app, h, protected)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down")
		_ = app.ShutdownWithTimeout(10 * time.Second)
	}()

	log.Info("server starting", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Error("server stopped", zap.Error(err))
	}
}
