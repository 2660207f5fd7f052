// cmd/gigmatchd/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gigmatch/internal/common/config"
	"gigmatch/internal/common/database"
	"gigmatch/internal/common/latency"
	"gigmatch/internal/common/logger"
	"gigmatch/internal/engine"
	"gigmatch/internal/identity"
	"gigmatch/internal/models"
	"gigmatch/internal/notify"
	"gigmatch/internal/seed"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	// Bootstrap logger; replaced with the configured one after Load.
	zapLog := logger.New("info", "console")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting gigmatch...",
		zap.String("environment", cfg.App.Environment),
	)

	ctx := context.Background()

	// --- Seed catalog ---
	data, err := seed.Load()
	if err != nil {
		zapLog.Fatal("seed load failed", zap.Error(err))
	}
	zapLog.Info("Seed catalog loaded",
		zap.Int("actors", len(data.Actors)),
		zap.Int("jobs", len(data.Jobs)),
		zap.Int("applications", len(data.Applications)),
	)

	// --- Session store ---
	var sessions identity.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Session.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		zapLog.Info("Redis connected successfully")

		sessions = identity.NewRedisSessionStore(redis, cfg.Session.Key)
	default:
		sessions = identity.NewMemorySessionStore()
	}

	// --- Notifications ---
	sinks := []notify.Sink{notify.NewLogSink(log)}
	if cfg.Notifications.SNS.Enabled {
		snsSink, err := notify.NewSNSSink(ctx, cfg.Notifications.SNS)
		if err != nil {
			zapLog.Fatal("sns sink init failed", zap.Error(err))
		}
		sinks = append(sinks, snsSink)
		zapLog.Info("SNS sink enabled", zap.String("topic", cfg.Notifications.SNS.TopicARN))
	}
	notifier := notify.New(log, sinks...)
	notifier.Preload(data.Notifications)

	// --- Core services ---
	delay := latency.Fixed(cfg.Latency.Delay)
	eng := engine.New(data.Jobs, data.Applications, delay, notifier, log)
	ident := identity.NewStore(data.Actors, sessions, delay, log)

	if actor, err := ident.Restore(ctx); err != nil {
		zapLog.Warn("session restore failed", zap.Error(err))
	} else if actor != nil {
		zapLog.Info("Session restored", zap.String("actor", actor.ID), zap.String("role", string(actor.Role)))
	}

	// --- Metrics server ---
	if cfg.Metrics.Enabled {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			zapLog.Info("Metrics server listening", zap.String("address", cfg.Metrics.Address))
			if err := http.ListenAndServe(cfg.Metrics.Address, mux); err != nil {
				zapLog.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	if cfg.App.Demo {
		runDemo(ctx, zapLog, ident, eng, notifier)
	}

	zapLog.Info("gigmatch is running. Press Ctrl+C to exit.")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
}

// runDemo walks the seeded marketplace through a full hiring round so a
// fresh checkout shows real output without any client wired up.
func runDemo(ctx context.Context, zapLog *zap.Logger, ident *identity.Store, eng *engine.Engine, notifier *notify.Notifier) {
	zapLog.Info("--- demo walkthrough ---")

	seeker, err := ident.Authenticate(ctx, "alex@example.com", models.RoleSeeker)
	if err != nil {
		zapLog.Error("demo: seeker sign-in failed", zap.Error(err))
		return
	}
	zapLog.Info("demo: signed in", zap.String("actor", seeker.ID))

	recs := eng.RecommendedJobsFor(seeker)
	for _, job := range recs {
		zapLog.Info("demo: recommendation",
			zap.String("job", job.ID),
			zap.String("title", job.Title),
			zap.Int("matchScore", job.MatchScore),
		)
	}

	for _, job := range recs {
		app, err := eng.ApplyToJob(ctx, seeker, job.ID, "I'd love to join the team; my background lines up with everything you listed.")
		if err != nil {
			zapLog.Warn("demo: apply skipped", zap.String("job", job.ID), zap.Error(err))
			continue
		}
		zapLog.Info("demo: applied", zap.String("application", app.ID), zap.String("job", app.JobID))
		break
	}

	if err := ident.Logout(ctx); err != nil {
		zapLog.Warn("demo: logout failed", zap.Error(err))
	}

	recruiter, err := ident.Authenticate(ctx, "jamie@example.com", models.RoleRecruiter)
	if err != nil {
		zapLog.Error("demo: recruiter sign-in failed", zap.Error(err))
		return
	}

	for _, job := range eng.JobsByRecruiter(recruiter.ID) {
		apps := eng.ApplicationsByJob(job.ID)
		zapLog.Info("demo: posting",
			zap.String("job", job.ID),
			zap.String("title", job.Title),
			zap.Int("applications", len(apps)),
		)
		for _, app := range apps {
			if app.Status != models.ApplicationPending {
				continue
			}
			updated, err := eng.UpdateApplicationStatus(ctx, recruiter, app.ID, models.ApplicationViewed, nil)
			if err != nil {
				zapLog.Warn("demo: review failed", zap.Error(err))
				continue
			}
			zapLog.Info("demo: reviewed", zap.String("application", updated.ID), zap.String("status", string(updated.Status)))
		}
	}

	zapLog.Info("demo: unread notifications", zap.Int("count", notifier.Unread(recruiter.ID)))
	_ = ident.Logout(ctx)
}
