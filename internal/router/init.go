package router

import (
	"context"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/internal/container"
	"github.com/oksasatya/edupath/internal/infrastructure/messaging"
	aigen "github.com/oksasatya/edupath/internal/infrastructure/openai"
	"github.com/oksasatya/edupath/internal/infrastructure/pdf"
	pginfra "github.com/oksasatya/edupath/internal/infrastructure/postgres"
	"github.com/oksasatya/edupath/internal/infrastructure/redisstore"
	"github.com/oksasatya/edupath/internal/infrastructure/search"
	"github.com/oksasatya/edupath/internal/infrastructure/storage"
	handlers "github.com/oksasatya/edupath/internal/interface/http"
	"github.com/oksasatya/edupath/internal/interface/middleware"
	"github.com/oksasatya/edupath/internal/router/modules"
	"github.com/oksasatya/edupath/pkg/helpers"
)

// Services are the application services built from the container.
type Services struct {
	Auth      *application.AuthService
	Profile   *application.ProfileService
	Dashboard *application.DashboardService
	Quiz      *application.QuizService
	Resume    *application.ResumeService
}

func buildServices() Services {
	cfg := container.GetConfig()
	log := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	profiles := pginfra.NewProfileRepository(pool)
	recs := pginfra.NewRecommendationRepository(pool)
	resumes := pginfra.NewResumeRepository(pool)

	sessions := redisstore.NewSessionStore(container.GetRedis(), cfg.SessionTTL)
	generator := aigen.NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, container.GetMetrics(), log)

	var notifier application.Notifier
	if pub := container.GetRabbitPub(); pub != nil && cfg.MailSendEnabled {
		notifier = messaging.NewEmailNotifier(pub, cfg)
	}
	var archive application.DocumentArchive
	if gcs := container.GetGCS(); gcs != nil && cfg.GCSBucket != "" {
		archive = storage.NewGCSArchive(gcs, cfg.GCSBucket)
	}
	var index application.ProfileIndex
	if es := container.GetES(); es != nil {
		index = search.NewProfileIndex(es, cfg.ESProfilesIndex)
	}

	return Services{
		Auth: application.NewAuthService(users, sessions, container.GetJWT(), notifier, log),
		Profile: application.NewProfileService(profiles, recs, users, pdf.NewExtractor(log), generator,
			application.StaticJobSource{}, archive, index, notifier, log),
		Dashboard: application.NewDashboardService(profiles, recs, index, log),
		Quiz:      application.NewQuizService(sessions, generator, log),
		Resume:    application.NewResumeService(profiles, resumes, sessions, generator, pdf.NewRenderer(), log),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	log := container.GetLogger()
	rdb := container.GetRedis()
	svc := buildServices()

	auth := middleware.Auth(svc.Auth, container.GetJWT())
	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	health := handlers.NewHealthHandler(map[string]handlers.Check{
		"postgres": func(ctx context.Context) error { return container.GetPGPool().Ping(ctx) },
		"redis":    func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	})

	r.Add(modules.NewDebugModule(health, container.GetMetrics(), rdb, cfg.DebugMetricsEnabled))
	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, cookies, log), auth, rdb))
	r.Add(modules.NewProfileModule(handlers.NewProfileHandler(svc.Profile, cfg.MaxUploadBytes, log), auth))
	r.Add(modules.NewDashboardModule(handlers.NewDashboardHandler(svc.Dashboard, log), auth, rdb))
	r.Add(modules.NewQuizModule(handlers.NewQuizHandler(svc.Quiz, log), auth))
	r.Add(modules.NewResumeModule(handlers.NewResumeHandler(svc.Resume, log), auth))
}
