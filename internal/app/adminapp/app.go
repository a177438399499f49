package adminapp

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/casarancha/adminpanel/internal/config"
	"github.com/casarancha/adminpanel/internal/infra/httpclient"
	"github.com/casarancha/adminpanel/internal/repo/backendhttp"
	redrepo "github.com/casarancha/adminpanel/internal/repo/redis"
	adssvc "github.com/casarancha/adminpanel/internal/services/ads"
	aisvc "github.com/casarancha/adminpanel/internal/services/aicampaigns"
	authsvc "github.com/casarancha/adminpanel/internal/services/auth"
	dashsvc "github.com/casarancha/adminpanel/internal/services/dashboard"
	fomosvc "github.com/casarancha/adminpanel/internal/services/fomo"
	ghostssvc "github.com/casarancha/adminpanel/internal/services/ghosts"
	groupssvc "github.com/casarancha/adminpanel/internal/services/groups"
	modsvc "github.com/casarancha/adminpanel/internal/services/moderation"
	notifsvc "github.com/casarancha/adminpanel/internal/services/notifications"
	secsvc "github.com/casarancha/adminpanel/internal/services/security"
	supportsvc "github.com/casarancha/adminpanel/internal/services/support"
	userssvc "github.com/casarancha/adminpanel/internal/services/users"
	verifsvc "github.com/casarancha/adminpanel/internal/services/verification"
)

type App struct {
	cfg        config.Config
	logger     *zap.Logger
	server     *http.Server
	redis      *goredis.Client
	httpRouter http.Handler
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	r := chi.NewRouter()
	ApplyMiddlewares(r, log)

	redisClient := redrepo.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	sessionRepo := redrepo.NewSessionRepo(redisClient)

	// Per-request tokens win over the shared service token, so an
	// authenticated admin always acts as themselves against the backend.
	backendClient, err := backendhttp.NewClient(
		cfg.Backend.BaseURL,
		backendhttp.ChainTokenSource{
			backendhttp.ContextTokenSource{},
			backendhttp.StaticTokenSource(cfg.Backend.ServiceToken),
		},
		httpclient.New(cfg.Backend.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("backend client: %w", err)
	}

	usersRepo := backendhttp.NewUsersRepo(backendClient)
	groupsRepo := backendhttp.NewGroupsRepo(backendClient)
	ghostRepo := backendhttp.NewGhostRepo(backendClient)
	moderationRepo := backendhttp.NewModerationRepo(backendClient)
	aiCampaignsRepo := backendhttp.NewAICampaignsRepo(backendClient)
	fomoRepo := backendhttp.NewFOMORepo(backendClient)
	verificationRepo := backendhttp.NewVerificationRepo(backendClient)
	notificationsRepo := backendhttp.NewNotificationsRepo(backendClient)
	adsRepo := backendhttp.NewAdsRepo(backendClient)
	securityRepo := backendhttp.NewSecurityRepo(backendClient)
	supportRepo := backendhttp.NewSupportRepo(backendClient)
	dashboardRepo := backendhttp.NewDashboardRepo(backendClient)
	authRepo := backendhttp.NewAuthRepo(backendClient)

	jwtManager := authsvc.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTAccessTTL)
	authService := authsvc.NewService(jwtManager, sessionRepo, authRepo, cfg.Auth.SessionTTL)

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      r,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	RegisterRoutes(r, Dependencies{
		AuthService:         authService,
		UserService:         userssvc.NewService(usersRepo),
		GroupService:        groupssvc.NewService(groupsRepo),
		GhostService:        ghostssvc.NewService(ghostRepo),
		ModerationService:   modsvc.NewService(moderationRepo),
		AICampaignService:   aisvc.NewService(aiCampaignsRepo),
		FOMOService:         fomosvc.NewService(fomoRepo),
		VerificationService: verifsvc.NewService(verificationRepo),
		NotificationService: notifsvc.NewService(notificationsRepo),
		AdsService:          adssvc.NewService(adsRepo),
		SecurityService:     secsvc.NewService(securityRepo),
		SupportService:      supportsvc.NewService(supportRepo),
		DashboardService:    dashsvc.NewService(dashboardRepo),
		Logger:              log,
	})

	return &App{
		cfg:        cfg,
		logger:     log,
		server:     server,
		redis:      redisClient,
		httpRouter: r,
	}, nil
}

func (a *App) Run() error {
	a.logger.Info("admin server started", zap.String("addr", a.cfg.HTTP.Addr))
	err := a.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (a *App) Shutdown(ctx context.Context) error {
	var shutdownErr error

	if err := a.server.Shutdown(ctx); err != nil {
		shutdownErr = err
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil && shutdownErr == nil {
			shutdownErr = err
		}
	}

	return shutdownErr
}

func (a *App) Handler() http.Handler {
	return a.httpRouter
}
