package adminapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

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
	"github.com/casarancha/adminpanel/internal/transport/http/handlers"
)

type Dependencies struct {
	AuthService         *authsvc.Service
	UserService         *userssvc.Service
	GroupService        *groupssvc.Service
	GhostService        *ghostssvc.Service
	ModerationService   *modsvc.Service
	AICampaignService   *aisvc.Service
	FOMOService         *fomosvc.Service
	VerificationService *verifsvc.Service
	NotificationService *notifsvc.Service
	AdsService          *adssvc.Service
	SecurityService     *secsvc.Service
	SupportService      *supportsvc.Service
	DashboardService    *dashsvc.Service
	Logger              *zap.Logger
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	usersHandler := handlers.NewUsersHandler(deps.UserService)
	groupsHandler := handlers.NewGroupsHandler(deps.GroupService)
	ghostsHandler := handlers.NewGhostsHandler(deps.GhostService)
	moderationHandler := handlers.NewModerationHandler(deps.ModerationService)
	aiCampaignsHandler := handlers.NewAICampaignsHandler(deps.AICampaignService)
	fomoHandler := handlers.NewFOMOHandler(deps.FOMOService)
	verificationHandler := handlers.NewVerificationHandler(deps.VerificationService)
	notificationsHandler := handlers.NewNotificationsHandler(deps.NotificationService)
	adsHandler := handlers.NewAdsHandler(deps.AdsService)
	securityHandler := handlers.NewSecurityHandler(deps.SecurityService)
	supportHandler := handlers.NewSupportHandler(deps.SupportService)
	dashboardHandler := handlers.NewDashboardHandler(deps.DashboardService)

	authMW := AuthMiddleware(deps.AuthService, deps.Logger)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", authHandler.Login)
		r.With(authMW).Post("/logout", authHandler.Logout)
		r.With(authMW).Post("/logout_all", authHandler.LogoutAll)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(authMW)

		r.Get("/dashboard", dashboardHandler.Summary)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", usersHandler.List)
			r.Get("/export", usersHandler.Export)
			r.Get("/{id}", usersHandler.Get)
			r.Post("/{id}/action", usersHandler.Action)
		})

		r.Get("/groups", groupsHandler.List)

		r.Route("/ghosts", func(r chi.Router) {
			r.Get("/posts", ghostsHandler.ListPosts)
			r.Get("/names", ghostsHandler.ListNames)
			r.Post("/names/{name}/status", ghostsHandler.SetNameStatus)
		})

		r.Route("/moderation", func(r chi.Router) {
			r.Get("/", moderationHandler.List)
			r.Post("/{id}/review", moderationHandler.Review)
		})

		r.Route("/ai-campaigns", func(r chi.Router) {
			r.Get("/", aiCampaignsHandler.List)
			r.Post("/", aiCampaignsHandler.Create)
			r.Post("/{id}/toggle", aiCampaignsHandler.Toggle)
			r.Delete("/{id}", aiCampaignsHandler.Delete)
		})

		r.Route("/fomo", func(r chi.Router) {
			r.Get("/", fomoHandler.List)
			r.Post("/", fomoHandler.Create)
		})

		r.Route("/verification", func(r chi.Router) {
			r.Get("/", verificationHandler.List)
			r.Post("/{id}/review", verificationHandler.Review)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationsHandler.List)
			r.Post("/", notificationsHandler.Send)
		})

		r.Route("/ads", func(r chi.Router) {
			r.Get("/", adsHandler.Overview)
			r.Post("/", adsHandler.Create)
		})

		r.Get("/security", securityHandler.Summary)

		r.Route("/support", func(r chi.Router) {
			r.Get("/", supportHandler.List)
			r.Post("/{id}/resolve", supportHandler.Resolve)
		})
	})
}
