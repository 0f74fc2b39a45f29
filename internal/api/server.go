package api

import (
	"errors"
	"fmt"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/restodesk/backoffice/docs"
	v1 "github.com/restodesk/backoffice/internal/api/handler/v1"
	"github.com/restodesk/backoffice/internal/api/middleware"
	"github.com/restodesk/backoffice/internal/config"
	"github.com/restodesk/backoffice/internal/domain"
	"github.com/restodesk/backoffice/internal/events"
	"github.com/restodesk/backoffice/internal/metrics"
	"github.com/restodesk/backoffice/internal/pkg/secretbox"
	"github.com/restodesk/backoffice/internal/realtime"
	"github.com/restodesk/backoffice/internal/repository"
	"github.com/restodesk/backoffice/internal/repository/dao"
	"github.com/restodesk/backoffice/internal/service"
)

// Dependencies are the collaborators built outside the HTTP layer. A nil
// Redis client selects the in-memory snapshot store and token denylist.
type Dependencies struct {
	DB        *gorm.DB
	Redis     *redis.Client
	Publisher events.Publisher
	Metrics   *metrics.Registry
	Hub       *realtime.Hub
	POSTester service.POSTester
	Payments  service.PaymentAccountLinker
	Messages  service.MessageSender
}

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine

	Hub        *realtime.Hub
	Metrics    *metrics.Registry
	Auth       *service.AuthService
	Onboarding *service.OnboardingService

	users       *service.UserService
	snapshots   service.SnapshotStore
	denylist    service.TokenDenylist
	publisher   events.Publisher
	sealer      *secretbox.Sealer
	restaurants *repository.RestaurantRepository
}

type handlers struct {
	auth         *v1.AuthHandler
	users        *v1.UserHandler
	restaurants  *v1.RestaurantHandler
	team         *v1.TeamHandler
	tables       *v1.TableHandler
	pos          *v1.POSHandler
	payment      *v1.PaymentHandler
	transactions *v1.TransactionHandler
	onboarding   *v1.OnboardingHandler
}

func NewServer(conf *config.AppConfig, deps Dependencies) (*Server, error) {
	if deps.DB == nil {
		return nil, errors.New("api.NewServer: a database is required")
	}
	if deps.POSTester == nil || deps.Payments == nil || deps.Messages == nil {
		return nil, errors.New("api.NewServer: POS tester, payment linker and message sender are required")
	}

	sealer, err := secretbox.New(conf.API.SecretsKey)
	if err != nil {
		return nil, fmt.Errorf("secretbox.New -> %w", err)
	}

	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:      conf,
		Router:      engine,
		Hub:         deps.Hub,
		Metrics:     deps.Metrics,
		publisher:   deps.Publisher,
		sealer:      sealer,
		restaurants: repository.NewRestaurantRepository(dao.NewRestaurantDAO(deps.DB)),
		users:       service.NewUserService(repository.NewUserRepository(dao.NewUserDAO(deps.DB))),
	}
	if s.Hub == nil {
		s.Hub = realtime.NewHub()
	}
	if s.Metrics == nil {
		s.Metrics = metrics.NewRegistry()
	}
	if s.publisher == nil {
		s.publisher = events.NewLogPublisher()
	}
	if deps.Redis != nil {
		s.snapshots = repository.NewRedisSnapshotStore(deps.Redis, conf.Onboarding.SnapshotTTL)
		s.denylist = repository.NewRedisTokenDenylist(deps.Redis)
	} else {
		s.snapshots = repository.NewMemorySnapshotStore()
		s.denylist = repository.NewMemoryTokenDenylist()
	}

	if err = s.MountMiddlewares(); err != nil {
		return nil, fmt.Errorf("s.MountMiddlewares -> %w", err)
	}

	h := handlers{
		auth:         s.initAuthHandler(deps.DB),
		users:        v1.NewUserHandler(s.users),
		restaurants:  s.initRestaurantHandler(),
		team:         s.initTeamHandler(deps.DB),
		tables:       s.initTableHandler(deps.DB),
		pos:          s.initPOSHandler(deps.POSTester),
		payment:      s.initPaymentHandler(deps.Payments),
		transactions: s.initTransactionHandler(deps.DB),
		onboarding:   s.initOnboardingHandler(deps.DB, deps.Payments, deps.Messages),
	}
	s.MountHandlers(h)

	return s, nil
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	repo := repository.NewUserRepository(dao.NewUserDAO(db))
	s.Auth = service.NewAuthService(repo, s.denylist)

	return v1.NewAuthHandler(s.Config.API, s.Auth, s.users)
}

func (s *Server) initRestaurantHandler() *v1.RestaurantHandler {
	svc := service.NewRestaurantService(s.restaurants, s.snapshots, s.publisher, s.Config.API.PublicOrderingURL)

	return v1.NewRestaurantHandler(svc)
}

func (s *Server) initTeamHandler(db *gorm.DB) *v1.TeamHandler {
	repo := repository.NewTeamMemberRepository(dao.NewTeamMemberDAO(db))
	svc := service.NewTeamService(repo, s.restaurants)

	return v1.NewTeamHandler(svc)
}

func (s *Server) initTableHandler(db *gorm.DB) *v1.TableHandler {
	repo := repository.NewTableRepository(dao.NewTableDAO(db))
	svc := service.NewTableService(repo, s.restaurants, s.Config.API.PublicOrderingURL)

	return v1.NewTableHandler(svc)
}

func (s *Server) initPOSHandler(tester service.POSTester) *v1.POSHandler {
	svc := service.NewPOSService(s.restaurants, tester, s.sealer, s.Metrics)

	return v1.NewPOSHandler(svc)
}

func (s *Server) initPaymentHandler(linker service.PaymentAccountLinker) *v1.PaymentHandler {
	svc := service.NewPaymentService(s.restaurants, linker)

	return v1.NewPaymentHandler(svc)
}

func (s *Server) initTransactionHandler(db *gorm.DB) *v1.TransactionHandler {
	repo := repository.NewTransactionRepository(dao.NewTransactionDAO(db))
	svc := service.NewTransactionService(repo)

	return v1.NewTransactionHandler(svc)
}

func (s *Server) initOnboardingHandler(db *gorm.DB, linker service.PaymentAccountLinker, sender service.MessageSender) *v1.OnboardingHandler {
	s.Onboarding = service.NewOnboardingService(service.OnboardingDeps{
		Snapshots:   s.snapshots,
		Events:      repository.NewOnboardingEventRepository(dao.NewOnboardingEventDAO(db)),
		Restaurants: s.restaurants,
		Payments:    linker,
		Messages:    sender,
		Sealer:      s.sealer,
		Publisher:   s.publisher,
		Notifier:    newHubNotifier(s.Hub),
		Metrics:     s.Metrics,
		OrderingURL: s.Config.API.PublicOrderingURL,
	})
	upgrader := realtime.Upgrader(middleware.OriginAllowed(s.Config.API.AllowedCORSDomains))

	return v1.NewOnboardingHandler(s.Onboarding, s.Hub, upgrader)
}

func (s *Server) MountMiddlewares() error {
	corsMiddleware, err := middleware.ConfigCORS(s.Config.API.AllowedCORSDomains)
	if err != nil {
		return fmt.Errorf("middleware.ConfigCORS -> %w", err)
	}

	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(corsMiddleware)
	s.Router.Use(s.Metrics.Middleware())

	return nil
}

func (s *Server) MountHandlers(h handlers) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey, s.Auth)
	backOffice := middleware.RequireRole(s.users, domain.RoleSuperAdmin, domain.RoleSupport)
	superAdminOnly := middleware.RequireRole(s.users, domain.RoleSuperAdmin)

	public := s.Router.Group(basePath)
	{
		public.POST("/auth/login", h.auth.HandleLogin)
	}

	auth := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		auth.POST("/auth/logout", h.auth.HandleLogout)
		auth.GET("/auth/me", h.auth.HandleMe)
		auth.POST("/auth/signup", superAdminOnly, h.auth.HandleSignup)
	}

	admin := s.Router.Group(basePath+"/super-admin", authenticator.VerifyJWT(), backOffice)
	{
		admin.GET("/users", superAdminOnly, h.users.HandleListUsers)

		admin.GET("/restaurants", h.restaurants.HandleListRestaurants)
		admin.POST("/restaurants", h.restaurants.HandleCreateRestaurant)
		admin.GET("/restaurants/:restaurantID", h.restaurants.HandleGetRestaurant)
		admin.PATCH("/restaurants/:restaurantID", h.restaurants.HandleUpdateRestaurant)
		admin.POST("/restaurants/:restaurantID/toggle-active", h.restaurants.HandleToggleRestaurantActive)
		admin.DELETE("/restaurants/:restaurantID", superAdminOnly, h.restaurants.HandleDeleteRestaurant)

		admin.GET("/restaurants/:restaurantID/team", h.team.HandleListTeam)
		admin.POST("/restaurants/:restaurantID/team", h.team.HandleCreateTeamMember)
		admin.PUT("/restaurants/:restaurantID/team/:memberID", h.team.HandleUpdateTeamMember)
		admin.POST("/restaurants/:restaurantID/team/:memberID/toggle-active", h.team.HandleToggleTeamMemberActive)
		admin.DELETE("/restaurants/:restaurantID/team/:memberID", h.team.HandleDeleteTeamMember)

		admin.GET("/restaurants/:restaurantID/tables", h.tables.HandleListTables)
		admin.POST("/restaurants/:restaurantID/tables", h.tables.HandleCreateTable)
		admin.POST("/restaurants/:restaurantID/tables/generate", h.tables.HandleGenerateTables)
		admin.PUT("/restaurants/:restaurantID/tables/:tableID", h.tables.HandleUpdateTable)
		admin.POST("/restaurants/:restaurantID/tables/:tableID/toggle-active", h.tables.HandleToggleTableActive)
		admin.DELETE("/restaurants/:restaurantID/tables/:tableID", h.tables.HandleDeleteTable)
		admin.GET("/restaurants/:restaurantID/tables/:tableID/qr.png", h.tables.HandleTableQRCode)

		admin.GET("/pos/providers", h.pos.HandleListPOSProviders)
		admin.GET("/pos/base-url", h.pos.HandlePreviewPOSBaseURL)
		admin.GET("/restaurants/:restaurantID/pos", h.pos.HandleGetPOS)
		admin.PUT("/restaurants/:restaurantID/pos", h.pos.HandleSavePOS)
		admin.POST("/restaurants/:restaurantID/pos/test", h.pos.HandleTestPOS)

		admin.GET("/restaurants/:restaurantID/payment", h.payment.HandleGetPaymentSettings)
		admin.PUT("/restaurants/:restaurantID/payment", h.payment.HandleUpdatePaymentSettings)
		admin.POST("/restaurants/:restaurantID/payment/account-link", h.payment.HandleCreatePaymentAccountLink)
		admin.POST("/restaurants/:restaurantID/payment/sync", h.payment.HandleSyncPaymentAccount)

		admin.GET("/transactions", h.transactions.HandleListTransactions)
		admin.GET("/transactions/summary", h.transactions.HandleTransactionSummary)
		admin.GET("/restaurants/:restaurantID/transactions", h.transactions.HandleListRestaurantTransactions)

		admin.GET("/restaurants/:restaurantID/onboarding", h.onboarding.HandleGetOnboarding)
		admin.DELETE("/restaurants/:restaurantID/onboarding", h.onboarding.HandleResetOnboarding)
		admin.PUT("/restaurants/:restaurantID/onboarding/steps/:step", h.onboarding.HandleSaveOnboardingStep)
		admin.POST("/restaurants/:restaurantID/onboarding/next", h.onboarding.HandleOnboardingNext)
		admin.POST("/restaurants/:restaurantID/onboarding/previous", h.onboarding.HandleOnboardingPrevious)
		admin.POST("/restaurants/:restaurantID/onboarding/finish", h.onboarding.HandleFinishOnboarding)
		admin.POST("/restaurants/:restaurantID/onboarding/payment-link", h.onboarding.HandleCreatePaymentLink)
		admin.POST("/restaurants/:restaurantID/onboarding/payment-link/confirm", h.onboarding.HandleConfirmPaymentLink)
		admin.POST("/restaurants/:restaurantID/onboarding/messaging/connect", h.onboarding.HandleConnectMessaging)
		admin.GET("/restaurants/:restaurantID/onboarding/events", h.onboarding.HandleListOnboardingEvents)
		admin.GET("/restaurants/:restaurantID/onboarding/ws", h.onboarding.HandleOnboardingFeed)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(s.Metrics.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "RestoDesk back-office API"
	docs.SwaggerInfo.Description = "Super-admin API for restaurants, onboarding, POS and billing."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
