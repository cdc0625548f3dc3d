package main

import (
	"fmt"
	"net/http"

	"github.com/eventosfin/financeiro-backend-go/internal/authz"
	"github.com/eventosfin/financeiro-backend-go/internal/config"
	appHTTP "github.com/eventosfin/financeiro-backend-go/internal/handler/http"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/captcha"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/jwt"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/loginguard"
	"github.com/eventosfin/financeiro-backend-go/internal/pkg/oauth"
	"github.com/eventosfin/financeiro-backend-go/internal/repository/postgresql"
	serviceAuth "github.com/eventosfin/financeiro-backend-go/internal/service/auth"
	serviceCompany "github.com/eventosfin/financeiro-backend-go/internal/service/company"
	serviceEvent "github.com/eventosfin/financeiro-backend-go/internal/service/event"
	serviceFinancial "github.com/eventosfin/financeiro-backend-go/internal/service/financial"
	serviceRegistry "github.com/eventosfin/financeiro-backend-go/internal/service/registry"
	serviceReport "github.com/eventosfin/financeiro-backend-go/internal/service/report"
	serviceUser "github.com/eventosfin/financeiro-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	linkRepo := postgresql.NewLinkRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	supplierRepo := postgresql.NewSupplierRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	categoryRepo := postgresql.NewCategoryRepository(db)
	payableRepo := postgresql.NewPayableRepository(db)
	receivableRepo := postgresql.NewReceivableRepository(db)
	dailyRevenueRepo := postgresql.NewDailyRevenueRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	captchaStore := captcha.NewStore(cfg.Login.CaptchaTTL)
	guard := loginguard.New(cfg.Login.MaxFailures, cfg.Login.LockoutWindow)

	var googleService oauth.GoogleService
	if cfg.OAuth2Google.Enabled() {
		googleService = oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	}

	authzService := authz.NewService(linkRepo, eventRepo)

	authService := serviceAuth.NewAuthService(db, userRepo, jwtService, refreshTokenRepo, captchaStore, guard, googleService)
	companyService := serviceCompany.NewCompanyService(companyRepo, authzService)
	eventService := serviceEvent.NewEventService(eventRepo, authzService)
	financialService := serviceFinancial.NewFinancialService(payableRepo, receivableRepo, dailyRevenueRepo, eventRepo, authzService)
	supplierService := serviceRegistry.NewSupplierService(supplierRepo)
	clientService := serviceRegistry.NewClientService(clientRepo)
	categoryService := serviceRegistry.NewCategoryService(categoryRepo)
	reportService := serviceReport.NewReportService(eventRepo, payableRepo, receivableRepo, dailyRevenueRepo, authzService)
	userService := serviceUser.NewUserService(db, userRepo, linkRepo)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authService, jwtService, googleService),
		appHTTP.NewCompanyHandler(companyService),
		appHTTP.NewEventHandler(eventService),
		appHTTP.NewFinancialHandler(financialService),
		appHTTP.NewRegistryHandler(supplierService, clientService, categoryService),
		appHTTP.NewUserHandler(userService),
		appHTTP.NewReportHandler(reportService),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
