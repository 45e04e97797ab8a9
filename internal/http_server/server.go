// Package http_server
package http_server

import (
	"context"
	"errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/half-nothing/simple-surety/internal/http_server/controller"
	mid "github.com/half-nothing/simple-surety/internal/http_server/middleware"
	impl "github.com/half-nothing/simple-surety/internal/http_server/service"
	. "github.com/half-nothing/simple-surety/internal/interfaces"
	"github.com/half-nothing/simple-surety/internal/interfaces/global"
	"github.com/half-nothing/simple-surety/internal/interfaces/service"
	"github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/samber/slog-echo"
	"io"
	"log/slog"
	"net/http"
	"time"
)

type HttpServerShutdownCallback struct {
	serverHandler *echo.Echo
}

func NewHttpServerShutdownCallback(serverHandler *echo.Echo) *HttpServerShutdownCallback {
	return &HttpServerShutdownCallback{
		serverHandler: serverHandler,
	}
}

func (hc *HttpServerShutdownCallback) Invoke(ctx context.Context) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, global.ShutdownTimeout)
	defer cancel()
	return hc.serverHandler.Shutdown(timeoutCtx)
}

// NewHttpServer builds the echo instance with every middleware and route mounted
func NewHttpServer(applicationContent *ApplicationContent) *echo.Echo {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	core := applicationContent.Core()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetOutput(io.Discard)
	e.Logger.SetLevel(log.OFF)
	httpConfig := config.Server.HttpServer

	switch httpConfig.ProxyType {
	case 0:
		e.IPExtractor = echo.ExtractIPDirect()
	case 1:
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	case 2:
		e.IPExtractor = echo.ExtractIPFromRealIPHeader()
	default:
		logger.WarnF("Invalid proxy type %d, using default (direct)", httpConfig.ProxyType)
		e.IPExtractor = echo.ExtractIPDirect()
	}

	if httpConfig.SSL.ForceSSL {
		e.Use(middleware.HTTPSRedirect())
	}

	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{Timeout: 30 * time.Second}))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(ctx echo.Context, err error, stack []byte) error {
			logger.ErrorF("Recovered from a fatal error: %v, stack: %s", err, string(stack))
			return err
		},
	}))

	loggerConfig := slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
	}
	e.Use(slogecho.NewWithConfig(slog.Default(), loggerConfig))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            httpConfig.SSL.HstsExpiredTime,
		HSTSExcludeSubdomains: !httpConfig.SSL.IncludeDomain,
	}))
	e.Use(middleware.CORS())
	if httpConfig.BodyLimit != "" {
		e.Use(middleware.BodyLimit(httpConfig.BodyLimit))
	}
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
	}))

	if httpConfig.Limits.RateLimit <= 0 {
		logger.WarnF("Invalid rate limit value %d, using default 15", httpConfig.Limits.RateLimit)
		httpConfig.Limits.RateLimit = 15
	}

	if httpConfig.Limits.RateLimitDuration <= 0 {
		logger.WarnF("Invalid rate limit duration %v, using default 1m", httpConfig.Limits.RateLimitDuration)
		httpConfig.Limits.RateLimitDuration = time.Minute
	}

	ipPathLimiter := mid.NewSlidingWindowLimiter(
		httpConfig.Limits.RateLimitDuration,
		httpConfig.Limits.RateLimit,
	)
	cleanupInterval := httpConfig.Limits.RateLimitDuration * 2
	if cleanupInterval > time.Hour {
		cleanupInterval = time.Hour
		logger.InfoF("Limiting cleanup interval to 1 hour for efficiency")
	}
	ipPathLimiter.StartCleanup(cleanupInterval)
	applicationContent.Cleaner().Add(ipPathLimiter)

	e.Use(mid.RateLimitMiddleware(ipPathLimiter, mid.CombinedKeyFunc))

	jwtConfig := echojwt.Config{
		SigningKey:    []byte(httpConfig.JWT.Secret),
		TokenLookup:   "header:Authorization:Bearer ",
		SigningMethod: "HS512",
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(service.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			var data *service.ApiResponse[any]
			switch {
			case errors.Is(err, echojwt.ErrJWTMissing):
				data = service.NewApiResponse[any](&service.ErrMissingOrMalformedJwt, service.Unsatisfied, nil)
			case errors.Is(err, echojwt.ErrJWTInvalid):
				data = service.NewApiResponse[any](&service.ErrInvalidOrExpiredJwt, service.Unsatisfied, nil)
			default:
				data = service.NewApiResponse[any](&service.ErrUnknown, service.Unsatisfied, nil)
			}
			return data.Response(c)
		},
	}

	jwtMiddleware := echojwt.WithConfig(jwtConfig)

	impl.InitValidator(httpConfig.Limits)

	accountService := impl.NewAccountService(
		logger,
		httpConfig,
		config.Surety,
		config.Server.OracleRelay,
		applicationContent.Operations().AccountOperation(),
	)
	airlineService := impl.NewAirlineService(logger, core)
	flightService := impl.NewFlightService(logger, core)
	oracleService := impl.NewOracleService(logger, core)
	insuranceService := impl.NewInsuranceService(logger, core)
	governanceService := impl.NewGovernanceService(logger, core)
	eventService := impl.NewEventService(logger, core)
	relayService := impl.NewRelayService(logger, applicationContent.Relay())

	accountController := controller.NewAccountController(logger, accountService)
	airlineController := controller.NewAirlineController(logger, airlineService)
	flightController := controller.NewFlightController(logger, flightService)
	oracleController := controller.NewOracleController(logger, oracleService)
	insuranceController := controller.NewInsuranceController(logger, insuranceService)
	governanceController := controller.NewGovernanceController(logger, governanceService)
	eventController := controller.NewEventController(logger, eventService)
	relayController := controller.NewRelayController(logger, relayService)

	apiGroup := e.Group("/api")
	apiGroup.POST("/accounts", accountController.Register)
	apiGroup.POST("/sessions", accountController.Login)
	apiGroup.GET("/sessions", accountController.GetToken, jwtMiddleware)

	airlineGroup := apiGroup.Group("/airlines")
	airlineGroup.GET("", airlineController.GetAirlines)
	airlineGroup.POST("", airlineController.RegisterAirline, jwtMiddleware)
	airlineGroup.POST("/funding", airlineController.FundAirline, jwtMiddleware)
	airlineGroup.GET("/:identity", airlineController.GetAirline)
	airlineGroup.GET("/:identity/votes", airlineController.GetAirlineVotes)
	airlineGroup.GET("/:identity/flights", flightController.GetFlights)

	flightGroup := apiGroup.Group("/flights")
	flightGroup.POST("", flightController.RegisterFlight, jwtMiddleware)
	flightGroup.GET("/:airline/:designator/:departure", flightController.GetFlight)
	flightGroup.POST("/:airline/:designator/:departure/requests", flightController.RequestStatus, jwtMiddleware)
	flightGroup.GET("/:airline/:designator/:departure/requests/:index", oracleController.GetRequest)

	oracleGroup := apiGroup.Group("/oracles")
	oracleGroup.POST("", oracleController.RegisterOracle, jwtMiddleware)
	oracleGroup.GET("/indexes", oracleController.GetIndexes, jwtMiddleware)
	oracleGroup.POST("/responses", oracleController.SubmitResponse, jwtMiddleware)

	apiGroup.POST("/policies", insuranceController.BuyInsurance, jwtMiddleware)
	apiGroup.GET("/policies", insuranceController.GetPolicies, jwtMiddleware)
	apiGroup.POST("/claims", insuranceController.ClaimInsurance, jwtMiddleware)
	apiGroup.GET("/balance", insuranceController.GetBalance, jwtMiddleware)
	apiGroup.GET("/transfers", insuranceController.GetTransfers, jwtMiddleware)

	apiGroup.GET("/operational", governanceController.GetOperatingStatus)
	apiGroup.PUT("/operational/:ledger", governanceController.SetOperatingStatus, jwtMiddleware)
	apiGroup.POST("/callers/:identity", governanceController.AuthorizeCaller, jwtMiddleware)
	apiGroup.DELETE("/callers/:identity", governanceController.DeauthorizeCaller, jwtMiddleware)

	apiGroup.GET("/events", eventController.GetEvents)

	apiGroup.GET("/relay/status", relayController.GetRelayStatus)
	apiGroup.PUT("/relay/status", relayController.SetRelayStatus, jwtMiddleware)

	return e
}

func StartHttpServer(applicationContent *ApplicationContent) {
	config := applicationContent.ConfigManager().Config()
	logger := applicationContent.Logger()
	httpConfig := config.Server.HttpServer

	e := NewHttpServer(applicationContent)
	applicationContent.Cleaner().Add(NewHttpServerShutdownCallback(e))

	protocol := "http"
	if httpConfig.SSL.Enable {
		protocol = "https"
	}
	logger.InfoF("Starting %s server on %s", protocol, httpConfig.Address)
	logger.InfoF("Rate limit: %d requests per %v",
		httpConfig.Limits.RateLimit,
		httpConfig.Limits.RateLimitDuration)

	var err error
	if httpConfig.SSL.Enable {
		err = e.StartTLS(
			httpConfig.Address,
			httpConfig.SSL.CertFile,
			httpConfig.SSL.KeyFile,
		)
	} else {
		err = e.Start(httpConfig.Address)
	}

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.FatalF("Http server error: %v", err)
	}
}
