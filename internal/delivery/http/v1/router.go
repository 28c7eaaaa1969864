package v1

import (
	"os"

	"go-portfolio-backend/config"
	_ "go-portfolio-backend/docs" // Registers the swagger document
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/web"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const contactDeletedMessage = "Contato deletado com sucesso"

type RouterDeps struct {
	Resources   usecase.PortfolioSources
	PortfolioUC domain.PortfolioUsecase
	HealthUC    usecase.HealthUsecase
	Config      *config.Config
	Redis       *goredis.Client // optional, shared rate limit counters
}

func NewRouter(deps RouterDeps) *gin.Engine {
	isProduction := gin.Mode() == gin.ReleaseMode
	cfg := deps.Config

	r := gin.New()
	// ClientIP keys the write limiter, so forwarded headers count only from known proxies
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Log.Warn("invalid trusted proxies, ignoring forwarded headers", "error", err)
		_ = r.SetTrustedProxies(nil)
	}

	// Global Middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware(allowedOrigins(cfg), isProduction))
	r.Use(middleware.SecurityHeadersMiddleware(isProduction))
	r.Use(middleware.ErrorHandler())

	r.SetHTMLTemplate(web.Templates())
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Static("/static", cfg.StaticDir)
	}

	NewHealthHandler(r, deps.HealthUC)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	writes := api.Group("")
	if cfg.RateLimitWriteThreshold > 0 {
		writes.Use(middleware.RateLimitMiddleware(
			middleware.WriteRateLimitConfig(cfg.RateLimitWriteThreshold, cfg.RateLimitWindow(), deps.Redis),
		))
	}

	res := deps.Resources
	NewPortfolioHandler(r, api, deps.PortfolioUC)

	// Singletons
	NewSingletonHandler(api, writes, "/dados", res.Profile, "")
	NewSingletonHandler(api, writes, "/sobre", res.Biography, "")
	NewSingletonHandler(api, writes, "/contato", res.Contact, contactDeletedMessage)

	// Collections
	NewCollectionHandler(api, writes, "/formacoes", res.Education)
	NewCollectionHandler(api, writes, "/softskills", res.SoftSkills)
	NewCollectionHandler(api, writes, "/hardskills", res.HardSkills)
	NewCollectionHandler(api, writes, "/projetos", res.Projects)

	return r
}

func allowedOrigins(cfg *config.Config) []string {
	origins := append([]string{}, cfg.CORSAllowedOrigins...)
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	return origins
}
