// Package server wires the HTTP surface: routes, middleware, and the
// per-resource handlers that apply domain rules against the document store.
package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/example/minimart/pkg/auth"
	"github.com/example/minimart/pkg/config"
	"github.com/example/minimart/pkg/store"
)

type Server struct {
	config *config.Config
	store  *store.Store
	tokens *auth.Service
	logger *zap.Logger
	router *gin.Engine
}

func New(cfg *config.Config, logger *zap.Logger, st *store.Store, tokens *auth.Service) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggerMiddleware(logger))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept-Language"},
		AllowCredentials: false,
	}))
	router.Use(languageMiddleware())

	return &Server{
		config: cfg,
		store:  st,
		tokens: tokens,
		logger: logger,
		router: router,
	}
}

func (s *Server) SetupRoutes() {
	// Health check
	s.router.GET("/health", s.health)

	// Auth
	s.router.POST("/login", s.login)
	s.router.POST("/register", s.register)

	// Public catalog
	s.router.GET("/products", s.listProducts)
	s.router.GET("/products/:id", s.getProduct)
	s.router.GET("/categories", s.listCategories)
	s.router.GET("/categories/:id", s.getCategory)
	s.router.GET("/banners", s.listBanners)
	s.router.GET("/banners/:id", s.getBanner)

	// Authenticated
	authed := s.router.Group("", s.authRequired)
	{
		authed.GET("/profile", s.getProfile)
		authed.PUT("/profile", s.updateProfile)

		authed.POST("/products", s.createProduct)
		authed.PUT("/products/:id", s.updateProduct)
		authed.DELETE("/products/:id", s.deleteProduct)

		authed.POST("/categories", s.createCategory)
		authed.PUT("/categories/:id", s.updateCategory)
		authed.DELETE("/categories/:id", s.deleteCategory)

		authed.POST("/banners", s.createBanner)
		authed.PUT("/banners/:id", s.updateBanner)
		authed.DELETE("/banners/:id", s.deleteBanner)

		authed.GET("/cart", s.getCart)
		authed.POST("/cart", s.addToCart)
		authed.PUT("/cart/:id", s.updateCartItem)
		authed.DELETE("/cart/:id", s.removeCartItem)

		authed.POST("/orders", s.placeOrder)
		authed.GET("/orders/:id", s.getOrder)
		authed.GET("/orders/user/:userId", s.listUserOrders)
	}

	// Swagger
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.logger.Info("Server starting", zap.String("address", addr))
	return s.router.Run(addr)
}

func (s *Server) health(c *gin.Context) {
	s.respond(c, http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}, "health_check")
}
