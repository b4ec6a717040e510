package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/venkatesh141/Ecom/api/middleware"
	v1 "github.com/venkatesh141/Ecom/api/v1"
	"github.com/venkatesh141/Ecom/internal/cache"
	"github.com/venkatesh141/Ecom/internal/dao"
	"github.com/venkatesh141/Ecom/internal/dao/mysql"
	"github.com/venkatesh141/Ecom/internal/dao/redis"
	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/internal/mq"
	"github.com/venkatesh141/Ecom/internal/service"
	"github.com/venkatesh141/Ecom/internal/storage"
	"github.com/venkatesh141/Ecom/pkg/app"
	"github.com/venkatesh141/Ecom/pkg/logger"
	"github.com/venkatesh141/Ecom/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := app.BootstrapApp()

	db, err := mysql.InitDB(&cfg.Database.Mysql)
	if err != nil {
		logger.Error("connect mysql failed", "err", err)
		return
	}
	if err := db.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Category{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		logger.Error("auto migrate failed", "err", err)
		return
	}
	logger.Info("database connected")

	// Optional collaborators: redis cache, MQ events, S3 image store. The
	// server runs without each of them.
	var catalog *cache.CatalogCache
	if cfg.Database.Redis.CacheTTLSeconds > 0 {
		rdb, err := redis.InitRedis(&cfg.Database.Redis)
		if err != nil {
			logger.Warn("init redis failed, catalog cache disabled", "err", err)
		} else {
			catalog = cache.NewCatalogCache(rdb, time.Duration(cfg.Database.Redis.CacheTTLSeconds)*time.Second)
		}
	}

	var publisher service.Publisher
	if cfg.MQ.Host != "" {
		mqPool, err := mq.Init(&cfg.MQ)
		if err != nil {
			logger.Warn("init mq failed, order events disabled", "err", err)
		} else {
			defer mqPool.Close()
			publisher = mqPool
		}
	}

	var images storage.ImageStore
	if cfg.AWS.Bucket != "" {
		s3Store, err := storage.NewS3ImageStore(context.Background(), &cfg.AWS)
		if err != nil {
			logger.Warn("init s3 failed, image upload disabled", "err", err)
		} else {
			images = s3Store
		}
	}

	userDao := dao.NewUserDao(db)
	categoryDao := dao.NewCategoryDao(db)
	productDao := dao.NewProductDao(db)
	addressDao := dao.NewAddressDao(db)
	orderDao := dao.NewOrderDao(db)

	jwtUtil := utils.NewJWTUtil(cfg.JWT.Secret, cfg.JWT.ExpireHours)

	authService := service.NewAuthService(userDao, jwtUtil)
	userService := service.NewUserService(userDao)
	categoryService := service.NewCategoryService(categoryDao, catalog)
	productService := service.NewProductService(productDao, categoryDao, images, catalog)
	addressService := service.NewAddressService(addressDao)
	orderService := service.NewOrderService(orderDao, productDao, publisher)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := authService.SeedAdmin(seedCtx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.Phone); err != nil {
		logger.Warn("seed admin failed", "err", err)
	}
	cancel()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS())
	router.Use(middleware.GlobalRateLimit(cfg))

	jwtAuth := middleware.JWTAuthMiddleware(jwtUtil)
	adminOnly := middleware.AdminRequired()

	root := router.Group("/")
	v1.NewAuthHandler(authService).RegisterRoutes(root)
	v1.NewUserHandler(userService).RegisterRoutes(root, jwtAuth, adminOnly)
	v1.NewCategoryHandler(categoryService).RegisterRoutes(root, jwtAuth, adminOnly)
	v1.NewProductHandler(productService).RegisterRoutes(root, jwtAuth, adminOnly)
	v1.NewAddressHandler(addressService).RegisterRoutes(root, jwtAuth)

	orderGroup := router.Group("/", middleware.OrderRateLimit(cfg))
	v1.NewOrderHandler(orderService).RegisterRoutes(orderGroup, jwtAuth, adminOnly)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	logger.Info("HTTP server started", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("HTTP server stopped", "err", err)
	}
}
