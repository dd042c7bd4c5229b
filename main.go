package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kitchenpos/config"
	"kitchenpos/handlers"
	"kitchenpos/middleware"
	"kitchenpos/repository"
	"kitchenpos/routes"
	"kitchenpos/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger:", err)
		os.Exit(1)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg.DBPath)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	log.Info("database connected and migrated", zap.String("path", cfg.DBPath))

	h := newHandler(db, cfg)
	if cfg.Manager.Email != "" {
		created, err := h.Staff.EnsureManager(context.Background(), cfg.Manager.Name, cfg.Manager.Email, cfg.Manager.Password)
		if err != nil {
			log.Fatal("seed manager", zap.Error(err))
		}
		if created {
			log.Info("manager account seeded", zap.String("email", cfg.Manager.Email))
		}
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(log), gin.Recovery())
	routes.SetupRoutes(r, h)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}

func newHandler(db *gorm.DB, cfg *config.Config) *handlers.Handler {
	tx := repository.NewTransactor(db)
	products := repository.NewProductRepository(db)
	menuGroups := repository.NewMenuGroupRepository(db)
	menus := repository.NewMenuRepository(db)
	menuProducts := repository.NewMenuProductRepository(db)
	tables := repository.NewOrderTableRepository(db)
	tableGroups := repository.NewTableGroupRepository(db)

	return &handlers.Handler{
		Products:    services.NewProductService(products),
		MenuGroups:  services.NewMenuGroupService(menuGroups),
		Menus:       services.NewMenuService(menuGroups, products, menus, menuProducts, tx),
		Tables:      services.NewOrderTableService(tables),
		TableGroups: services.NewTableGroupService(tableGroups, tables, tx),
		Staff:       services.NewStaffService(repository.NewStaffRepository(db)),
		Auth:        middleware.NewAuth(cfg.JWT.Secret, cfg.JWT.TTL),
	}
}
