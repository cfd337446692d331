package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/config"
	"storefront/internal/db"
	"storefront/internal/httpserver"
	articlerepo "storefront/internal/repository/article"
	cartrepo "storefront/internal/repository/cart"
	categoryrepo "storefront/internal/repository/category"
	favoriterepo "storefront/internal/repository/favorite"
	orderrepo "storefront/internal/repository/order"
	productrepo "storefront/internal/repository/product"
	reactionrepo "storefront/internal/repository/reaction"
	reviewrepo "storefront/internal/repository/review"
	tokenrepo "storefront/internal/repository/token"
	userrepo "storefront/internal/repository/user"
	articlesvc "storefront/internal/service/article"
	cartsvc "storefront/internal/service/cart"
	catalogsvc "storefront/internal/service/catalog"
	favoritesvc "storefront/internal/service/favorite"
	ordersvc "storefront/internal/service/order"
	reactionsvc "storefront/internal/service/reaction"
	reviewsvc "storefront/internal/service/review"
	usersvc "storefront/internal/service/user"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	userRepo := userrepo.NewPostgres(dbpool)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	categoryRepo := categoryrepo.NewPostgres(dbpool)
	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	reviewRepo := reviewrepo.NewPostgres(dbpool)
	reactionRepo := reactionrepo.NewPostgres(dbpool)
	articleRepo := articlerepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)

	userService := usersvc.New(userRepo, tokenRepo, cfg.AccessTokenTTL)
	catalogService := catalogsvc.New(productRepo, categoryRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	orderService := ordersvc.New(orderRepo)
	reviewService := reviewsvc.New(reviewRepo, orderRepo, productRepo)
	reactionService := reactionsvc.New(reactionRepo)
	articleService := articlesvc.New(articleRepo)
	favoriteService := favoritesvc.New(favoriteRepo, productRepo)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		UserSvc:     userService,
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		OrderSvc:    orderService,
		ReviewSvc:   reviewService,
		ReactionSvc: reactionService,
		ArticleSvc:  articleService,
		FavoriteSvc: favoriteService,
	}, cfg.AllowedOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
