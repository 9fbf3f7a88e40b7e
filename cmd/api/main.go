package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/dcastellanos/inventario-backend/internal/config"
	"github.com/dcastellanos/inventario-backend/internal/database"
	"github.com/dcastellanos/inventario-backend/internal/logger"
	"github.com/dcastellanos/inventario-backend/internal/modules/auth"
	"github.com/dcastellanos/inventario-backend/internal/modules/category"
	"github.com/dcastellanos/inventario-backend/internal/modules/product"
	"github.com/dcastellanos/inventario-backend/internal/modules/stockhistory"
	"github.com/dcastellanos/inventario-backend/internal/modules/store"
	"github.com/dcastellanos/inventario-backend/internal/modules/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	defer log.Sync()

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatal("no se pudo conectar a la base de datos", zap.Error(err))
	}
	defer db.Close()
	log.Info("conectado a la base de datos")

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)

	authService := auth.NewService(userRepo, cfg.JWT.Secret, cfg.JWT.ExpiryDays)

	storeRepo := store.NewPostgresRepository(db)
	storeService := store.NewService(storeRepo)

	categoryRepo := category.NewPostgresRepository(db)
	categoryService := category.NewService(categoryRepo)

	productRepo := product.NewPostgresRepository(db)
	productService := product.NewService(productRepo)

	stockRepo := stockhistory.NewPostgresRepository(db)
	stockService := stockhistory.NewService(stockRepo)

	router.Route("/api/v1/public", func(r chi.Router) {
		// La emision del token es la unica ruta sin gate de autorizacion.
		auth.NewHandler(authService).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(authService, log))
			store.NewHandler(storeService).RegisterRoutes(r)
			category.NewHandler(categoryService).RegisterRoutes(r)
			product.NewHandler(productService).RegisterRoutes(r)
			user.NewHandler(userService).RegisterRoutes(r)
			stockhistory.NewHandler(stockService).RegisterRoutes(r)
		})
	})

	addr := ":" + cfg.Server.Port
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Info("servidor escuchando", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("servidor detenido", zap.Error(err))
	}
}
