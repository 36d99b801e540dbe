package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	webAdapter "stockbooks/internal/adapters/web"
	"stockbooks/internal/app"
	"stockbooks/internal/client"
	"stockbooks/internal/config"
	"stockbooks/internal/core"
	"stockbooks/internal/db"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("config")
	}
	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	}

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DB.URL)
	if err != nil {
		log.WithError(err).Fatal("database")
	}
	defer pool.Close()

	salesService := core.NewSalesService(pool)
	inventoryService := core.NewInventoryService(pool)
	customerService := core.NewCustomerService(pool)
	supplierService := core.NewSupplierService(pool)
	userService := core.NewUserService(pool)

	ledger, err := cfg.LedgerInputs()
	if err != nil {
		log.WithError(err).Fatal("ledger config")
	}
	agg := core.Aggregator{Ledger: ledger, Now: time.Now}

	// Reports read either the local database or a remote dashboard API,
	// depending on configuration.
	var source app.ReportSource
	if cfg.Report.SourceURL != "" {
		source = client.New(cfg.Report.SourceURL,
			client.WithToken(cfg.Report.SourceToken),
			client.WithLogger(log))
		log.WithField("url", cfg.Report.SourceURL).Info("report source: remote API")
	} else {
		source = app.StoreSource{
			Sales:     salesService,
			Inventory: inventoryService,
			Customers: customerService,
			Suppliers: supplierService,
		}
	}

	svc := app.NewAppService(salesService, inventoryService, customerService,
		supplierService, userService, source, agg, log)

	handler := webAdapter.NewHandler(svc, cfg.App.AllowedOrigins,
		cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, log)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.WithField("addr", addr).Info("server starting")
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.WithError(err).Fatal("server")
	}
}
