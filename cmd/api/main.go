package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/openvol/fundledger/internal/activity"
	"github.com/openvol/fundledger/internal/config"
	"github.com/openvol/fundledger/internal/database"
	"github.com/openvol/fundledger/internal/donation"
	donationStore "github.com/openvol/fundledger/internal/donation/store"
	"github.com/openvol/fundledger/internal/expense"
	expenseStore "github.com/openvol/fundledger/internal/expense/store"
	"github.com/openvol/fundledger/internal/fund"
	fundStore "github.com/openvol/fundledger/internal/fund/store"
	ledgerHttp "github.com/openvol/fundledger/internal/http"
	accountHandler "github.com/openvol/fundledger/internal/http/account"
	donationHandler "github.com/openvol/fundledger/internal/http/donation"
	expenseHandler "github.com/openvol/fundledger/internal/http/expense"
	transferHandler "github.com/openvol/fundledger/internal/http/transfer"
	"github.com/openvol/fundledger/internal/ledger"
	ledgerStore "github.com/openvol/fundledger/internal/ledger/store"
	"github.com/openvol/fundledger/internal/logging"
	"github.com/openvol/fundledger/internal/summary"
	summaryStore "github.com/openvol/fundledger/internal/summary/store"
	"github.com/openvol/fundledger/internal/transfer"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.App.Env)

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	sink := activity.NewLogSink(log)

	var (
		registry        = fund.NewRegistry(fundStore.New(db))
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		donationService = donation.NewService(donationStore.New(db), registry, sink)
		expenseService  = expense.NewService(expenseStore.New(db), registry, sink)
		transferService = transfer.NewService(registry, ledgerService, sink)
		summaryService  = summary.NewService(
			ledgerStore.New(db),
			donationService,
			expenseService,
			summaryStore.New(db),
			log,
		)
	)

	var (
		donationH = donationHandler.NewHandler(donationService)
		expenseH  = expenseHandler.NewHandler(expenseService)
		transferH = transferHandler.NewHandler(transferService)
		accountH  = accountHandler.NewHandler(registry, ledgerService, summaryService)
	)

	router := ledgerHttp.New(donationH, expenseH, transferH, accountH, ledgerHttp.Options{
		Logger:    log,
		JWTSecret: cfg.Auth.JWTSecret,
		DB:        db,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Info().Str("addr", addr).Msg("starting server")

	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}
