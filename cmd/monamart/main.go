package main

import (
	"io"
	"log"
	"os"

	"monamart/internal/cli"
	"monamart/internal/config"
	"monamart/internal/domain"
	"monamart/internal/repos"
	"monamart/internal/services"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, f))
		}
	}

	db, err := repos.OpenDB(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	domain.InitPromotions()

	productRepo := repos.NewProductRepo(db)
	userRepo := repos.NewUserRepo(db)
	orderRepo := repos.NewOrderRepo(db)
	storeRepo := repos.NewStoreRepo(db)
	membershipRepo := repos.NewMembershipRepo(db)
	checkoutRepo := repos.NewCheckoutRepo(db)

	accounts := services.NewAccountService(userRepo, membershipRepo)
	catalog := services.NewCatalogService(productRepo)
	carts := services.NewCartService(productRepo)
	checkout := services.NewCheckoutService(orderRepo, userRepo, checkoutRepo)

	session := cli.NewSession(os.Stdin, os.Stdout, accounts, catalog, carts, checkout, storeRepo)
	session.Run()
}
