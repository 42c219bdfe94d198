package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"globalhearts_backend/internals/configs"
	database "globalhearts_backend/internals/databases"
	donationService "globalhearts_backend/internals/features/donations/service"
	engagementService "globalhearts_backend/internals/features/engagement/service"
	galleryService "globalhearts_backend/internals/features/gallery/service"
	helper "globalhearts_backend/internals/helpers"
	"globalhearts_backend/internals/helpers/toast"
	middlewares "globalhearts_backend/internals/middlewares"
	routes "globalhearts_backend/internals/route"
	"globalhearts_backend/internals/seeds"
)

func main() {
	configs.LoadEnv()
	cfg := configs.Load()

	app := fiber.New(fiber.Config{
		// 🚀 fast JSON
		JSONEncoder:             sonic.Marshal,
		JSONDecoder:             sonic.Unmarshal,
		ErrorHandler:            helper.FiberErrorHandler,
		DisableStartupMessage:   true,
		BodyLimit:               1 << 20,
		ProxyHeader:             fiber.HeaderXForwardedFor,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          []string{"0.0.0.0/0"},
	})

	middlewares.SetupMiddlewares(app, middlewares.Options{
		CorsOrigins:    cfg.Server.CorsOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		TimeZone:       cfg.Server.LogTimeZone,
	})

	// 🔌 DB connect + pool + schema + seeds
	db, err := database.ConnectDB(cfg.Database)
	if err != nil {
		log.Fatalf("❌ DB connect failed: %v", err)
	}
	database.TunePool(db, cfg.Database.Driver)
	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("❌ %v", err)
		}
	}
	if cfg.Database.Seed {
		if err := seeds.RunAllSeeds(db, cfg.Database.SeedDir); err != nil {
			log.Printf("[WARN] seeding skipped: %v", err)
		}
	}

	// 💝 donation runtime (in-memory only)
	rt := newDonationRuntime(cfg)
	reaper, err := donationService.StartSessionReaper(rt.Store, cfg.Donation.ReaperSchedule)
	if err != nil {
		log.Fatalf("❌ session reaper: %v", err)
	}

	routes.SetupRoutes(app, routes.Deps{
		DB:         db,
		Donations:  rt,
		Gallery:    galleryService.NewGallery(cfg.GalleryDir),
		Newsletter: engagementService.NewFormSimulator(cfg.Engagement.NewsletterDelay),
		Contact:    engagementService.NewFormSimulator(cfg.Engagement.ContactDelay),
	})

	// 🔒 keep-alive & connection timeouts
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	go func() {
		log.Printf("✅ Listening on :%s", cfg.Server.Port)
		if err := app.Listen("0.0.0.0:" + cfg.Server.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown: HTTP, reaper, sessions, DB pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] 🛑 shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	select {
	case <-reaper.Stop().Done():
	case <-ctx.Done():
	}
	rt.Store.Sweep(time.Now().Add(cfg.Donation.SessionTTL + time.Hour))
	database.Close(db)
}

func newDonationRuntime(cfg configs.AppConfig) *donationService.Runtime {
	org := donationService.DefaultOrganization()
	org.Name = cfg.Org.Name
	org.Location = cfg.Org.Location
	org.Email = cfg.Org.Email
	org.Phone = cfg.Org.Phone
	org.Website = cfg.Org.Website
	org.TimeZone = cfg.Org.TimeZone

	bank := donationService.DefaultBankDetails()
	if cfg.Org.BankName != "" {
		bank.BankName = cfg.Org.BankName
	}
	if cfg.Org.BankAccountName != "" {
		bank.AccountName = cfg.Org.BankAccountName
	}
	if cfg.Org.BankAccountNumber != "" {
		bank.AccountNumber = cfg.Org.BankAccountNumber
	}
	if cfg.Org.BankSwiftCode != "" {
		bank.SwiftCode = cfg.Org.BankSwiftCode
	}

	store := donationService.NewSessionStore(donationService.SessionConfig{
		Rules: donationService.ValidationRules{RequirePolicy: cfg.Donation.RequirePolicy},
		Dispatcher: &donationService.SimulatedDispatcher{
			Delay: cfg.Donation.ProcessingDelay,
			IDs:   donationService.TransactionIDGenerator{Prefix: cfg.Donation.TxPrefix},
			Review: donationService.ReviewPolicy{
				AmountThreshold: cfg.Donation.ReviewThreshold,
				RepeatWindow:    cfg.Donation.ReviewWindow,
			},
		},
		Notifier: toast.LogNotifier{Scope: "donation"},
	}, cfg.Donation.SessionTTL)

	return &donationService.Runtime{
		Store:       store,
		Tokens:      donationService.NewReceiptTokens(cfg.Receipt.TokenSecret, cfg.Receipt.TokenTTL),
		Org:         org,
		Bank:        bank,
		WaitTimeout: cfg.Donation.WaitTimeout,
	}
}
