package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/tylertidwell91-git/ouachitawater/internal/config"
	"github.com/tylertidwell91-git/ouachitawater/internal/notify"
	"github.com/tylertidwell91-git/ouachitawater/internal/payment"
	"github.com/tylertidwell91-git/ouachitawater/internal/submission"
	"github.com/tylertidwell91-git/ouachitawater/internal/web"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var gateway payment.Gateway
	if cfg.PaymentsEnabled() {
		gateway = payment.NewStripeGateway(cfg.StripeSecretKey)
	} else {
		log.Println("STRIPE_SECRET_KEY not set; card payments are disabled")
	}

	mailer, err := notify.NewSMTPMailer(cfg.SMTP, cfg.FromEmail)
	if err != nil {
		log.Fatalf("Failed to configure mail relay: %v", err)
	}
	dispatcher := notify.NewDispatcher(mailer)
	svc := submission.NewService(gateway, dispatcher, cfg.OperatorEmail)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ListenPort),
		Handler: web.NewServer(cfg, svc).Handler(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("Server running at http://localhost:%d", cfg.ListenPort)
		log.Printf("Bill pay form: http://localhost:%d/bill-pay.html", cfg.ListenPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, draining connections...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}
	log.Println("Shutdown complete")
}
