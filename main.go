package main

import (
	"io"
	"log"
	"net/http"
	"os"

	"visaportal/internal/config"
	"visaportal/internal/gelf"
	"visaportal/internal/handler"
	"visaportal/internal/mailer"
	"visaportal/internal/repository"
	"visaportal/internal/router"
	"visaportal/internal/service"
	"visaportal/internal/session"
)

func main() {
	cfg := config.Load()

	// GELF UDP logging
	if cfg.GelfAddr != "" {
		gelfWriter, err := gelf.New(cfg.GelfAddr)
		if err != nil {
			log.Printf("Warning: GELF init failed: %v", err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stderr, gelfWriter))
			log.Printf("GELF logging: enabled (%s)", cfg.GelfAddr)
		}
	}

	log.Printf("Mail relay: %s:%d (sender %s, admin %s)", cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUsername, cfg.AdminEmail)
	if !cfg.Complete() {
		log.Printf("Warning: configuration incomplete, submissions will be refused until it is fixed")
	}

	// Core components
	dispatcher := mailer.NewSMTPDispatcher(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailUsername, cfg.EmailPassword, cfg.AdminEmail)
	receipts := repository.NewReceiptRepo(200)
	cookies := session.NewCookieStore(cfg.SessionSecret)

	// Services
	subSvc := service.NewSubmissionService(cfg, service.NewIDGenerator(), service.NewVerifier(), dispatcher, receipts)
	authSvc := service.NewAuthService(cfg.OperatorEmail, cfg.OperatorPass, cfg.SessionSecret)

	// Handlers
	formH := handler.NewFormHandler(subSvc, cookies)
	appH := handler.NewApplicationHandler(subSvc, cookies)
	authH := handler.NewAuthHandler(authSvc)
	adminH := handler.NewAdminHandler(cfg, receipts)

	// Router
	r := router.New(cfg.SessionSecret, formH, appH, authH, adminH)

	log.Printf("visaportal server starting on %s", cfg.HTTPAddr)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
