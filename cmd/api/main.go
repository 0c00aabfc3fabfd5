package main

import (
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/agents-outreach/internal/entity"
	"github.com/xavierca1/agents-outreach/internal/infra/database"
	"github.com/xavierca1/agents-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/agents-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/anthropic"
	"github.com/xavierca1/agents-outreach/internal/infra/integration/stripe"
	"github.com/xavierca1/agents-outreach/internal/infra/mail"
	"github.com/xavierca1/agents-outreach/internal/infra/queue"
	"github.com/xavierca1/agents-outreach/internal/usecase"
)

func main() {
	godotenv.Load()

	// Tabelas fixas (pontuação, MRR, transições) precisam cobrir todos os
	// enums antes de aceitar tráfego.
	if err := entity.ValidateTables(); err != nil {
		log.Fatalf("❌ Tabela de domínio inconsistente: %v", err)
	}

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("❌ Banco indisponível: %v", err)
	}
	defer db.Close()

	// 1. Repositórios e stores
	prospectRepo := database.NewProspectRepository(db)
	attemptRepo := database.NewAttemptRepository(db)
	leadStore := database.NewLeadStore()
	qualifyStore := database.NewQualifyLeadStore()

	// 2. Gateways externos
	generator := anthropic.NewClient(os.Getenv("ANTHROPIC_API_KEY"), os.Getenv("ANTHROPIC_MODEL"))
	paymentGateway := stripe.NewClient(os.Getenv("STRIPE_SECRET_KEY"))

	// 3. Fila de alertas de lead quente (opcional em dev)
	var producer usecase.QueueProducerInterface
	var rabbitMQ *queue.RabbitMQ
	if host := os.Getenv("RABBITMQ_HOST"); host != "" {
		rabbitMQ, err = queue.NewRabbitMQ(
			os.Getenv("RABBITMQ_USER"), os.Getenv("RABBITMQ_PASS"),
			host, os.Getenv("RABBITMQ_PORT"),
		)
		if err != nil {
			log.Fatalf("❌ RabbitMQ indisponível: %v", err)
		}
		defer rabbitMQ.Conn.Close()
		defer rabbitMQ.Ch.Close()

		producer = queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

		mailSender := mail.NewEmailSender(
			os.Getenv("MAIL_HOST"), smtpPort(), os.Getenv("MAIL_USER"),
			os.Getenv("MAIL_PASS"), os.Getenv("SALES_ALERT_TO"),
		)
		worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
		go worker.Start(queue.QueueName)
	} else {
		log.Println("⚠️ RABBITMQ_HOST não configurado; alertas de lead quente desligados")
	}

	// 4. UseCases
	captureUC := usecase.NewCaptureLeadUseCase(leadStore, producer)
	overviewUC := usecase.NewLeadOverviewUseCase(leadStore)
	demoUC := usecase.NewDemoUseCase(generator)
	qualifyUC := usecase.NewQualifyUseCase(qualifyStore, paymentGateway, appURL())
	prospectUC := usecase.NewProspectUseCase(prospectRepo, attemptRepo)
	generateUC := usecase.NewGenerateSequenceUseCase(prospectRepo, attemptRepo, generator)
	generateUC.OnFallback = middleware.RecordGenerationFallback
	outcomeUC := usecase.NewOutcomeUseCase(prospectRepo, attemptRepo)
	statsUC := usecase.NewStatsUseCase(prospectRepo, attemptRepo)

	// 5. Handlers
	leadHandler := handlers.NewLeadHandler(captureUC, overviewUC)
	demoHandler := handlers.NewDemoHandler(demoUC)
	qualifyHandler := handlers.NewQualifyHandler(qualifyUC)
	prospectingHandler := handlers.NewProspectingHandler(prospectUC, generateUC, outcomeUC, statsUC)

	var healthHandler *handlers.HealthHandler
	if rabbitMQ != nil {
		healthHandler = handlers.NewHealthHandler(db, rabbitMQ.Conn)
	} else {
		healthHandler = handlers.NewHealthHandler(db, nil)
	}

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Account-ID"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/api/leads/capture", leadHandler.Capture)
	r.With(middleware.RequireAccount).Get("/api/leads", leadHandler.Overview)

	r.Route("/api/demo", func(r chi.Router) {
		r.Post("/run", demoHandler.Run)
		r.Get("/agents", demoHandler.AgentTypes)
	})

	r.Route("/api/qualify", func(r chi.Router) {
		r.Post("/lead", qualifyHandler.CreateLead)
		r.Get("/lead/{id}", qualifyHandler.GetLead)
		r.Post("/payment-link", qualifyHandler.CreatePaymentLink)
	})

	r.Route("/api/prospecting", func(r chi.Router) {
		r.Use(middleware.RequireAccount)
		r.Get("/stats", prospectingHandler.Stats)
		r.Get("/prospects", prospectingHandler.List)
		r.Post("/prospects", prospectingHandler.Create)
		r.Delete("/prospects/{id}", prospectingHandler.Delete)
		r.Post("/prospects/{id}/generate", prospectingHandler.Generate)
		r.Post("/attempts/{id}/sent", prospectingHandler.MarkSent)
		r.Post("/attempts/{id}/outcome", prospectingHandler.MarkOutcome)
	})

	port := ":8080"
	log.Printf("🔥 Server agents-outreach rodando na porta %s", port)
	http.ListenAndServe(port, r)
}

func appURL() string {
	if url := os.Getenv("APP_URL"); url != "" {
		return url
	}
	return "http://localhost:5173"
}

func smtpPort() int {
	if p, err := strconv.Atoi(os.Getenv("MAIL_PORT")); err == nil {
		return p
	}
	return 587
}
