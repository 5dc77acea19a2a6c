package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"merchant-payment-api/config"
	"merchant-payment-api/handlers"
	"merchant-payment-api/idempotency"
	"merchant-payment-api/middleware"
	"merchant-payment-api/services/auth"
	"merchant-payment-api/services/payment"
	"merchant-payment-api/services/payment/braintree"
)

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, Idempotency-Key")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapper := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(wrapper, r)

		// Only slow requests and errors are worth a line.
		elapsed := time.Since(start)
		if elapsed > 500*time.Millisecond || wrapper.status >= 400 {
			log.Printf(
				"%s %s %s %d %v",
				r.Method,
				r.RequestURI,
				r.RemoteAddr,
				wrapper.status,
				elapsed,
			)
		}
	})
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile | log.Lmicroseconds | log.LUTC)

	numCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(numCPU)
	log.Printf("Server starting with %d CPUs available", numCPU)

	cfg := config.Load()
	log.Printf("Configuration loaded successfully")

	// Connect to Redis with retry; it backs idempotency and rate limiting.
	var store *idempotency.Store
	var err error
	for retries := 0; retries < 5; retries++ {
		store, err = idempotency.NewStore(cfg.Redis.URL, "sale_idempotency")
		if err == nil {
			break
		}
		retryDelay := time.Duration(retries+1) * time.Second
		log.Printf("Failed to connect to Redis (attempt %d/5): %v. Retrying in %v...",
			retries+1, err, retryDelay)
		time.Sleep(retryDelay)
	}
	if err != nil {
		log.Fatalf("Failed to connect to Redis after retries: %v", err)
	}
	defer store.Close()
	log.Println("Successfully connected to Redis")

	gatewayClient := braintree.NewClient(
		cfg.Gateway.MerchantID,
		cfg.Gateway.PublicKey,
		cfg.Gateway.PrivateKey,
		cfg.Gateway.Environment,
		"",
	)
	paymentService := payment.NewService(gatewayClient)
	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	saleHandler, err := handlers.NewSaleHandler(paymentService, store)
	if err != nil {
		log.Fatalf("Failed to initialize sale handler: %v", err)
	}
	clientTokenHandler, err := handlers.NewClientTokenHandler(paymentService)
	if err != nil {
		log.Fatalf("Failed to initialize client token handler: %v", err)
	}
	transactionsHandler, err := handlers.NewTransactionsHandler(paymentService)
	if err != nil {
		log.Fatalf("Failed to initialize transactions handler: %v", err)
	}

	rateLimiter := middleware.NewRateLimiter(store.Client())

	router := mux.NewRouter()
	router.Use(corsMiddleware)
	router.Use(loggingMiddleware)
	router.Use(middleware.MetricsMiddleware)
	router.Use(rateLimiter.RateLimitMiddleware())

	router.HandleFunc("/client_token", clientTokenHandler.ClientToken).Methods("GET", "OPTIONS")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/sale", saleHandler.Sale).Methods("POST", "OPTIONS")
	api.Handle("/transactions",
		middleware.AuthMiddleware(jwtService)(http.HandlerFunc(transactionsHandler.List)),
	).Methods("GET", "OPTIONS")

	startTime := time.Now()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		health := struct {
			Status    string `json:"status"`
			Time      string `json:"time"`
			Redis     string `json:"redis"`
			Uptime    string `json:"uptime"`
			GoVersion string `json:"go_version"`
		}{
			Status:    "ok",
			Time:      time.Now().Format(time.RFC3339),
			Redis:     "connected",
			Uptime:    fmt.Sprintf("%v", time.Since(startTime)),
			GoVersion: runtime.Version(),
		}

		redisCtx, redisCancel := context.WithTimeout(ctx, 500*time.Millisecond)
		defer redisCancel()

		if err := store.Client().Ping(redisCtx).Err(); err != nil {
			health.Status = "degraded"
			health.Redis = "error"
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(health)
	}).Methods("GET")

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:        router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	<-stop
	log.Println("Shutdown signal received, gracefully shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Closing Redis connections...")
	store.Close()

	log.Println("Server exited properly")
}
