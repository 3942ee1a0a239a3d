package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"time"

	"bluesoft-bank/internal/config"
	"bluesoft-bank/internal/handler"
	"bluesoft-bank/internal/repository"
	"bluesoft-bank/internal/service"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
)

// Server wires the HTTP router, database connection and services together.
type Server struct {
	router *mux.Router
	server *http.Server
	db     *sql.DB
	logger *slog.Logger
	port   string
}

func NewServer(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	db, err := sql.Open("postgres", cfg.DBConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("connected to database", "host", cfg.DBHost, "db", cfg.DBName)

	store := repository.NewStore(db, logger)

	accountService := service.NewAccountService(store, logger)
	reportService := service.NewReportService(store, logger)

	accountHandler := handler.NewAccountHandler(accountService)
	transactionHandler := handler.NewTransactionHandler(accountService)
	reportHandler := handler.NewReportHandler(reportService)

	router := mux.NewRouter()
	router.Use(requestIDMiddleware())
	router.Use(loggingMiddleware(logger))

	// Report routes
	router.HandleFunc("/reportes/retiros-fuera-ciudad", reportHandler.OutOfCityWithdrawals).Methods("GET")
	router.HandleFunc("/reportes/transacciones-mensuales", reportHandler.MonthlyTransactions).Methods("GET")

	// Account routes
	router.HandleFunc("/cuentas/{cuentaId}/transacciones", transactionHandler.Execute).Methods("POST")
	router.HandleFunc("/cuentas/{cuentaId}/saldo", accountHandler.GetBalance).Methods("GET")
	router.HandleFunc("/cuentas/{cuentaId}/movimientos", accountHandler.GetMovements).Methods("GET")
	router.HandleFunc("/cuentas/{cuentaId}/extracto", accountHandler.GetStatement).Methods("GET")

	// Health check
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "unhealthy", "error": "database unavailable"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}).Methods("GET")

	return &Server{
		router: router,
		db:     db,
		logger: logger,
	}, nil
}

// Start listens on the given port ("0" picks a free one) and serves in the
// background. It returns the bound port.
func (s *Server) Start(port string) (string, error) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return "", err
	}

	addr := listener.Addr().(*net.TCPAddr)
	s.port = strconv.Itoa(addr.Port)

	s.server = &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", "port", s.port)

	go func() {
		if err := s.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			s.logger.Error("server failed", "error", err)
		}
	}()

	return s.port, nil
}

// Stop gracefully shuts down the server and closes the database connection.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("shutting down server")

	if s.db != nil {
		s.db.Close()
	}

	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

func (s *Server) BaseURL() string {
	return "http://localhost:" + s.port
}

// StartServer builds and starts a server from configuration. With
// ServerPort "0" (tests) logs are discarded.
func StartServer(cfg *config.Config) (*Server, string, error) {
	var logger *slog.Logger
	if cfg.ServerPort == "0" {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: parseLevel(cfg.LogLevel)}))
	}

	server, err := NewServer(cfg, logger)
	if err != nil {
		return nil, "", err
	}

	port, err := server.Start(cfg.ServerPort)
	if err != nil {
		return nil, "", err
	}

	return server, port, nil
}

func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
