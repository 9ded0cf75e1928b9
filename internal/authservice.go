package internal

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuscode/auth-service/internal/config"
	"github.com/campuscode/auth-service/internal/googleauth"
	"github.com/campuscode/auth-service/internal/log"
	"github.com/campuscode/auth-service/internal/server"
	"github.com/campuscode/auth-service/internal/session"
	"github.com/campuscode/auth-service/internal/storage"
	"github.com/campuscode/auth-service/internal/users"
)

// AuthService is the assembled application
type AuthService struct {
	config     config.Config
	httpServer *server.HTTPServer
	store      *storage.FirestoreStore
}

// NewAuthService builds the application with all dependencies wired
func NewAuthService(ctx context.Context, cfg config.Config) (*AuthService, error) {
	log.LogInfoWithFields("authservice", "Building auth service", map[string]any{
		"addr": cfg.Addr(),
	})

	store, err := storage.NewFirestoreStore(ctx, cfg.FirestoreProjectID, cfg.FirestoreDatabase)
	if err != nil {
		return nil, fmt.Errorf("setting up storage: %w", err)
	}

	verifier := googleauth.NewGoogleVerifier(cfg.GoogleClientID)
	issuer := session.NewIssuer([]byte(cfg.JWTAccessSecret))
	userService := users.NewService(store)

	handlers := server.NewAuthHandlers(verifier, userService, issuer)
	mux := server.Routes(handlers)

	handler := server.ChainMiddleware(mux,
		server.NewCORSMiddleware(cfg.AllowedOrigins()),
		server.NewLoggerMiddleware("http"),
		server.NewRecoverMiddleware("http"),
	)

	return &AuthService{
		config:     cfg,
		httpServer: server.NewHTTPServer(handler, cfg.Addr()),
		store:      store,
	}, nil
}

// Run starts the HTTP server and blocks until shutdown
func (a *AuthService) Run() error {
	errChan := make(chan error, 1)

	go func() {
		if err := a.httpServer.Start(); err != nil {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		log.LogInfoWithFields("authservice", "Received signal, shutting down", map[string]any{
			"signal": sig.String(),
		})
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		log.LogError("HTTP server shutdown error: %v", err)
	}
	if err := a.store.Close(); err != nil {
		log.LogError("Storage close error: %v", err)
	}

	log.Logf("Shutdown complete")
	return nil
}
