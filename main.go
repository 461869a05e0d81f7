package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/polls/auth"
	"github.com/danielhkuo/polls/cliparse"
	"github.com/danielhkuo/polls/db"
	"github.com/danielhkuo/polls/middleware"
	"github.com/danielhkuo/polls/publication"
	"github.com/danielhkuo/polls/router"
	"github.com/danielhkuo/polls/store"
)

func main() {
	var err error

	// `polls genkey` prints a fresh admin key
	if len(os.Args) > 1 && os.Args[1] == "genkey" {
		key, err := auth.GenerateAdminKey()
		if err != nil {
			slog.Error("key generation failed", "error", err)
			os.Exit(1)
		}
		fmt.Println(key)
		return
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Pick storage
	var (
		questions store.QuestionStore
		choices   store.ChoiceStore
		dbConn    *sql.DB
	)
	if cfg.DatabaseType == cliparse.DatabaseMemory {
		mem := store.NewMemoryStore()
		questions, choices = mem.Questions(), mem.Choices()
		slog.Info("Using in-memory store")
	} else {
		dbConn, err = db.Open(cfg)
		if err != nil {
			slog.Error("database setup failed", "error", err, "type", cfg.DatabaseType)
			os.Exit(1)
		}
		defer dbConn.Close()

		sqlStore := store.NewSQLStore(dbConn)
		questions, choices = sqlStore.Questions(), sqlStore.Choices()
		slog.Info("Database schema ready", "type", cfg.DatabaseType)
	}

	// Create router
	mux := router.NewRouter(questions, choices, cfg, publication.SystemClock{})

	// Create server
	server := http.Server{
		Handler:      middleware.CORS(mux),
		Addr:         ":" + strconv.Itoa(cfg.Port),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)

	ln, err := net.Listen("tcp", server.Addr)
	if err != nil {
		slog.Error("listen failed", "error", err, "addr", server.Addr)
		os.Exit(1)
	}

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	if err := serve(&server, ln, ctrlc, shutdownTimeout); err != nil {
		slog.Error("Server closed", "error", err)
		return
	}
	slog.Info("Server closed")
}

const shutdownTimeout = 10 * time.Second

// serve runs server on ln until stop fires, then drains in-flight requests
// for at most timeout. It returns only after shutdown has finished.
func serve(server *http.Server, ln net.Listener, stop <-chan os.Signal, timeout time.Duration) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Wait for Ctrl-C signal
		<-stop
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Warn("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	err := server.Serve(ln)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	<-done
	return nil
}
