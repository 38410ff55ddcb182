package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Arbache-Consulting/arbache-go-sdk/handlers"
	"github.com/Arbache-Consulting/arbache-go-sdk/utils"
	"github.com/lpernett/godotenv"
	log "github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Load environment variables from .env file
func init() {
	log.Info("Loading environment variables")
	err := godotenv.Load()
	if err != nil {
		log.Warn("Error loading .env file")
	}
}

func main() {
	// Set up logging
	log.SetLevel(log.DebugLevel)
	log.SetFormatter(&log.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	log.Info("Server Version: Arbache Agent Widget V2")

	zapLogger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()
	zap.ReplaceGlobals(zapLogger)

	// Chat API base is injected here; nothing below main reads it from the
	// environment.
	chatClient := utils.NewChatAPIClient(os.Getenv("CHAT_API_BASE"))
	log.Info("Chat API base: ", chatClient.BaseURL)

	// Define HTTP routes
	http.HandleFunc("/healthz", handlers.HealthCheckHandler)
	http.HandleFunc("/agent-widget", func(w http.ResponseWriter, r *http.Request) {
		handlers.HandleWidgetSession(w, r, chatClient)
	})

	// Set up signal handling
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	serverExit := make(chan struct{})

	// Start HTTP server in a goroutine
	go func() {
		port := ":" + os.Getenv("PORT")
		if port == ":" {
			port = ":8080"
		}
		log.Info("Starting server on...", port)
		log.Fatal(http.ListenAndServe(port, nil))
		close(serverExit)
	}()

	// On termination, shut down the server
	select {
	case <-stop:
		log.Info("Shutting down server...")
	case <-serverExit:
		log.Info("Server exited unexpectedly...")
	}

	log.Info("Server shut down gracefully")
}
