package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/TianMHDev/portfolio-panel/api"
	"github.com/TianMHDev/portfolio-panel/config"
	"github.com/TianMHDev/portfolio-panel/gateway"
	"github.com/TianMHDev/portfolio-panel/reconcile"
	"github.com/TianMHDev/portfolio-panel/session"
	"github.com/TianMHDev/portfolio-panel/store"
)

func main() {
	fmt.Println("Initializing app...")

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Warning: Error loading .env file: %v\n", err)
	}

	c := config.New()

	sessions, err := store.Open(config.GetString(c, "SESSION_DB_PATH", "portfolio-session.db"))
	if err != nil {
		log.Error().Err(err).Msg("Error opening session store")
		os.Exit(1)
	}

	gate := session.New(sessions.SessionRepo())
	cookies := session.NewCookies(
		config.GetString(c, "SESSION_SIGNING_KEY", "dev-only-signing-key"),
		config.GetSeconds(c, "SESSION_TTL_SECONDS", 8*60*60),
	)

	gw := gateway.New(
		config.GetString(c, "BACKEND_BASE_URL", "http://localhost:8080"),
		gate,
		config.GetSeconds(c, "BACKEND_TIMEOUT_SECONDS", 15),
	)
	log.Info().Str("backend", gw.BaseURL()).Msg("Backend gateway configured")

	engine := reconcile.New(gw)

	errChannel := make(chan error)
	defer close(errChannel)

	server, err := api.NewServer(api.Deps{
		Gateway: gw,
		Engine:  engine,
		Gate:    gate,
		Cookies: cookies,
	})
	if err != nil {
		log.Error().Err(err).Msg("Error initializing server")
		os.Exit(1)
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	fmt.Printf("Closing server: %v\n", fatalErr)

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
