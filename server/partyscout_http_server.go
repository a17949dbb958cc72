package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"partyscout/config"
)

type PartyScoutHttpServer struct {
	router    *Router
	muxRouter *mux.Router
}

func NewPartyScoutHttpServer(router *Router, muxRouter *mux.Router) *PartyScoutHttpServer {
	return &PartyScoutHttpServer{
		router:    router,
		muxRouter: muxRouter,
	}
}

func (s *PartyScoutHttpServer) Start() {
	s.router.RegisterRoutes()

	cors := gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"http://localhost:5173", "http://localhost:3000"}),
		gorillaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		gorillaHandlers.AllowedHeaders([]string{"*"}),
		gorillaHandlers.AllowCredentials(),
	)

	addr := ":" + config.Port()
	srv := &http.Server{
		Addr:    addr,
		Handler: cors(s.muxRouter),
	}

	// Channel to listen for interrupt or termination signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start the server in a goroutine so it doesn't block
	go func() {
		fmt.Println("Starting server on " + addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// Wait for a signal to shut down
	<-stop
	fmt.Println("\nShutting down the server...")

	ctx, cancel := context.WithTimeout(context.Background(), config.SERVER_SHUTDOWN_TIMEOUT)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	fmt.Println("Server exiting")
}
