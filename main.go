package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/MarcGrol/paypalrelay/lib/myhttp"
	"github.com/MarcGrol/paypalrelay/lib/myhttpclient"
	"github.com/MarcGrol/paypalrelay/lib/mypublisher"
	"github.com/MarcGrol/paypalrelay/lib/mypubsub"
	"github.com/MarcGrol/paypalrelay/lib/mystore"
	"github.com/MarcGrol/paypalrelay/lib/mytime"
	"github.com/MarcGrol/paypalrelay/lib/myuuid"
	"github.com/MarcGrol/paypalrelay/services/checkoutpaypal"
	"github.com/MarcGrol/paypalrelay/services/offerings"
	"github.com/MarcGrol/paypalrelay/services/paymentconfig"
	"github.com/MarcGrol/paypalrelay/services/paypal"
	"github.com/MarcGrol/paypalrelay/services/warmup"
)

func main() {
	c := context.Background()

	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	err := paymentconfig.LoadDotEnv(envFile)
	if err != nil {
		log.Fatalf("Error loading environment: %s", err)
	}

	cfg, err := paymentconfig.ResolveFromOS()
	if err != nil {
		log.Fatalf("Error resolving configuration: %s", err)
	}
	log.Printf("Resolved configuration: %s", cfg)

	table := offerings.DefaultTable()
	if cfg.OfferingsFile != "" {
		table, err = offerings.LoadFile(cfg.OfferingsFile)
		if err != nil {
			log.Fatalf("Error loading offerings: %s", err)
		}
	}

	auditStore, auditStoreCleanup, err := mystore.New[checkoutpaypal.CapturedPayment](c, cfg.GoogleCloudProject)
	if err != nil {
		log.Fatalf("Error creating audit store: %s", err)
	}
	defer auditStoreCleanup()

	pubsub, pubsubCleanup, err := mypubsub.New(c, cfg.GoogleCloudProject)
	if err != nil {
		log.Fatalf("Error creating pubsub client: %s", err)
	}
	defer pubsubCleanup()

	nower := mytime.RealNower{}
	publisher := mypublisher.New(pubsub, nower)
	err = publisher.CreateTopic(c, cfg.AuditTopic)
	if err != nil {
		log.Fatalf("Error creating topic %s: %s", cfg.AuditTopic, err)
	}

	client := paypal.NewClient(myhttpclient.New(cfg.HTTPTimeout), myuuid.RealUUIDer{})

	router := mux.NewRouter()

	paymentconfig.NewWebService(cfg).RegisterEndpoints(c, router)
	checkoutpaypal.NewWebService(cfg, table, client, nower, auditStore, publisher).RegisterEndpoints(c, router)
	warmup.NewService(cfg.Mode().String()).RegisterEndpoints(c, router)

	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir))).Methods("GET", "HEAD")
	}

	startWebServerBlocking(cfg.Port, myhttp.CORSMiddleware(cfg.CORSAllowedOrigin)(router))
}

func startWebServerBlocking(port string, handler http.Handler) {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting webserver on port %s: %s", port, err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Printf("Shutting down webserver")
	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := server.Shutdown(ctxShutdown)
	if err != nil {
		log.Printf("Error shutting down webserver: %s", err)
	}
}
