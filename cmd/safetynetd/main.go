package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/relabs-tech/safetynet/api"
	"github.com/relabs-tech/safetynet/core/logger"
	"github.com/relabs-tech/safetynet/store"
)

// Service holds the configuration for this service
type Service struct {
	DataFile string `env:"SAFETYNET_DATA,default=data/document.json" description:"path of the JSON data document"`
	Addr     string `env:"SAFETYNET_ADDR,default=:8080" description:"listen address"`
	LogLevel string `env:"SAFETYNET_LOG_LEVEL,default=info" description:"debug, info, warning or error"`
	Watch    bool   `env:"SAFETYNET_WATCH,default=true" description:"reload the data document when it changes on disk"`
}

func main() {
	godotenv.Load()
	service := &Service{}
	if err := envdecode.Decode(service); err != nil {
		panic(err)
	}

	level, err := logrus.ParseLevel(service.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.InitLogger(level)
	rlog := logger.Default()

	s, err := store.Open(service.DataFile)
	if err != nil {
		rlog.WithError(err).Fatal("cannot open data document")
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if service.Watch {
		if err := s.Watch(ctx); err != nil {
			rlog.WithError(err).Fatal("cannot watch data document")
		}
	}

	router := mux.NewRouter()
	api.MustNew(&api.Builder{
		Store:  s,
		Router: router,
	})

	handler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handlers.CompressHandler(router))

	srv := &http.Server{Addr: service.Addr, Handler: handler}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	rlog.Infoln("listen on", service.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		rlog.WithError(err).Fatal("server failed")
	}
}
