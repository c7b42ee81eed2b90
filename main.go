package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/monthly-expense/backend/internal/config"
	"github.com/monthly-expense/backend/internal/events"
	"github.com/monthly-expense/backend/internal/models"
	"github.com/monthly-expense/backend/internal/router"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg := config.Load()
	err := cfg.Validate()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	dialector, err := cfg.Dialector()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database, this also migrates the schema
	err = models.Open(dialector)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Events are only published to a broker when one is configured
	if cfg.AMQPURL != "" {
		publisher, err := events.Dial(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}
		events.SetDefault(publisher)
		log.Info().Str("exchange", cfg.AMQPExchange).Msg("publishing events")
	}

	r, teardown, err := router.Config(cfg.APIURL)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}
	router.AttachRoutes(r.Group("/"))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("starting server")

		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	err = g.Wait()

	if closeErr := events.SetDefault(events.Nop{}).Close(); closeErr != nil {
		log.Warn().Err(closeErr).Msg("closing event publisher")
	}

	if err != nil {
		log.Error().Msg(err.Error())
	}
}
