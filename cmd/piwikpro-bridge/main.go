package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/diwise/piwikpro-bridge/internal/pkg/application/config"
	"github.com/diwise/piwikpro-bridge/internal/pkg/application/tracker"
	"github.com/diwise/piwikpro-bridge/internal/pkg/infrastructure/journal"
	"github.com/diwise/piwikpro-bridge/internal/pkg/infrastructure/router"
	"github.com/diwise/piwikpro-bridge/internal/pkg/presentation/api/bridge"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro"
	"github.com/diwise/piwikpro-bridge/pkg/piwikpro/client"
	"github.com/diwise/service-chassis/pkg/infrastructure/buildinfo"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/joho/godotenv"
)

const serviceName string = "piwikpro-bridge"

func main() {
	// a .env file is optional and only used for local runs
	_ = godotenv.Load()

	serviceVersion := buildinfo.SourceVersion()
	flags := parseExternalConfig(context.Background(), DefaultFlags())

	ctx, logger, cleanup := o11y.Init(context.Background(), serviceName, serviceVersion, flags[logFormat])
	defer cleanup()

	cfgFile, err := os.Open(flags[configPath])
	if err != nil {
		logger.Error("failed to open bridge configuration", "path", flags[configPath], "err", err.Error())
		os.Exit(1)
	}
	defer cfgFile.Close()

	policies, err := os.Open(flags[opaPath])
	if err != nil {
		logger.Error("failed to open authz policies", "path", flags[opaPath], "err", err.Error())
		os.Exit(1)
	}
	defer policies.Close()

	app, err := initialize(ctx, flags, cfgFile, policies)
	if err != nil {
		logger.Error("failed to initialize service", "err", err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              flags[listenAddress] + ":" + flags[servicePort],
		Handler:           app.handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("starting to listen for connections", "port", flags[servicePort])

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to listen for connections", "err", err.Error())
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()

	server.Shutdown(shutdownCtx)

	if err := app.shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "err", err.Error())
	}
}

type application struct {
	handler  http.Handler
	sdk      piwikpro.SDK
	stoppers []func(context.Context) error
}

func (app *application) shutdown(ctx context.Context) error {
	var errs []error

	for _, stop := range slices.Backward(app.stoppers) {
		if err := stop(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func initialize(ctx context.Context, flags FlagMap, cfgFile, policies io.Reader) (*application, error) {
	logger := logging.GetFromContext(ctx)

	cfg, err := config.LoadConfiguration(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load bridge configuration: %w", err)
	}

	app := &application{}

	native, err := newNativeCapability(ctx, flags, cfg, app)
	if err != nil {
		app.shutdown(ctx)
		return nil, err
	}

	app.sdk, err = piwikpro.New(native)
	if err != nil {
		app.shutdown(ctx)
		return nil, err
	}

	r := router.New(serviceName, cfg.CORS.AllowedOrigins)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	err = bridge.RegisterHandlers(ctx, r, policies, app.sdk)
	if err != nil {
		app.shutdown(ctx)
		return nil, err
	}

	app.handler = r

	logger.Info("service initialized", "capability", cfg.Capability.Mode, "journal", cfg.Journal.Mode)

	return app, nil
}

func newNativeCapability(ctx context.Context, flags FlagMap, cfg *config.Config, app *application) (piwikpro.NativeCapability, error) {
	if cfg.Capability.Mode == config.CapabilityRemote {
		timeout, _ := cfg.Capability.RequestTimeout()

		debug := flags[debugClient]
		if cfg.Capability.Debug {
			debug = "true"
		}

		return client.NewNativeClient(
			cfg.Capability.Endpoint,
			client.Debug(debug),
			client.Timeout(timeout),
			client.Token(cfg.Capability.Token),
		), nil
	}

	j, err := newJournal(ctx, cfg, app)
	if err != nil {
		return nil, err
	}

	options := []func(*tracker.Tracker){
		tracker.Audiences(cfg.Tracker.Audiences...),
		tracker.AppVersion(buildinfo.SourceVersion()),
	}

	if cfg.Tracker.DispatchInterval != nil {
		options = append(options, tracker.DispatchInterval(time.Duration(*cfg.Tracker.DispatchInterval)*time.Second))
	}

	if cfg.Tracker.SessionTimeout != nil {
		options = append(options, tracker.SessionTimeout(time.Duration(*cfg.Tracker.SessionTimeout)*time.Second))
	}

	t := tracker.New(j, options...)

	if cfg.Tracker.AutoInit {
		err = t.Init(ctx, cfg.Tracker.APIURL, cfg.Tracker.SiteID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize tracker: %w", err)
		}
	}

	err = t.Start(ctx)
	if err != nil {
		return nil, err
	}

	app.stoppers = append(app.stoppers, t.Stop)

	return t, nil
}

func newJournal(ctx context.Context, cfg *config.Config, app *application) (journal.Journal, error) {
	var j journal.Journal

	if cfg.Journal.Mode == config.JournalPostgres {
		db, err := journal.NewPostgres(ctx, journal.LoadConfiguration(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}

		app.stoppers = append(app.stoppers, func(context.Context) error {
			db.Close()
			return nil
		})

		j = db
	} else {
		j = journal.NewMemory()
	}

	if cfg.Journal.Webhook != "" {
		webhook := journal.NewWebhook(cfg.Journal.Webhook)
		if err := webhook.Start(); err != nil {
			return nil, err
		}

		app.stoppers = append(app.stoppers, func(context.Context) error {
			return webhook.Stop()
		})

		j = journal.Tee(j, webhook)
	}

	return j, nil
}
