package main

import (
	"net/http"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hbnb_web/internal/adapters/hbnb"
	server "hbnb_web/internal/adapters/http_server"
	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/app"
	"hbnb_web/internal/shared"
	"hbnb_web/internal/web"
)

func main() {
	_ = godotenv.Load()

	cfg, err := shared.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// deps
	client := hbnb.New(cfg.APIBaseURL, cfg.APIRPS)
	session := app.NewSession(cfg.CookieTTL)
	renderer, err := web.NewRenderer(log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("template parse failed")
	}

	pages := &server.Pages{
		API:       client,
		Session:   session,
		Assembler: app.NewAssembler(client, app.NewDirectory(client), log.Logger),
		Gate:      app.NewReviewGate(client, log.Logger),
		Login:     app.NewLoginFlow(client, log.Logger),
		Render:    renderer,
		Log:       log.Logger,
	}

	// http
	srv := server.New(cfg.RequestTimeout)
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountPages(pages)

	log.Info().Str("addr", cfg.HTTPAddr).Str("api", cfg.APIBaseURL).Msg("page service listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
