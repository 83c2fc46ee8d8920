package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/acadpainel/academico-sync/internal/app"
	"github.com/acadpainel/academico-sync/internal/config"
	"github.com/acadpainel/academico-sync/internal/export"
	"github.com/acadpainel/academico-sync/internal/httpclient"
	"github.com/acadpainel/academico-sync/internal/jobs"
	"github.com/acadpainel/academico-sync/internal/logging"
	"github.com/acadpainel/academico-sync/internal/observability"
	"github.com/acadpainel/academico-sync/internal/session"
)

var release = "dev"

func main() {
	exportDir := flag.String("export", "", "write the secretaria XLSX report into this directory and exit")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer lg.Closer()

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, release)
	if err != nil {
		lg.Sugar.Warnw("sentry init failed", "err", err)
	}
	defer flush()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sess := session.NewCookieStore(cfg.AuthCookieFile, cfg.AuthCookieName)
	client := httpclient.New(httpclient.Config{
		BaseURL: cfg.APIBaseURL,
		Timeout: cfg.APITimeout,
		Debug:   cfg.HTTPDebug,
		OnUnauthorized: func() {
			// session unrecoverable: the headless analogue of the login redirect
			lg.Base.Warn("unauthorized, shutting down until next login")
			cancel()
		},
	}, sess, lg.Base)

	caches := app.NewCaches(cfg.CacheTTL)

	if *exportDir != "" {
		runExport(ctx, lg.Base, client, caches, cfg.WarmSecretariaID, *exportDir)
		return
	}

	app.StartHTTP(ctx, cfg.HTTPAddr, client)

	runner := jobs.New(ctx)
	runner.Every(cfg.CacheTTL/2, "cache_sweep", caches.Sweep)
	if cfg.WarmSecretariaID != "" {
		warmer := app.NewWarmer(client, caches, lg.Base, cfg.WarmSecretariaID)
		runner.EveryNow(cfg.WarmInterval, "warm", warmer.Run)
	} else {
		lg.Base.Info("WARM_SECRETARIA_ID empty, warm job disabled")
	}

	lg.Sugar.Infow("syncd started", "addr", cfg.HTTPAddr, "base_url", cfg.APIBaseURL)
	<-ctx.Done()
	caches.InvalidateAll()
	lg.Base.Info("shutdown complete")
}

func runExport(ctx context.Context, lg *zap.Logger, client *httpclient.Client, caches *app.Caches, secretariaID, dir string) {
	if secretariaID == "" {
		lg.Fatal("export requires WARM_SECRETARIA_ID")
	}
	warmer := app.NewWarmer(client, caches, lg, secretariaID)
	if err := warmer.Run(ctx); err != nil {
		lg.Warn("some lists failed to load, exporting what we have", zap.Error(err))
	}
	cursos, turmas, disciplinas := warmer.Stores()
	wb, err := export.NewWorkbook([]export.SheetSpec{
		export.CursosSheet(cursos.Itens()),
		export.TurmasSheet(turmas.Itens()),
		export.DisciplinasSheet(disciplinas.Itens()),
	})
	if err != nil {
		lg.Fatal("build workbook", zap.Error(err))
	}
	path, err := wb.Save(dir)
	if err != nil {
		lg.Fatal("save workbook", zap.Error(err))
	}
	lg.Info("report written", zap.String("path", path))
}
