package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/2beens/gymsupervisor/internal/bot"
	"github.com/2beens/gymsupervisor/internal/config"
	"github.com/2beens/gymsupervisor/internal/db"
	"github.com/2beens/gymsupervisor/internal/draft"
	"github.com/2beens/gymsupervisor/internal/middleware"
	"github.com/2beens/gymsupervisor/internal/quotes"
	"github.com/2beens/gymsupervisor/internal/scheduler"
	"github.com/2beens/gymsupervisor/internal/taxonomy"
	"github.com/2beens/gymsupervisor/internal/telemetry/metrics"
	"github.com/2beens/gymsupervisor/internal/telemetry/tracing"
	"github.com/2beens/gymsupervisor/internal/workout"
	"github.com/2beens/gymsupervisor/pkg"
)

// telegram sets this header on webhook calls when a secret token was
// registered with setWebhook
const telegramSecretTokenHeader = "X-Telegram-Bot-Api-Secret-Token"

// vercel marks its cron invocations with this header; honored only when
// no cron secret is configured
const vercelCronHeader = "X-Vercel-Cron"

// botProcessor is what the HTTP layer needs from the bot service.
type botProcessor interface {
	ProcessUpdate(ctx context.Context, update tgbotapi.Update) error
	SendStartupGreeting(ctx context.Context) error
	SendMorningGreeting(ctx context.Context) error
	SendWeeklyDeadlineNudges(ctx context.Context) error
}

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	webhookSecret     string // telegram webhook secret token, empty means no check
	cronSecret        string // bearer secret for the cron endpoints
	versionInfo       string

	config   *config.Config
	dbPool   *pgxpool.Pool
	bot      botProcessor
	schedule *scheduler.Scheduler
	loc      *time.Location

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	TelegramBotToken        string
	TelegramUserID          int64
	OpenAIAPIKey            string
	WebhookSecret           string
	CronSecret              string
	VersionInfo             string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	loc, err := time.LoadLocation(params.Config.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone [%s]: %w", params.Config.Timezone, err)
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("gymsupervisor", "bot", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gym-supervisor")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	moveTable := taxonomy.NewTable()
	if err := taxonomy.NewRepo(dbPool, moveTable).Setup(ctx); err != nil {
		return nil, fmt.Errorf("setup taxonomy repo: %w", err)
	}

	workoutRepo := workout.NewRepo(dbPool, moveTable, loc)
	if err := workoutRepo.Setup(ctx); err != nil {
		return nil, fmt.Errorf("setup workout repo: %w", err)
	}

	// older entries may predate taxonomy changes, rewrite them to the
	// current canonical keys
	if rewritten, err := workoutRepo.CanonicalizeEntryTypes(ctx); err != nil {
		log.Errorf("canonicalize workout entry types: %s", err)
	} else if rewritten > 0 {
		log.Infof("canonicalized %d workout entries", rewritten)
	}

	tgApi, err := tgbotapi.NewBotAPIWithClient(
		params.TelegramBotToken,
		tgbotapi.APIEndpoint,
		tracedHttpClient,
	)
	if err != nil {
		return nil, fmt.Errorf("new telegram bot api: %w", err)
	}
	log.Debugf("telegram bot authorized as [%s]", tgApi.Self.UserName)

	botService := bot.NewService(
		tgApi,
		workoutRepo,
		quotes.NewGenerator(quotes.DefaultAPIURL, params.OpenAIAPIKey, tracedHttpClient),
		draft.NewManager(),
		metricsManager,
		loc,
		bot.Config{
			AllowedUserID: params.TelegramUserID,
			SnoozeMinutes: params.Config.SnoozeMinutes,
		},
	)

	s := &Server{
		webhookSecret: params.WebhookSecret,
		cronSecret:    params.CronSecret,
		versionInfo:   params.VersionInfo,

		config:   params.Config,
		dbPool:   dbPool,
		bot:      botService,
		schedule: scheduler.New(),
		loc:      loc,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	if params.Config.SchedulerEnabled {
		s.schedule.AddEvery(
			"weekly-nudges",
			time.Duration(params.Config.NudgeCheckMinutes)*time.Minute,
			botService.SendWeeklyDeadlineNudges,
		)
		s.schedule.AddDaily(
			"morning-greeting",
			params.Config.MorningGreetingHour, 0, loc,
			botService.SendMorningGreeting,
		)
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymsupervisor-router"))

	r.HandleFunc("/webhook/telegram", s.handleTelegramWebhook).Methods("POST").Name("telegram-webhook")
	r.HandleFunc("/webhook/telegram", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, "telegram webhook alive")
	}).Methods("GET").Name("telegram-webhook-alive")

	r.HandleFunc("/cron/morning-greeting", s.handleMorningGreetingCron).Methods("GET", "POST").Name("cron-morning-greeting")
	r.HandleFunc("/cron/weekly-nudges", s.handleWeeklyNudgesCron).Methods("GET", "POST").Name("cron-weekly-nudges")

	r.HandleFunc("/version", func(w http.ResponseWriter, _ *http.Request) {
		pkg.WriteTextResponseOK(w, s.versionInfo)
	}).Methods("GET").Name("version")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleTelegramWebhook(w http.ResponseWriter, r *http.Request) {
	if s.webhookSecret != "" && r.Header.Get(telegramSecretTokenHeader) != s.webhookSecret {
		pkg.WriteResponse(w, pkg.ContentType.Text, "unauthorized", http.StatusUnauthorized)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		pkg.WriteResponse(w, pkg.ContentType.Text, "invalid json", http.StatusBadRequest)
		return
	}

	if err := s.bot.ProcessUpdate(r.Context(), update); err != nil {
		log.Errorf("process telegram update %d: %s", update.UpdateID, err)
		pkg.WriteResponse(
			w, pkg.ContentType.Text,
			fmt.Sprintf("processing error: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	pkg.WriteTextResponseOK(w, "ok")
}

// cronAuthorized checks the shared secret on the cron endpoints. With no
// secret configured, only requests marked by the vercel cron header pass.
func (s *Server) cronAuthorized(r *http.Request) bool {
	if s.cronSecret == "" {
		return r.Header.Get(vercelCronHeader) == "1"
	}
	return r.Header.Get("Authorization") == "Bearer "+s.cronSecret
}

func (s *Server) handleMorningGreetingCron(w http.ResponseWriter, r *http.Request) {
	if !s.cronAuthorized(r) {
		pkg.WriteResponse(w, pkg.ContentType.Text, "unauthorized", http.StatusUnauthorized)
		return
	}

	// the cron fires hourly, only the configured morning hour acts
	if time.Now().In(s.loc).Hour() != s.config.MorningGreetingHour {
		pkg.WriteTextResponseOK(w, "skipped (not 8am Pacific)")
		return
	}

	if err := s.bot.SendMorningGreeting(r.Context()); err != nil {
		log.Errorf("send morning greeting: %s", err)
		pkg.WriteResponse(w, pkg.ContentType.Text, "failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "sent")
}

func (s *Server) handleWeeklyNudgesCron(w http.ResponseWriter, r *http.Request) {
	if !s.cronAuthorized(r) {
		pkg.WriteResponse(w, pkg.ContentType.Text, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := s.bot.SendWeeklyDeadlineNudges(r.Context()); err != nil {
		log.Errorf("send weekly nudges: %s", err)
		pkg.WriteResponse(
			w, pkg.ContentType.Text,
			fmt.Sprintf("failed: %s", err),
			http.StatusInternalServerError,
		)
		return
	}

	pkg.WriteTextResponseOK(w, "ok")
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("gym supervisor, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.schedule.Start(ctx)

	s.sendStartupGreeting(ctx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) sendStartupGreeting(ctx context.Context) {
	if !s.config.StartupGreetingEnabled {
		log.Debug("startup greeting disabled")
		return
	}
	if err := s.bot.SendStartupGreeting(ctx); err != nil {
		log.Errorf("send startup greeting: %s", err)
	}
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	s.schedule.Wait()
	log.Debugln("scheduler stopped")

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	shutdownErr := multierr.Combine(
		s.httpServer.Shutdown(ctx),
		s.metricsHttpServer.Shutdown(ctx),
	)
	if shutdownErr != nil {
		log.Errorf(" >>> failed to gracefully shutdown http servers: %s", shutdownErr)
	}
	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
