package internal

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	metrics "github.com/slok/go-http-metrics/metrics/prometheus"
	httpMetricsMiddleware "github.com/slok/go-http-metrics/middleware"
	"github.com/slok/go-http-metrics/middleware/std"

	"github.com/madsholme/spotlink/internal/constants"
	"github.com/madsholme/spotlink/internal/handler"
	"github.com/madsholme/spotlink/internal/middleware"
	"github.com/madsholme/spotlink/internal/persistence"
	"github.com/madsholme/spotlink/internal/resolver"
	"github.com/madsholme/spotlink/internal/spotify"
	"github.com/madsholme/spotlink/internal/util"
)

var (
	dao      persistence.LibraryPersistor
	res      *resolver.Resolver
	password string
	// createAPI is required to use different initilisation code for testing
	// and for production environment
	createAPI resolver.APIProvider
)

func RunInProduction() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancelFn()

	isDevMode := util.Env(constants.EnvENV, "") == "DEV"

	networkInterface := util.Env(constants.EnvNetworkInterface, constants.DefaultNetworkInterface)
	// We also have to check for "PORT" as that is how Heroku/Dokku etc. tells the app where to listen
	port := util.Env(constants.EnvPort, os.Getenv("PORT"))
	if port == "" {
		port = constants.DefaultPort
	}

	mongoDBURI := util.Env(constants.EnvMongoURI, "")
	if mongoDBURI == "" {
		log.Fatal().Msg("No URI for connecting to MongoDB given. Aborting.")
	}
	var err error
	dao, err = persistence.Connect(mongoDBURI)
	if err != nil {
		log.Fatal().Err(err).Str("mongoDBURI", mongoDBURI).Msg("Failed connecting to MongoDB.")
	}

	clientID := util.Env(constants.EnvSpotifyClientID, "")
	clientSecret := util.Env(constants.EnvSpotifyClientSecret, "")

	if clientID == "" || clientSecret == "" {
		log.Fatal().Msgf("Please make sure '%s' and '%s' are set. Aborting.", constants.EnvSpotifyClientID, constants.EnvSpotifyClientSecret)
	}

	spotClient, err := spotify.NewClient(clientID, clientSecret)
	if err != nil {
		log.Fatal().Err(err).Msg("Could not create Spotify client. Aborting.")
	}

	createAPI = spotClient.API

	password = util.Env(constants.EnvPassword, "")
	if password == "" {
		log.Fatal().Msgf("Please make sure '%s' is set. Refusing to serve without a password.", constants.EnvPassword)
	}

	publicRouter := chi.NewRouter()

	internalRouter := chi.NewRouter()

	promMiddleware := httpMetricsMiddleware.New(httpMetricsMiddleware.Config{
		Recorder: metrics.NewRecorder(metrics.Config{}),
	})

	publicRouter.Use(std.HandlerProvider("", promMiddleware))

	setupAPI(isDevMode, publicRouter)

	internalRouter.Handle(constants.MetricsRoute, promhttp.Handler())
	internalRouter.Get(constants.HealthRoute, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	publicServerAddr := fmt.Sprintf("%s:%s", networkInterface, port)
	internalServerAddr := fmt.Sprintf("%s:%s",
		util.Env(constants.EnvInternalNetworkInterface, constants.DefaultNetworkInterface),
		util.Env(constants.EnvInternalPort, constants.DefaultInternalPort))

	publicServer := http.Server{
		Addr:    publicServerAddr,
		Handler: publicRouter,
	}
	internalServer := http.Server{
		Addr:    internalServerAddr,
		Handler: internalRouter,
	}

	serveWG := &sync.WaitGroup{}
	serveWG.Add(3)

	go func() {
		defer serveWG.Done()

		<-ctx.Done()

		log.Debug().Msg("Shutdown signal received. Shutting down server...")

		timeout, cancelFn := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelFn()

		if err := publicServer.Shutdown(timeout); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown public server gracefully.")
		}

		timeout, cancelFn = context.WithTimeout(context.Background(), 10*time.Second)
		defer cancelFn()

		if err := internalServer.Shutdown(timeout); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown internal server gracefully.")
		}
	}()

	go func() {
		defer serveWG.Done()

		if err := publicServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed running public server.")
		}
	}()

	go func() {
		defer serveWG.Done()

		if err := internalServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed running internal server.")
		}
	}()

	log.Info().Msgf("Public server is ready to handle requests at http://%s", publicServerAddr)
	log.Info().Msgf("Internal server is ready to handle requests at http://%s", internalServerAddr)

	<-ctx.Done()

	log.Info().Msg("Waiting for connections to be closed and for server to shutdown...")

	serveWG.Wait()

	log.Info().Msg("Server have been shut down. Bye.")
}

func SetupForTest(
	daoMock persistence.LibraryPersistor,
	apiMockCreator resolver.APIProvider,
	testPassword string) http.Handler {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	dao = daoMock

	createAPI = apiMockCreator

	password = testPassword

	r := chi.NewRouter()
	setupAPI(true, r)

	return r
}

func setupAPI(isDevMode bool, r chi.Router) {
	if isDevMode {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		log.Debug().Msg("Running in PROD mode. Being less verbose. Set environment variable 'SPOTLINK_ENV' to 'DEV' to activate.")
	}

	res = resolver.New(createAPI)

	authMiddleware := middleware.CreateTokenAuthMiddleware(password)

	r.Use(chiMiddleware.Compress(5))
	r.Use(chiMiddleware.RequestID)
	r.Use(hlog.NewHandler(log.Logger))
	r.Use(middleware.ChiRequestIDHandler("reqID", ""))
	r.Use(hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Dur("dur(ms)", duration).
			Int("size(bytes)", size).
			Int("status", status).
			Stringer("url", r.URL).
			Str("verb", r.Method).
			Msg("")
	}))
	r.Use(chiMiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Use(authMiddleware)

		r.Get("/decode", handler.DecodeHandler)

		r.With(attachResolver).Get("/resolve", handler.ResolveHandler)
		r.With(attachResolver).Get("/tracks/{id}", handler.TrackHandler)
		r.With(attachResolver).Get("/playlists/{id}", handler.PlaylistHandler)
		r.With(attachResolver).Get("/albums/{id}", handler.AlbumHandler)

		r.With(attachDAO).With(attachOwner).Route("/you", func(r chi.Router) {
			r.Get("/", handler.OwnerExportHandler)
			r.Delete("/", handler.OwnerDeleteHandler)
		})

		r.With(attachResolver).With(attachDAO).With(attachOwner).Route("/library", func(r chi.Router) {
			r.Get("/", handler.LibraryGetHandler)
			r.Post("/", handler.LibraryPostHandler)
			r.With(attachSlot).Route("/{slot}", func(r chi.Router) {
				r.Put("/", handler.LibraryPostHandler)
				r.Delete("/", handler.LibraryDeleteHandler)
			})
		})

		r.NotFound(http.NotFound)
	})
}

func attachResolver(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), constants.FieldKeyResolver, res)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func attachDAO(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		newCtx := context.WithValue(r.Context(), constants.FieldKeyDao, dao)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

// attachOwner extracts the caller-chosen id the library is keyed by. Callers
// not sending one share the default owner.
func attachOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		owner := r.Header.Get(constants.OwnerHeaderName)
		if owner == "" {
			owner = constants.DefaultOwnerID
		}

		newCtx := context.WithValue(r.Context(), constants.FieldKeyOwner, owner)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func attachSlot(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		slot, err := checkSlotParameter(r)
		if err != nil {
			hlog.FromRequest(r).Debug().Err(err).Msg("Could not retrieve slot from request.")
			http.Error(w, fmt.Sprintf("Could not process request. Please make sure the given slot is valid: %s", err), http.StatusBadRequest)
			return
		}

		newCtx := context.WithValue(r.Context(), constants.FieldKeySlot, slot)

		next.ServeHTTP(w, r.WithContext(newCtx))
	})
}

func checkSlotParameter(r *http.Request) (int, error) {
	var slotStr = chi.URLParam(r, "slot")

	if slotStr == "" {
		return -1, errors.New("query parameter 'slot' not found")
	}

	var slot, err = strconv.Atoi(slotStr)
	if err != nil {
		return -1, errors.New("query parameter 'slot' is not a valid integer")
	}
	if slot < 0 {
		return -1, errors.New("query parameter 'slot' has to be >= 0")
	}

	return slot, nil
}
