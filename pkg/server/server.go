package server

import (
	"context"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/arthur-debert/wifiprof/pkg/config"
	"github.com/arthur-debert/wifiprof/pkg/errors"
	"github.com/arthur-debert/wifiprof/pkg/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

const shutdownTimeout = 5 * time.Second

// Options configures the server
type Options struct {
	Config config.Server
	// FS holds the profile library and must already be rooted at the
	// upload directory. Nil roots the OS filesystem at Config.UploadDir.
	FS     afero.Fs
	Logger *zerolog.Logger
}

// Server bundles the gin engine with the profile library it serves
type Server struct {
	Engine  *gin.Engine
	Library *Library

	cfg    config.Server
	logger zerolog.Logger
}

// Build constructs the engine with recovery, request id, access log and
// CORS middleware, and registers every route
func Build(opts Options) (*Server, error) {
	logger := logging.GetLogger("server")
	if opts.Logger != nil {
		logger = *opts.Logger
	}

	fs := opts.FS
	if fs == nil {
		if opts.Config.UploadDir == "" {
			return nil, errors.New(errors.ErrConfigValid, "server.upload_dir must be set")
		}
		fs = afero.NewBasePathFs(afero.NewOsFs(), opts.Config.UploadDir)
	}
	library, err := NewLibrary(fs, opts.Config.ActiveProfile)
	if err != nil {
		return nil, err
	}

	if opts.Config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestIDMiddleware())
	engine.Use(loggingMiddleware(logger))
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "HEAD", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", "Content-Disposition", RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))
	if opts.Config.MaxUploadBytes > 0 {
		engine.MaxMultipartMemory = opts.Config.MaxUploadBytes
	}

	s := &Server{
		Engine:  engine,
		Library: library,
		cfg:     opts.Config,
		logger:  logger,
	}
	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	r := s.Engine

	r.GET("/", s.index)
	r.GET("/health", s.health)

	r.GET(ProfilePath, s.serveProfile)
	r.GET(ReturnPath, s.profileReturn)
	r.GET("/.well-known/apple-app-site-association", s.appSiteAssociation)

	r.GET("/android/wifi", s.androidWifi)
	r.GET("/wifi/qr", s.wifiQR)

	profiles := r.Group("/profiles")
	profiles.GET("", s.listProfiles)
	profiles.POST("", s.uploadProfile)
	profiles.PUT("/:name/active", s.setActive)
	profiles.DELETE("/:name", s.deleteProfile)
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("listen", s.cfg.Listen).
			Str("active_profile", s.Library.Active()).
			Msg("Profile server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrInternal, "failed to serve on %s", s.cfg.Listen)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info().Msg("Shutting down profile server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to shut down cleanly")
	}
	return nil
}
