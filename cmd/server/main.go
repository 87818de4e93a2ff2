package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/user/medialib/internal/config"
	"github.com/user/medialib/internal/handler"
	"github.com/user/medialib/internal/middleware"
	"github.com/user/medialib/internal/router"
	"github.com/user/medialib/internal/service"
	"github.com/user/medialib/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	cfg := config.Load()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	library := service.NewLibrary(store.NewLibrary())
	cinema := service.NewCinema(store.NewCinema())
	h := handler.NewHandler(library, cinema, cfg)

	libraryEngine := newEngine()
	router.RegisterLibraryRoutes(libraryEngine, h)

	cinemaEngine := newEngine()
	router.RegisterCinemaRoutes(cinemaEngine, h)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, ctx := errgroup.WithContext(ctx)
	serve(ctx, group, "library", cfg.LibraryPort, libraryEngine)
	serve(ctx, group, "cinema", cfg.CinemaPort, cinemaEngine)

	if err := group.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
	log.Println("both APIs stopped")
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(cors.Default())
	return r
}

// serve runs one API and shuts it down when ctx is canceled.
func serve(ctx context.Context, group *errgroup.Group, name, port string, engine *gin.Engine) {
	srv := &http.Server{
		Addr:           ":" + port,
		Handler:        engine,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	group.Go(func() error {
		log.Printf("%s API listening on http://localhost:%s", name, port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-ctx.Done()
		log.Printf("shutting down %s API...", name)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
}
