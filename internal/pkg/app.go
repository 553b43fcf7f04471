package pkg

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"navigator/internal/app/config"
	"navigator/internal/app/handler"
)

const shutdownTimeout = 10 * time.Second

type Application struct {
	Config     *config.Config
	Router     *gin.Engine
	Handler    *handler.Handler
	APIHandler *handler.APIHandler
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.Handler, api *handler.APIHandler) *Application {
	a := &Application{
		Config:     c,
		Router:     r,
		Handler:    h,
		APIHandler: api,
	}

	// Register templates and routes
	a.Handler.RegisterStatic(a.Router)
	a.Handler.RegisterRoutes(a.Router)
	a.APIHandler.RegisterAPIRoutes(a.Router)

	return a
}

// RunApp serves until ctx is cancelled, then drains open requests.
func (a *Application) RunApp(ctx context.Context) error {
	logrus.Info("Server start up")

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           a.Router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on %s", serverAddress)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logrus.Info("Start shutdown...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("could not stop server gracefully: %v", err)
		return server.Close()
	}

	logrus.Info("Server down")
	return nil
}
