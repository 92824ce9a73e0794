package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/TudorHulban/slotledger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParamsNewRouter struct {
	Ledger *slotledger.Ledger
	Logger *zap.Logger

	MaxRequestsPerMin int
}

func NewRouter(params *ParamsNewRouter) *gin.Engine {
	h := handlers{
		ledger: params.Ledger,
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		requestIDMiddleware(),
		requestLoggerMiddleware(params.Logger),
		newRateLimiterStore(params.MaxRequestsPerMin).middleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/hours", h.getBookedHours)
		api.GET("/bookings", h.getBookings)
		api.GET("/availability", h.getAvailability)
		api.POST("/bookings", h.book)
		api.POST("/bookings/cancel", h.cancel)
	}

	return r
}

// Serve blocks until ctx is done, then shuts the server down.
func Serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	chErr := make(chan error, 1)

	go func() {
		logger.Info("http listening", zap.String("addr", addr))

		chErr <- srv.ListenAndServe()
	}()

	select {
	case errServe := <-chErr:
		return errServe

	case <-ctx.Done():
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if errShutdown := srv.Shutdown(ctxShutdown); errShutdown != nil {
			return errShutdown
		}

		if errServe := <-chErr; !errors.Is(errServe, http.ErrServerClosed) {
			return errServe
		}

		return nil
	}
}
