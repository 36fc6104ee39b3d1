package http

import (
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	mw "nftlend-backend/internal/adapter/middleware"
	loanuc "nftlend-backend/internal/usecase/loan"
)

// NewRouter builds the Echo instance with all routes registered. rdb may
// be nil, in which case the idempotency middleware is skipped (tests).
func NewRouter(uc *loanuc.Usecase, rdb *redis.Client, idempTTL time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	if rdb != nil {
		e.Use(mw.IdempotencyMiddleware(rdb, idempTTL))
	}

	h := NewHandler()
	lh := NewLoanHandler(uc)
	ah := NewAdminHandler(uc)

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/loans", lh.RequestLoan)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.POST("/loans/:loan_id/repay", lh.RepayLoan)
	e.POST("/loans/:loan_id/check-default", lh.CheckDefault)

	e.POST("/loans/:loan_id/approve", ah.ApproveLoan)
	e.PUT("/users/:user_id/verify", ah.VerifyUser)

	return e
}
