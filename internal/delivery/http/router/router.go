// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"noticetrack/internal/delivery/http/middleware"
	"noticetrack/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NoticeHandler   *handler.NoticeHandler
	ActivityHandler *handler.ActivityHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	noticeHandler   *handler.NoticeHandler
	activityHandler *handler.ActivityHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		noticeHandler:   params.NoticeHandler,
		activityHandler: params.ActivityHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Wallet sign-in flow
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/challenge", r.sessionHandler.RequestChallenge)
		authGroup.POST("/verify", r.sessionHandler.VerifySignature)
	}

	// Notice registration and lookup
	noticeGroup := api.Group("/notices")
	{
		noticeGroup.POST("", r.noticeHandler.RegisterNotice)
		noticeGroup.GET("/:noticeID", r.noticeHandler.GetNotice)
		noticeGroup.GET("/:noticeID/qr", r.noticeHandler.GetNoticeQR)
	}

	// Case-scoped routes
	caseGroup := api.Group("/cases")
	{
		caseGroup.GET("/:caseNumber/notices", r.noticeHandler.ListCaseNotices)
		caseGroup.GET("/:caseNumber/audit", r.activityHandler.GetCaseAudit)
		caseGroup.POST("/:caseNumber/acknowledge",
			r.activityHandler.AcknowledgeCase,
			r.authMiddleware.Authenticate,
		)
	}

	// Activity trail, bound to the authenticated wallet
	api.POST("/activities", r.activityHandler.RecordActivity, r.authMiddleware.Authenticate)

	// Wallet-scoped routes require the token to match the requested wallet
	walletGroup := api.Group("/wallets/:address",
		r.authMiddleware.Authenticate,
		r.authMiddleware.RequireWalletParam("address"),
	)
	{
		walletGroup.GET("/notices", r.noticeHandler.ListWalletNotices)
		walletGroup.GET("/activities", r.activityHandler.GetWalletActivity)
	}
}
