package middleware

import (
	"context"
	"time"

	"malalingo/internal/service"
	"malalingo/internal/session"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

const guardTimeout = 20 * time.Second

// EnsureUser makes sure every chat user has a database record
func EnsureUser(authService *service.AuthService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if c.Sender() == nil {
				return next(c)
			}

			if err := authService.EnsureUserExists(c.Sender().ID); err != nil {
				logger.Error("Failed to ensure user exists in middleware", zap.Error(err))
				return c.Send("Something went wrong. Please try again later.")
			}
			return next(c)
		}
	}
}

// RouteGuard lets the request through only when the user may open route.
// Otherwise redirect handles the request instead.
func RouteGuard(authService *service.AuthService, route session.Route, redirect tele.HandlerFunc, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID

			ctx, cancel := context.WithTimeout(context.Background(), guardTimeout)
			defer cancel()

			decision := authService.Session(userID).Authorize(ctx, route)
			if !decision.Allowed {
				logger.Info("Route requires login",
					zap.Int64("user_id", userID),
					zap.String("route", route.Name),
					zap.String("redirect", decision.Redirect),
				)
				return redirect(c)
			}
			return next(c)
		}
	}
}
