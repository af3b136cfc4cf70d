package service

import (
	"context"
	"log/slog"

	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/entities"
	"github.com/Stranger-app-team/stranger-vendor-dashboard/internal/session"
)

type AuthAPI interface {
	Login(ctx context.Context, userID, password string) (string, entities.Vendor, error)
}

type AnalyticsAPI interface {
	SalesAnalytics(ctx context.Context, from, to string) (entities.SalesAnalytics, error)
}

type authService struct {
	logger *slog.Logger
	api    AuthAPI
	sess   *session.Context
}

func NewAuthService(logger *slog.Logger, api AuthAPI, sess *session.Context) *authService {
	return &authService{
		logger: logger.With(slog.String("service", "auth")),
		api:    api,
		sess:   sess,
	}
}

// Login authenticates against the upstream and installs the vendor into
// the process-wide session context.
func (s *authService) Login(ctx context.Context, userID, password string) (entities.Vendor, error) {
	token, vendor, err := s.api.Login(ctx, userID, password)
	if err != nil {
		return entities.Vendor{}, err
	}
	if err := s.sess.Set(token, vendor); err != nil {
		return entities.Vendor{}, err
	}
	s.logger.Info("vendor signed in", slog.String("vendor_id", vendor.ID))
	return vendor, nil
}

func (s *authService) Logout() error {
	if err := s.sess.Clear(); err != nil {
		return err
	}
	s.logger.Info("vendor signed out")
	return nil
}

type analyticsService struct {
	logger *slog.Logger
	api    AnalyticsAPI
}

func NewAnalyticsService(logger *slog.Logger, api AnalyticsAPI) *analyticsService {
	return &analyticsService{
		logger: logger.With(slog.String("service", "analytics")),
		api:    api,
	}
}

func (s *analyticsService) Sales(ctx context.Context, from, to string) (entities.SalesAnalytics, error) {
	return s.api.SalesAnalytics(ctx, from, to)
}
