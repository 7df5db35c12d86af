package server

import (
	"context"
	"fmt"
	"strings"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes server projections and mutations over the live
// session.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new server service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// List projects all servers from the working container.
func (s *Service) List(ctx context.Context) ([]Server, error) {
	var out []Server
	err := s.sessions.With(func(sess *session.Session) error {
		out = Project(sess.Store().Working())
		return nil
	})
	return out, err
}

// Update applies a partial edit to one server record.
func (s *Service) Update(ctx context.Context, hostname string, edit Edit) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Apply(store.Working(), hostname, edit)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "server", hostname, "update")
		return nil
	})
}

// UpdatePurchased replaces the purchased-hostname list, syncing each
// affected server record's purchased flag.
func (s *Service) UpdatePurchased(ctx context.Context, hostnames []string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		ApplyPurchasedList(store.Working(), hostnames)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "server", "purchasedServers",
			fmt.Sprintf("set: %s", strings.Join(hostnames, ",")))
		return nil
	})
}

// Revert restores one server record to its baseline state.
func (s *Service) Revert(ctx context.Context, hostname string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Revert(store.Working(), store.Baseline(), hostname)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "server", hostname, "revert")
		return nil
	})
}

// RevertPurchased restores the purchased list to its baseline state.
func (s *Service) RevertPurchased(ctx context.Context) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		RevertPurchasedList(store.Working(), store.Baseline())
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "server", "purchasedServers", "revert")
		return nil
	})
}
