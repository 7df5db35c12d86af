package company

import (
	"context"
	"fmt"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes company projections and mutations over the live
// session.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new company service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// List projects all companies from the working container.
func (s *Service) List(ctx context.Context) ([]Company, error) {
	var out []Company
	err := s.sessions.With(func(sess *session.Session) error {
		out = Project(sess.Store().Working())
		return nil
	})
	return out, err
}

// Update applies a partial edit to one company.
func (s *Service) Update(ctx context.Context, name string, edit Edit) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Apply(store.Working(), store.Baseline(), name, edit)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "company", name, describe(edit))
		return nil
	})
}

// Revert restores one company to its baseline state.
func (s *Service) Revert(ctx context.Context, name string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Revert(store.Working(), store.Baseline(), name)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "company", name, "revert")
		return nil
	})
}

func describe(edit Edit) string {
	out := "update:"
	if edit.Reputation != nil {
		out += fmt.Sprintf(" reputation=%g", *edit.Reputation)
	}
	if edit.Favor != nil {
		out += fmt.Sprintf(" favor=%d", *edit.Favor)
	}
	return out
}
