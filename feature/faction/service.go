package faction

import (
	"context"
	"fmt"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes faction projections and mutations over the live
// session.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new faction service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// List projects all factions from the working container.
func (s *Service) List(ctx context.Context) ([]Faction, error) {
	var out []Faction
	err := s.sessions.With(func(sess *session.Session) error {
		out = Project(sess.Store().Working())
		return nil
	})
	return out, err
}

// Update applies a partial edit to one faction and propagates it to
// every redundant location.
func (s *Service) Update(ctx context.Context, name string, edit Edit) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Apply(store.Working(), store.Baseline(), name, edit)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "faction", name, describe(edit))
		return nil
	})
}

// Revert restores one faction to its baseline state.
func (s *Service) Revert(ctx context.Context, name string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Revert(store.Working(), store.Baseline(), name)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "faction", name, "revert")
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
	if edit.Banned != nil {
		out += fmt.Sprintf(" banned=%t", *edit.Banned)
	}
	if edit.Status != nil {
		out += fmt.Sprintf(" status=%s", *edit.Status)
	}
	return out
}
