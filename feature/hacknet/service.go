package hacknet

import (
	"context"
	"fmt"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes hacknet projections and mutations over the live
// session.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new hacknet service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// ListNodes projects the hacknet nodes from the working container.
func (s *Service) ListNodes(ctx context.Context) ([]Node, error) {
	var out []Node
	err := s.sessions.With(func(sess *session.Session) error {
		out = Nodes(sess.Store().Working())
		return nil
	})
	return out, err
}

// Ledger projects the hash manager from the working container.
func (s *Service) Ledger(ctx context.Context) (HashLedger, error) {
	var out HashLedger
	err := s.sessions.With(func(sess *session.Session) error {
		out = Ledger(sess.Store().Working())
		return nil
	})
	return out, err
}

// UpdateNode applies a partial edit to one node.
func (s *Service) UpdateNode(ctx context.Context, name string, edit NodeEdit) error {
	return s.sessions.With(func(sess *session.Session) error {
		ApplyNode(sess.Store().Working(), name, edit)
		sess.Store().Notify()
		s.audit.Record(ctx, sess.ID().String(), "hacknet", name, describeNodeEdit(edit))
		return nil
	})
}

// RevertNode restores one node to its baseline wire form.
func (s *Service) RevertNode(ctx context.Context, name string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		RevertNode(store.Working(), store.Baseline(), name)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "hacknet", name, "revert")
		return nil
	})
}

// UpdateHashes sets the stored hash count. The clamped value is
// returned.
func (s *Service) UpdateHashes(ctx context.Context, hashes float64) (float64, error) {
	var out float64
	err := s.sessions.With(func(sess *session.Session) error {
		out = ApplyHashes(sess.Store().Working(), hashes)
		sess.Store().Notify()
		s.audit.Record(ctx, sess.ID().String(), "hacknet", "hashes", fmt.Sprintf("hashes=%g", out))
		return nil
	})
	return out, err
}

// UpdateUpgrade sets one hash-upgrade count. The clamped value is
// returned.
func (s *Service) UpdateUpgrade(ctx context.Context, name string, count int) (int, error) {
	var out int
	err := s.sessions.With(func(sess *session.Session) error {
		out = ApplyUpgrade(sess.Store().Working(), name, count)
		sess.Store().Notify()
		s.audit.Record(ctx, sess.ID().String(), "hacknet", name, fmt.Sprintf("upgrade=%d", out))
		return nil
	})
	return out, err
}

// RevertLedger restores the hash manager to its baseline state.
func (s *Service) RevertLedger(ctx context.Context) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		RevertLedger(store.Working(), store.Baseline())
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "hacknet", "hashes", "revert")
		return nil
	})
}

func describeNodeEdit(edit NodeEdit) string {
	out := "update:"
	if edit.Level != nil {
		out += fmt.Sprintf(" level=%d", *edit.Level)
	}
	if edit.RAM != nil {
		out += fmt.Sprintf(" ram=%g", *edit.RAM)
	}
	if edit.Cores != nil {
		out += fmt.Sprintf(" cores=%d", *edit.Cores)
	}
	return out
}
