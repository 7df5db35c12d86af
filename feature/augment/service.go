package augment

import (
	"context"
	"fmt"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes augmentation projections and mutations over the live
// session. Status changes go through plan/confirm/apply so a cascade is
// always visible before it commits.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new augmentation service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// List projects the ordinary augmentations from the working container.
func (s *Service) List(ctx context.Context) ([]Augmentation, error) {
	var out []Augmentation
	err := s.sessions.With(func(sess *session.Session) error {
		out = Project(sess.Store().Working())
		return nil
	})
	return out, err
}

// NeuroFlux projects the leveled augmentation's level pair.
func (s *Service) NeuroFlux(ctx context.Context) (NeuroFlux, error) {
	var out NeuroFlux
	err := s.sessions.With(func(sess *session.Session) error {
		out = NeuroFluxLevels(sess.Store().Working())
		return nil
	})
	return out, err
}

// Update plans and applies a status change for one ordinary
// augmentation. The plan comes back either way; when it carries an
// unconfirmed cascade the error is ErrConfirmationRequired and nothing
// was mutated.
func (s *Service) Update(ctx context.Context, name string, to Status, opts Options) (Plan, error) {
	var plan Plan
	err := s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		plan = PlanStatusChange(store.Working(), name, to)
		if err := Apply(store.Working(), plan, opts); err != nil {
			return err
		}
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "augmentation", name,
			fmt.Sprintf("status=%s cascade=%d", to, len(plan.Cascade)))
		return nil
	})
	return plan, err
}

// Revert plans and applies a restore of one ordinary augmentation to
// its baseline status, through the same cascade check as a forward
// edit.
func (s *Service) Revert(ctx context.Context, name string, opts Options) (Plan, error) {
	var plan Plan
	err := s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		plan = PlanRevert(store.Working(), store.Baseline(), name)
		if err := Apply(store.Working(), plan, opts); err != nil {
			return err
		}
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "augmentation", name, "revert")
		return nil
	})
	return plan, err
}

// UpdateNeuroFlux sets the leveled augmentation's level pair. The
// returned pair reflects clamping.
func (s *Service) UpdateNeuroFlux(ctx context.Context, installed, queued int) (NeuroFlux, error) {
	var out NeuroFlux
	err := s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		out = UpdateNeuroFlux(store.Working(), installed, queued)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "augmentation", "NeuroFlux Governor",
			fmt.Sprintf("installed=%d queued=%d", out.Installed, out.Queued))
		return nil
	})
	return out, err
}

// RevertNeuroFlux restores the leveled augmentation to its baseline
// level pair.
func (s *Service) RevertNeuroFlux(ctx context.Context) (NeuroFlux, error) {
	var out NeuroFlux
	err := s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		out = RevertNeuroFlux(store.Working(), store.Baseline())
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "augmentation", "NeuroFlux Governor", "revert")
		return nil
	})
	return out, err
}
