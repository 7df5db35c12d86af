package job

import (
	"context"

	"save-editor/core/audit"
	"save-editor/core/session"

	"go.uber.org/zap"
)

// Service exposes job projections and mutations over the live session.
type Service struct {
	sessions *session.Manager
	logger   *zap.Logger
	audit    *audit.Recorder
}

// NewService creates a new job service.
func NewService(sessions *session.Manager, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{sessions: sessions, logger: logger, audit: recorder}
}

// List projects all jobs from the working container.
func (s *Service) List(ctx context.Context) ([]Job, error) {
	var out []Job
	err := s.sessions.With(func(sess *session.Session) error {
		out = Project(sess.Store().Working())
		return nil
	})
	return out, err
}

// Update sets or clears (empty title) the job at one company.
func (s *Service) Update(ctx context.Context, company, title string) error {
	return s.sessions.With(func(sess *session.Session) error {
		Apply(sess.Store().Working(), company, title)
		sess.Store().Notify()
		s.audit.Record(ctx, sess.ID().String(), "job", company, "title="+title)
		return nil
	})
}

// Revert restores the job at one company to its baseline state.
func (s *Service) Revert(ctx context.Context, company string) error {
	return s.sessions.With(func(sess *session.Session) error {
		store := sess.Store()
		Revert(store.Working(), store.Baseline(), company)
		store.Notify()
		s.audit.Record(ctx, sess.ID().String(), "job", company, "revert")
		return nil
	})
}
