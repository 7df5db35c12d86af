package savegame

import (
	"context"
	"errors"
	"path"
	"time"

	"save-editor/core/audit"
	"save-editor/core/session"
	"save-editor/core/storage"

	"go.uber.org/zap"
)

// ErrStorageDisabled is returned for storage-backed operations when no
// object storage is configured.
var ErrStorageDisabled = errors.New("object storage is not configured")

// Status describes the live session.
type Status struct {
	SessionID  string    `json:"session_id"`
	File       string    `json:"file"`
	Encoding   string    `json:"encoding"`
	LoadedAt   time.Time `json:"loaded_at"`
	HasChanges bool      `json:"has_changes"`
}

// Export is one produced download artifact.
type Export struct {
	Filename string
	Data     []byte
	// BackupObject names the storage object the export was mirrored to,
	// empty when no backup happened.
	BackupObject string
}

// Service drives the session lifecycle: load, status, whole-document
// revert, export. Domain edits live in their own feature packages.
type Service struct {
	sessions   *session.Manager
	store      storage.Client
	storageCfg storage.Config
	logger     *zap.Logger
	audit      *audit.Recorder
}

// NewService creates the savegame service. store may be nil when object
// storage is not configured.
func NewService(sessions *session.Manager, store storage.Client, storageCfg storage.Config, logger *zap.Logger, recorder *audit.Recorder) *Service {
	return &Service{
		sessions:   sessions,
		store:      store,
		storageCfg: storageCfg,
		logger:     logger,
		audit:      recorder,
	}
}

// Load decodes raw save bytes and installs a new session.
func (s *Service) Load(ctx context.Context, name string, raw []byte) (Status, error) {
	sess, err := s.sessions.Open(name, raw)
	if err != nil {
		return Status{}, err
	}
	s.audit.Record(ctx, sess.ID().String(), "session", name, "load")
	return describe(sess), nil
}

// LoadFromStorage fetches a save object from the configured bucket and
// installs a new session over it.
func (s *Service) LoadFromStorage(ctx context.Context, object string) (Status, error) {
	if s.store == nil {
		return Status{}, ErrStorageDisabled
	}
	raw, err := storage.FetchSave(ctx, s.store, s.storageCfg, object)
	if err != nil {
		return Status{}, err
	}
	return s.Load(ctx, path.Base(object), raw)
}

// ListSaves lists the save objects available under a prefix in the
// configured bucket.
func (s *Service) ListSaves(ctx context.Context, prefix string) ([]string, error) {
	if s.store == nil {
		return nil, ErrStorageDisabled
	}
	return storage.ListSaves(ctx, s.store, s.storageCfg, prefix)
}

// Status reports the live session.
func (s *Service) Status(ctx context.Context) (Status, error) {
	var out Status
	err := s.sessions.With(func(sess *session.Session) error {
		out = describe(sess)
		return nil
	})
	return out, err
}

// RevertAll discards every edit by re-cloning the working copy from
// baseline.
func (s *Service) RevertAll(ctx context.Context) error {
	return s.sessions.With(func(sess *session.Session) error {
		sess.Store().RevertAll()
		s.audit.Record(ctx, sess.ID().String(), "session", sess.Name(), "revert-all")
		return nil
	})
}

// Export re-encodes the working container with the session's sticky
// encoding. When backup is requested and storage is configured, the
// artifact is mirrored under the backup prefix.
func (s *Service) Export(ctx context.Context, backup bool) (Export, error) {
	var out Export
	err := s.sessions.With(func(sess *session.Session) error {
		filename, data, err := sess.Export()
		if err != nil {
			return err
		}
		out = Export{Filename: filename, Data: data}
		if backup && s.store != nil {
			object, err := storage.BackupExport(ctx, s.store, s.storageCfg, filename, data)
			if err != nil {
				// The export itself succeeded; a failed mirror is a warning.
				s.logger.Warn("Failed to back up export", zap.String("file", filename), zap.Error(err))
			} else {
				out.BackupObject = object
			}
		}
		s.audit.Record(ctx, sess.ID().String(), "session", filename, "export")
		return nil
	})
	return out, err
}

// Audit returns the latest audit entries for the live session.
func (s *Service) Audit(ctx context.Context, limit int) ([]audit.Entry, error) {
	sess, err := s.sessions.Current()
	if err != nil {
		return nil, err
	}
	return s.audit.Recent(ctx, sess.ID().String(), limit)
}

func describe(sess *session.Session) Status {
	return Status{
		SessionID:  sess.ID().String(),
		File:       sess.Name(),
		Encoding:   string(sess.Encoding()),
		LoadedAt:   sess.LoadedAt(),
		HasChanges: sess.HasChanges(),
	}
}
