package audit

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Entry is one applied mutation, persisted for traceability. Plans
// that were declined never reach the audit trail.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SessionID string    `gorm:"index" json:"session_id"`
	Domain    string    `gorm:"index" json:"domain"`
	Key       string    `json:"key"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the table name stable across gorm naming strategies.
func (Entry) TableName() string { return "edit_audit" }

// Recorder writes audit entries. A nil Recorder (or one without a
// database) is a no-op, so callers never branch on whether auditing is
// configured.
type Recorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRecorder migrates the audit table and returns a recorder bound to db.
func NewRecorder(db *gorm.DB, logger *zap.Logger) (*Recorder, error) {
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, err
	}
	return &Recorder{db: db, logger: logger}, nil
}

// Record persists one applied mutation. Failures are logged, never
// raised: auditing must not break an edit that already committed.
func (r *Recorder) Record(ctx context.Context, sessionID, domain, key, detail string) {
	if r == nil || r.db == nil {
		return
	}
	entry := Entry{
		SessionID: sessionID,
		Domain:    domain,
		Key:       key,
		Detail:    detail,
	}
	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		r.logger.Warn("Failed to record audit entry",
			zap.String("domain", domain),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

// Recent returns the latest entries for a session, newest first.
func (r *Recorder) Recent(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	if r == nil || r.db == nil {
		return nil, nil
	}
	var entries []Entry
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("id desc").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}
