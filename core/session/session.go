package session

import (
	"fmt"
	"regexp"
	"time"

	"save-editor/core/codec"
	"save-editor/core/document"
	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"

	"github.com/google/uuid"
)

// Session is one load→edit→export pipeline over a single save file.
// The wire encoding is sticky: whatever decoded the source is
// re-applied on export.
type Session struct {
	id       uuid.UUID
	name     string
	encoding codec.Encoding
	store    *document.Store
	loadedAt time.Time
}

func newSession(name string, container *savefile.Container, enc codec.Encoding) *Session {
	// The editor marker is part of the loaded state, not an edit: it is
	// applied before the baseline clone so a revert never strips it.
	markEditorUsed(container)

	store := document.NewStore()
	store.Load(container)

	return &Session{
		id:       uuid.New(),
		name:     name,
		encoding: enc,
		store:    store,
		loadedAt: time.Now(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Name returns the original source filename.
func (s *Session) Name() string { return s.name }

// Encoding returns the wire encoding the source arrived in.
func (s *Session) Encoding() codec.Encoding { return s.encoding }

// Store returns the document store holding baseline and working copies.
func (s *Session) Store() *document.Store { return s.store }

// LoadedAt returns when the session was opened.
func (s *Session) LoadedAt() time.Time { return s.loadedAt }

// HasChanges reports whether the working copy diverged from baseline.
func (s *Session) HasChanges() bool { return s.store.HasChanges() }

// Export re-encodes the working container with the session's sticky
// encoding and derives the download filename.
func (s *Session) Export() (string, []byte, error) {
	data, err := codec.Encode(s.store.Working(), s.encoding)
	if err != nil {
		return "", nil, err
	}
	return ExportFilename(s.name, s.encoding, time.Now()), data, nil
}

// markEditorUsed appends the editor exploit marker to the player's
// exploit flags exactly once.
func markEditorUsed(container *savefile.Container) {
	player := container.Player()
	if player == nil {
		return
	}
	exploits := utils.StringSlice(player, "exploits")
	if utils.Contains(exploits, gamedata.ExploitEditSaveFile) {
		return
	}
	utils.SetStringSlice(player, "exploits", append(exploits, gamedata.ExploitEditSaveFile))
}

// identifierPattern extracts the save identifier from filenames shaped
// prefix_<timestamp>_<identifier>(-suffix)?.ext.
var identifierPattern = regexp.MustCompile(`_\d+_(.+?)(?:-edited)?\.`)

// fallbackIdentifier substitutes when the source filename does not
// match the fixed pattern.
const fallbackIdentifier = "save"

// ExportFilename derives the download filename for an export. The
// identifier is carried over from the source filename when it matches
// the fixed pattern.
func ExportFilename(source string, enc codec.Encoding, ts time.Time) string {
	identifier := fallbackIdentifier
	if m := identifierPattern.FindStringSubmatch(source); m != nil {
		identifier = m[1]
	}
	return fmt.Sprintf("bitburnerSave_%d_%s-edited%s", ts.Unix(), identifier, codec.Extension(enc))
}
