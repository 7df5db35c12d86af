package session

import (
	"testing"
	"time"

	"save-editor/core/codec"
	"save-editor/core/gamedata"
	"save-editor/core/savefile"
	"save-editor/core/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const plainSave = `{"type":"BitburnerSaveObject","data":{"PlayerSave":"{\"money\":100,\"exploits\":[]}"}}`

func TestOpenMarksEditorBeforeBaseline(t *testing.T) {
	m := NewManager(zap.NewNop())
	sess, err := m.Open("bitburnerSave_1700000000_BN1.json", []byte(plainSave))
	require.NoError(t, err)

	// The exploit marker is loaded state, not an edit: it must be in
	// both copies so a revert never strips it, and the session starts
	// clean.
	working := utils.StringSlice(sess.Store().Working().Player(), "exploits")
	baseline := utils.StringSlice(sess.Store().Baseline().Player(), "exploits")
	assert.Contains(t, working, gamedata.ExploitEditSaveFile)
	assert.Contains(t, baseline, gamedata.ExploitEditSaveFile)
	assert.False(t, sess.HasChanges())

	sess.Store().RevertAll()
	working = utils.StringSlice(sess.Store().Working().Player(), "exploits")
	assert.Contains(t, working, gamedata.ExploitEditSaveFile)
}

func TestOpenMarksEditorOnce(t *testing.T) {
	m := NewManager(zap.NewNop())
	marked := `{"type":"BitburnerSaveObject","data":{"PlayerSave":"{\"exploits\":[\"EditSaveFile\"]}"}}`
	sess, err := m.Open("save.json", []byte(marked))
	require.NoError(t, err)

	exploits := utils.StringSlice(sess.Store().Working().Player(), "exploits")
	assert.Equal(t, []string{gamedata.ExploitEditSaveFile}, exploits)
}

func TestExportStickyEncoding(t *testing.T) {
	m := NewManager(zap.NewNop())
	data, err := codec.Encode(mustParse(t), codec.EncodingGzip)
	require.NoError(t, err)

	sess, err := m.Open("bitburnerSave_1700000000_BN1.json.gz", data)
	require.NoError(t, err)
	assert.Equal(t, codec.EncodingGzip, sess.Encoding())

	filename, out, err := sess.Export()
	require.NoError(t, err)
	assert.Regexp(t, `^bitburnerSave_\d+_BN1-edited\.json\.gz$`, filename)

	// The export decodes back on the same path it was produced for.
	decoded, enc, err := codec.Decode(out, true)
	require.NoError(t, err)
	assert.Equal(t, codec.EncodingGzip, enc)
	assert.Equal(t, sess.Store().Working(), decoded)
}

func TestExportFilename(t *testing.T) {
	ts := time.Unix(1700000000, 0)

	tests := []struct {
		name   string
		source string
		enc    codec.Encoding
		want   string
	}{
		{
			name:   "identifier carried over",
			source: "bitburnerSave_1699999999_BN1x3.json",
			enc:    codec.EncodingPlain,
			want:   "bitburnerSave_1700000000_BN1x3-edited.json",
		},
		{
			name:   "edited suffix not doubled",
			source: "bitburnerSave_1699999999_BN1x3-edited.json",
			enc:    codec.EncodingPlain,
			want:   "bitburnerSave_1700000000_BN1x3-edited.json",
		},
		{
			name:   "gzip extension",
			source: "bitburnerSave_1699999999_BN2.json.gz",
			enc:    codec.EncodingGzip,
			want:   "bitburnerSave_1700000000_BN2-edited.json.gz",
		},
		{
			name:   "fallback identifier",
			source: "my-save.json",
			enc:    codec.EncodingBase64,
			want:   "bitburnerSave_1700000000_save-edited.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFilename(tt.source, tt.enc, ts))
		})
	}
}

func TestManagerWith(t *testing.T) {
	m := NewManager(zap.NewNop())

	err := m.With(func(*Session) error { return nil })
	assert.ErrorIs(t, err, ErrNoSession)
	_, err = m.Current()
	assert.ErrorIs(t, err, ErrNoSession)

	sess, err := m.Open("save.json", []byte(plainSave))
	require.NoError(t, err)

	err = m.With(func(s *Session) error {
		assert.Same(t, sess, s)
		return nil
	})
	assert.NoError(t, err)
}

func TestManagerOpenReplaces(t *testing.T) {
	m := NewManager(zap.NewNop())
	first, err := m.Open("first.json", []byte(plainSave))
	require.NoError(t, err)

	second, err := m.Open("second.json", []byte(plainSave))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID(), second.ID())

	current, err := m.Current()
	require.NoError(t, err)
	assert.Same(t, second, current)
}

func mustParse(t *testing.T) *savefile.Container {
	t.Helper()
	container, _, err := codec.Decode([]byte(plainSave), false)
	require.NoError(t, err)
	return container
}
