package document

import (
	"reflect"

	"save-editor/core/savefile"

	"github.com/brunoga/deep"
)

// Store holds the two lives of a loaded container: the pristine
// baseline and the editable working copy. All mutation happens on the
// working copy; the baseline exists for diffing and reverts.
type Store struct {
	baseline *savefile.Container
	working  *savefile.Container
	subs     []func()
}

// NewStore creates an empty store. Load installs a document.
func NewStore() *Store {
	return &Store{}
}

// Load installs a freshly decoded container, deep-cloning it twice so
// baseline and working never alias shared substructure. Loading
// replaces any previously held document.
func (s *Store) Load(container *savefile.Container) {
	s.baseline = deep.MustCopy(container)
	s.working = deep.MustCopy(container)
}

// Loaded reports whether a document is installed.
func (s *Store) Loaded() bool {
	return s.working != nil
}

// Baseline returns the pristine loaded container. Callers must not
// mutate it.
func (s *Store) Baseline() *savefile.Container {
	return s.baseline
}

// Working returns the live editable container.
func (s *Store) Working() *savefile.Container {
	return s.working
}

// HasChanges performs a structural deep-equality comparison between
// baseline and working. Whole-document on purpose: cheap to reason
// about and fast enough for documents of tens of thousands of scalars.
func (s *Store) HasChanges() bool {
	if s.working == nil {
		return false
	}
	return !reflect.DeepEqual(s.baseline, s.working)
}

// RevertAll replaces the working container with a fresh deep clone of
// the baseline. This is the only operation that unconditionally drives
// HasChanges back to false.
func (s *Store) RevertAll() {
	if s.baseline == nil {
		return
	}
	s.working = deep.MustCopy(s.baseline)
	s.Notify()
}

// Subscribe registers a callback invoked after every committed
// mutation. Consumers poll projections from the callback instead of
// relying on any framework reactivity.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

// Notify fires the change signal. Mutation services call it once per
// committed update, after the whole propagation chain has been applied.
func (s *Store) Notify() {
	for _, fn := range s.subs {
		fn()
	}
}
