package mapping

import (
	"errors"
	"fmt"
	"slices"

	"github.com/pr-poehali-dev/office-supply-webshop/models"
)

var (
	ErrFieldIndexOutOfRange   = errors.New("mapping: field index out of range")
	ErrUnknownField           = errors.New("mapping: unknown field")
	ErrUnknownColumn          = errors.New("mapping: column not among detected columns")
	ErrRequiredFieldsUnmapped = errors.New("mapping: required fields are not mapped")
	ErrSessionClosed          = errors.New("mapping: session already confirmed")
)

// Option configures a Session.
type Option func(*Session)

// WithDetector replaces the default detector.
func WithDetector(d *Detector) Option {
	return func(s *Session) { s.detector = d }
}

// WithSchema replaces the default field list. Detected columns are cleared.
func WithSchema(schema []models.FieldMapping) Option {
	return func(s *Session) {
		s.mappings = make([]models.FieldMapping, len(schema))
		for i, m := range schema {
			m.DetectedColumn = ""
			s.mappings[i] = m
		}
	}
}

// WithPreserveOverrides keeps manual choices across SetColumns as long as the
// chosen column is still present.
func WithPreserveOverrides(preserve bool) Option {
	return func(s *Session) { s.preserve = preserve }
}

// Session holds the field to column assignments of one mapping dialog.
// It is not safe for concurrent use; callers serialize access.
type Session struct {
	detector   *Detector
	mappings   []models.FieldMapping
	columns    []string
	overridden map[models.CatalogField]bool
	preserve   bool
	closed     bool
}

// NewSession starts a session with every field unmapped.
func NewSession(opts ...Option) *Session {
	s := &Session{
		detector:   DefaultDetector(),
		mappings:   DefaultSchema(),
		overridden: make(map[models.CatalogField]bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mappings returns a copy of the current entries.
func (s *Session) Mappings() []models.FieldMapping {
	return slices.Clone(s.mappings)
}

// Columns returns a copy of the detected columns.
func (s *Session) Columns() []string {
	return slices.Clone(s.columns)
}

func (s *Session) Closed() bool {
	return s.closed
}

// SetColumns feeds a new header row. A non-empty row re-runs detection for
// every field and discards manual edits (unless preserving). An empty row
// changes nothing.
func (s *Session) SetColumns(columns []string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if len(columns) == 0 {
		return nil
	}
	s.columns = slices.Clone(columns)

	next := make([]models.FieldMapping, len(s.mappings))
	kept := make(map[models.CatalogField]bool)
	for i, m := range s.mappings {
		if s.preserve && s.overridden[m.Field] && (m.DetectedColumn == "" || slices.Contains(s.columns, m.DetectedColumn)) {
			next[i] = m
			kept[m.Field] = true
			continue
		}
		m.DetectedColumn = s.detector.DetectColumn(m.Field, s.columns)
		next[i] = m
	}
	s.mappings = next
	s.overridden = kept
	return nil
}

// Override sets the column of the entry at index. An empty column unmaps it.
func (s *Session) Override(index int, column string) error {
	if s.closed {
		return ErrSessionClosed
	}
	if index < 0 || index >= len(s.mappings) {
		return fmt.Errorf("%w: %d", ErrFieldIndexOutOfRange, index)
	}
	if column != "" && !slices.Contains(s.columns, column) {
		return fmt.Errorf("%w: %q", ErrUnknownColumn, column)
	}
	s.mappings[index].DetectedColumn = column
	s.overridden[s.mappings[index].Field] = true
	return nil
}

// OverrideField is Override addressed by field name.
func (s *Session) OverrideField(field models.CatalogField, column string) error {
	for i, m := range s.mappings {
		if m.Field == field {
			return s.Override(i, column)
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownField, field)
}

// CanConfirm is evaluated on every call.
func (s *Session) CanConfirm() bool {
	return !s.closed && CanConfirm(s.mappings)
}

// Confirm hands out the mapped entries and closes the session. It fails
// without side effects while a required field is unmapped.
func (s *Session) Confirm() (models.ConfirmedMapping, error) {
	if s.closed {
		return nil, ErrSessionClosed
	}
	if !CanConfirm(s.mappings) {
		return nil, ErrRequiredFieldsUnmapped
	}
	confirmed := BuildConfirmed(s.mappings)
	s.closed = true
	return confirmed, nil
}

// View snapshots the session for rendering.
func (s *Session) View() models.MappingView {
	columns := s.Columns()
	if columns == nil {
		columns = []string{}
	}
	return models.MappingView{
		Columns:    columns,
		Mappings:   s.Mappings(),
		CanConfirm: s.CanConfirm(),
		Closed:     s.closed,
	}
}
