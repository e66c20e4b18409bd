// Package state holds the per-session application state of the storefront.
package state

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/pr-poehali-dev/office-supply-webshop/mapping"
	"github.com/pr-poehali-dev/office-supply-webshop/models"
	"github.com/pr-poehali-dev/office-supply-webshop/sheet"
)

const (
	LanguageRU = "ru"
	LanguageEN = "en"
)

// Upload is the admin panel's current file selection and its last outcome.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
	// Table is the locally read content of Data, nil when it could not be read.
	Table   *sheet.Table
	Outcome *models.UploadOutcome
}

// State is everything one dealer session owns. Fields are guarded by Lock;
// the submission and order flags are separate so long remote calls do not
// block reads.
type State struct {
	ID        string
	CreatedAt time.Time

	mu       sync.Mutex
	inFlight atomic.Bool
	ordering atomic.Bool

	Dealer   models.DealerInfo
	Cart     models.Cart
	Language string
	Upload   Upload
	Mapping  *mapping.Session
}

func New(id string) *State {
	return &State{
		ID:        id,
		CreatedAt: time.Now(),
		Language:  LanguageRU,
		Cart:      models.Cart{Items: []models.CartItem{}},
	}
}

func (s *State) Lock()   { s.mu.Lock() }
func (s *State) Unlock() { s.mu.Unlock() }

// BeginSubmission claims the single submission slot. It returns false while
// another submission is outstanding.
func (s *State) BeginSubmission() bool {
	return s.inFlight.CompareAndSwap(false, true)
}

func (s *State) EndSubmission() {
	s.inFlight.Store(false)
}

func (s *State) InFlight() bool {
	return s.inFlight.Load()
}

// BeginOrder claims the single order slot of the session.
func (s *State) BeginOrder() bool {
	return s.ordering.CompareAndSwap(false, true)
}

func (s *State) EndOrder() {
	s.ordering.Store(false)
}
