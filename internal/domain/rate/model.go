package rate

import "errors"

// MaxDescriptionLength bounds the markdown description shown on rate pages.
const MaxDescriptionLength = 2000

// Plan is a nightly rate plan for a room type.
type Plan struct {
	ID          string
	Name        string
	RoomType    string
	NightlyRate int    // cents
	Currency    string // ISO 4217, e.g. "NZD"
	Description string // markdown
	Active      bool
}

// Validate checks the plan's invariants.
// PRE: none
// POST: returns nil if valid, error describing the first violation otherwise
func (p *Plan) Validate() error {
	if p.Name == "" {
		return errors.New("rate plan name cannot be empty")
	}
	if p.RoomType == "" {
		return errors.New("rate plan room type cannot be empty")
	}
	if p.NightlyRate < 0 {
		return errors.New("rate plan nightly rate cannot be negative")
	}
	if len(p.Currency) != 3 {
		return errors.New("rate plan currency must be a 3-letter code")
	}
	if len(p.Description) > MaxDescriptionLength {
		return errors.New("rate plan description cannot exceed 2000 characters")
	}
	return nil
}
