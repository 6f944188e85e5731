package entity

import (
	"fmt"
	"strings"

	"subname-minter/internal/domain"
)

// NameCandidate is a prospective subname: a label under a parent domain.
type NameCandidate struct {
	Label  string
	Parent string
}

// NewNameCandidate trims and lower-cases label and pairs it with parent.
// A label that is blank after trimming, or that contains a separator, is rejected.
func NewNameCandidate(label, parent string) (NameCandidate, error) {
	label = strings.ToLower(strings.TrimSpace(label))
	if label == "" {
		return NameCandidate{}, fmt.Errorf("%w: label must not be empty", domain.ErrInvalidInput)
	}
	if strings.Contains(label, ".") {
		return NameCandidate{}, fmt.Errorf("%w: label %q must not contain '.'", domain.ErrInvalidInput, label)
	}
	if strings.ContainsAny(label, " \t\n") {
		return NameCandidate{}, fmt.Errorf("%w: label %q must not contain whitespace", domain.ErrInvalidInput, label)
	}
	return NameCandidate{Label: label, Parent: parent}, nil
}

// FullName joins label and parent with a single '.'.
func (n NameCandidate) FullName() string {
	return n.Label + "." + n.Parent
}

func (n NameCandidate) String() string {
	return n.FullName()
}

// Availability is the tri-state outcome of an availability check.
type Availability string

const (
	AvailabilityAvailable Availability = "available"
	AvailabilityTaken     Availability = "taken"
	AvailabilityUnknown   Availability = "unknown"
)

// AvailabilityFrom converts a resolver answer into an Availability.
func AvailabilityFrom(available bool, err error) Availability {
	switch {
	case err != nil:
		return AvailabilityUnknown
	case available:
		return AvailabilityAvailable
	default:
		return AvailabilityTaken
	}
}

// Mintable reports whether a mint action may be offered.
func (a Availability) Mintable() bool {
	return a == AvailabilityAvailable
}

// Suggestion is one row of the search result list.
type Suggestion struct {
	Candidate NameCandidate `json:"-"`
	Name      string        `json:"name"`
	Taken     bool          `json:"taken"`
	// Checked is false when Taken was copied from the primary candidate instead of being looked up.
	Checked bool `json:"checked"`
	// Mintable is true only when the mint action may be offered for this row.
	Mintable bool `json:"mintable"`
}

// SearchResult is what a search hands back to the caller.
type SearchResult struct {
	Query        string       `json:"query"`
	Primary      string       `json:"primary"`
	Availability Availability `json:"availability"`
	Suggestions  []Suggestion `json:"suggestions"`
	Generation   uint64       `json:"generation"`
}
