package mint

import "subname-minter/internal/domain/entity"

// Suggest returns the fixed candidate list for a base label: the label itself,
// label+"123", "my"+label and "the"+label, all under parent.
func Suggest(base entity.NameCandidate) []entity.NameCandidate {
	return []entity.NameCandidate{
		base,
		{Label: base.Label + "123", Parent: base.Parent},
		{Label: "my" + base.Label, Parent: base.Parent},
		{Label: "the" + base.Label, Parent: base.Parent},
	}
}

// Annotate marks every candidate with the primary candidate's availability. Only the
// primary is flagged as checked; nothing is offered for minting unless the primary is available.
func Annotate(candidates []entity.NameCandidate, primary entity.Availability) []entity.Suggestion {
	suggestions := make([]entity.Suggestion, 0, len(candidates))
	for i, c := range candidates {
		suggestions = append(suggestions, entity.Suggestion{
			Candidate: c,
			Name:      c.FullName(),
			Taken:     primary != entity.AvailabilityAvailable,
			Checked:   i == 0,
			Mintable:  primary.Mintable(),
		})
	}
	return suggestions
}
