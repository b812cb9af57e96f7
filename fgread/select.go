package fgread

// SelectDataset resolves a dataset ID or title against a table to exactly
// one record.
//
// The returned record is a copy: mutating it never reaches the table. Zero
// matches return a *NotFoundError; more than one (possible when a title is
// reused, or collides with another dataset's ID) returns an
// *AmbiguousSelectionError carrying the candidates.
func SelectDataset(ds string, table *Table) (*Record, error) {
	var matches []*Record
	for _, record := range table.Records() {
		if record.ID() == ds || record.Title() == ds {
			matches = append(matches, record)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0].clone(), nil
	case 0:
		return nil, &NotFoundError{Selector: ds}
	default:
		return nil, &AmbiguousSelectionError{
			Selector:   ds,
			Matches:    len(matches),
			Candidates: matches,
		}
	}
}
