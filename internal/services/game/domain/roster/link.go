package roster

// linkRelationships resolves raw relationship identifiers into direct links
// for every registered character. It runs only after the registry is
// complete, so every resolvable identifier resolves against the full batch.
//
// Missing identifiers never fail the run: the link slot is simply left
// unset and a log entry records the miss. Duplicate identifiers in a source
// list produce duplicate resolved entries; deduplication is the caller's
// concern.
func (r *loadRun) linkRelationships() {
	r.logf("roster: linking character relationships")
	if len(r.result.Registry) == 0 {
		r.logf("roster: no characters to link")
		return
	}

	for _, id := range r.result.Order {
		ch := r.result.Registry[id]

		if spouseID := ch.SpouseID(); spouseID != "" {
			if spouse, found := r.result.Registry[spouseID]; found {
				ch.Spouse = spouse
			} else {
				r.logf("WARN: character %q spouse id %q not found in loaded characters", id, spouseID)
			}
		}

		for _, parentID := range ch.ParentIDs() {
			if parent, found := r.result.Registry[parentID]; found {
				ch.Parents = append(ch.Parents, parent)
			} else {
				r.logf("WARN: character %q parent id %q not found", id, parentID)
			}
		}

		for _, childID := range ch.ChildrenIDs() {
			if child, found := r.result.Registry[childID]; found {
				ch.Children = append(ch.Children, child)
			} else {
				r.logf("WARN: character %q child id %q not found", id, childID)
			}
		}

		for _, siblingID := range ch.SiblingIDs() {
			if sibling, found := r.result.Registry[siblingID]; found {
				ch.Siblings = append(ch.Siblings, sibling)
			} else {
				r.logf("WARN: character %q sibling id %q not found", id, siblingID)
			}
		}
	}

	r.logf("roster: relationship linking complete")
}
