package drag

// IntentRegistry records which card-level target currently claims the
// in-flight drop. Column surfaces read it to defer to the more
// specific target nested inside them, so one physical drop never
// produces two moves.
//
// Release is ownership-checked: a stale leave arriving after the next
// card's enter must not clear the newer claim.
type IntentRegistry struct {
	column string
	card   string
	active bool
}

// Claim marks the given card target as the drop candidate.
func (r *IntentRegistry) Claim(column, card string) {
	r.column = column
	r.card = card
	r.active = true
}

// Release clears the claim, but only if the caller still owns it.
func (r *IntentRegistry) Release(column, card string) {
	if r.active && r.column == column && r.card == card {
		r.active = false
	}
}

// ClaimedIn reports whether a card target inside the given column is
// currently engaged.
func (r *IntentRegistry) ClaimedIn(column string) bool {
	return r.active && r.column == column
}

// Claimed returns the current claimant, if any.
func (r *IntentRegistry) Claimed() (column, card string, ok bool) {
	if !r.active {
		return "", "", false
	}
	return r.column, r.card, true
}
