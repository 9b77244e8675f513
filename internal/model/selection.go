package model

// SelectionState is the user's current selection. There is exactly one
// instance, owned by the state manager; everything else reads snapshots.
// ActiveSymbol is empty only before the first symbol is selected.
type SelectionState struct {
	ActiveSymbol     string
	PeriodDays       int
	FilterText       string
	ComparisonSymbol string
}
