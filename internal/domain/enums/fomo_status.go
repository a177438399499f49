package enums

// FOMOStatus is derived server-side from the window bounds; the panel only
// displays it.
type FOMOStatus string

const (
	FOMOActive    FOMOStatus = "active"
	FOMOScheduled FOMOStatus = "scheduled"
	FOMOEnded     FOMOStatus = "ended"
	FOMODisabled  FOMOStatus = "disabled"
)
