package model

// Page is a complete standalone screen occupying everything but the footer.
type Page int

const (
	PageTable Page = iota
	PageDetail
	PageHelp
)

// KeyZone defines the distinct areas of the ui in which the keyboard can be interacted with.
// Only one zone, with the addition of the default global zone, will be active at any one time.
type KeyZone int

const (
	KZplayerTable KeyZone = iota
	KZsearchInput
	KZboundMin
	KZboundMax
)

// FilterZones is the tab order of the table page.
var FilterZones = KeyZoneGroup{KZplayerTable, KZsearchInput, KZboundMin, KZboundMax} //nolint:gochecknoglobals

// ViewState tracks the common ui states that are shared between many models.
type ViewState struct {
	Page    Page
	KeyZone KeyZone

	// --------- h
	// | Upper | e
	// |-------- i
	// | Lower | g
	// --------- h
	// W i d t h t
	Upper  int
	Lower  int
	Height int
	Width  int
}
