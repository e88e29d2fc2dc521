// Package mapview owns the server-side projection of issues onto the
// mapping widget. The widget itself is an external collaborator consumed
// through a small imperative API; the package also carries an in-memory
// implementation backing the marker overlay served over HTTP.
package mapview

import "civicconnect-be/models"

// MarkerKind distinguishes issue markers, which the reconciler replaces
// wholesale, from transient markers (the visitor's location, the clicked
// report target) that it must leave alone.
type MarkerKind string

const (
	KindIssue    MarkerKind = "issue"
	KindLocation MarkerKind = "location"
	KindClick    MarkerKind = "click"
)

// Marker is one pin on the map.
type Marker struct {
	IssueID  string        `json:"issueId,omitempty"`
	Kind     MarkerKind    `json:"kind"`
	Position models.LatLng `json:"position"`
	Color    string        `json:"color"`
	Label    string        `json:"label"`
}

// Widget is the imperative mapping-widget API. Implementations may drive
// a real map client or record state in memory; the reconciler only ever
// adds and removes markers and pans.
type Widget interface {
	AddTileLayer(urlTemplate, attribution string)
	AddMarker(m Marker) (handle string)
	RemoveMarker(handle string)
	PanTo(pos models.LatLng, zoom int)
	OnClick(handler func(pos models.LatLng))
	InvalidateSize()
	Destroy()
}

// Status marker colors, amber fallback for anything unrecognized.
const (
	colorAmber = "#F59E0B"
	colorRed   = "#EF4444"
	colorGreen = "#10B981"
)

// StatusColor maps an issue status to its marker color.
func StatusColor(status models.IssueStatus) string {
	switch status {
	case models.InProgress:
		return colorRed
	case models.Resolved:
		return colorGreen
	default:
		return colorAmber
	}
}
