package mapview

import (
	"strconv"
	"sync"

	"civicconnect-be/models"
)

// Overlay is an in-memory Widget. It holds the marker set the frontend
// paints from, exposed over the markers endpoint, and remembers the last
// pan target so "zoom to issue" survives a page reload.
type Overlay struct {
	mu      sync.Mutex
	nextID  int
	markers map[string]Marker
	center  models.LatLng
	zoom    int
	onClick func(models.LatLng)
	tiles   string
}

// NewOverlay creates an overlay centered on the given position.
func NewOverlay(center models.LatLng, zoom int) *Overlay {
	return &Overlay{
		markers: make(map[string]Marker),
		center:  center,
		zoom:    zoom,
	}
}

func (o *Overlay) AddTileLayer(urlTemplate, attribution string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.tiles = urlTemplate
}

func (o *Overlay) AddMarker(m Marker) string {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.nextID++
	handle := "m" + strconv.Itoa(o.nextID)
	o.markers[handle] = m
	return handle
}

func (o *Overlay) RemoveMarker(handle string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.markers, handle)
}

func (o *Overlay) PanTo(pos models.LatLng, zoom int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.center = pos
	o.zoom = zoom
}

func (o *Overlay) OnClick(handler func(pos models.LatLng)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onClick = handler
}

func (o *Overlay) InvalidateSize() {}

func (o *Overlay) Destroy() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.markers = make(map[string]Marker)
	o.onClick = nil
}

// Click simulates a map click arriving from the frontend and runs the
// registered handler, if any.
func (o *Overlay) Click(pos models.LatLng) {
	o.mu.Lock()
	handler := o.onClick
	o.mu.Unlock()
	if handler != nil {
		handler(pos)
	}
}

// TileLayer returns the configured tile URL template.
func (o *Overlay) TileLayer() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.tiles
}

// View returns the current center and zoom.
func (o *Overlay) View() (models.LatLng, int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.center, o.zoom
}

// IssueMarkers returns the currently placed issue markers.
func (o *Overlay) IssueMarkers() []Marker {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Marker, 0, len(o.markers))
	for _, m := range o.markers {
		if m.Kind == KindIssue {
			out = append(out, m)
		}
	}
	return out
}

// AllMarkers returns every marker regardless of kind.
func (o *Overlay) AllMarkers() []Marker {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]Marker, 0, len(o.markers))
	for _, m := range o.markers {
		out = append(out, m)
	}
	return out
}
