package mapview

import (
	"fmt"
	"sync"

	"civicconnect-be/models"
)

// Reconciler projects a filtered issue list onto the map widget. Each
// pass is a full replace of the issue markers it previously placed, not
// an incremental diff: after Reconcile the widget carries exactly one
// marker per geolocated issue in the display list. Markers of other kinds
// are never touched.
//
// The widget binds late: reconciling before Bind, or after the widget is
// gone, is a no-op rather than an error.
type Reconciler struct {
	mu      sync.Mutex
	widget  Widget
	handles []string
}

// NewReconciler returns an unbound reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// Bind attaches the widget the reconciler paints onto. Passing nil
// detaches it.
func (r *Reconciler) Bind(w Widget) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.widget = w
	r.handles = nil
}

// Reconcile replaces all issue markers with one per geolocated issue in
// the display list, colored by status.
func (r *Reconciler) Reconcile(display []models.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.widget == nil {
		return
	}

	for _, handle := range r.handles {
		r.widget.RemoveMarker(handle)
	}
	r.handles = r.handles[:0]

	for _, issue := range display {
		if issue.Location == nil {
			continue
		}
		handle := r.widget.AddMarker(Marker{
			IssueID:  issue.ID,
			Kind:     KindIssue,
			Position: *issue.Location,
			Color:    StatusColor(issue.Status),
			Label:    fmt.Sprintf("%s\n%s\n%s", issue.Title, issue.Description, issue.OwnerLabel),
		})
		r.handles = append(r.handles, handle)
	}
}
