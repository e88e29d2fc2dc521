package mapview

import (
	"testing"

	"civicconnect-be/models"
)

func geoIssue(id string, status models.IssueStatus) models.Issue {
	return models.Issue{
		ID:         id,
		OwnerLabel: "Asha",
		Title:      "Issue " + id,
		Status:     status,
		Location:   &models.LatLng{Lat: 28.7, Lng: 77.1},
	}
}

func markerIDs(markers []Marker) map[string]bool {
	ids := make(map[string]bool, len(markers))
	for _, m := range markers {
		ids[m.IssueID] = true
	}
	return ids
}

func TestReconcileCompleteness(t *testing.T) {
	overlay := NewOverlay(models.LatLng{Lat: 28.7041, Lng: 77.1025}, 13)
	rec := NewReconciler()
	rec.Bind(overlay)

	rec.Reconcile([]models.Issue{
		geoIssue("issue-1", models.Reported),
		geoIssue("issue-2", models.InProgress),
	})

	// A second pass is a full replace, not an accumulation.
	noLocation := models.Issue{ID: "issue-4", Status: models.Reported}
	rec.Reconcile([]models.Issue{
		geoIssue("issue-2", models.Resolved),
		geoIssue("issue-3", models.Reported),
		noLocation,
	})

	got := markerIDs(overlay.IssueMarkers())
	want := map[string]bool{"issue-2": true, "issue-3": true}
	if len(got) != len(want) {
		t.Fatalf("issue markers = %v, want %v", got, want)
	}
	for id := range want {
		if !got[id] {
			t.Fatalf("missing marker for %q, have %v", id, got)
		}
	}
}

func TestReconcileStatusColors(t *testing.T) {
	overlay := NewOverlay(models.LatLng{}, 13)
	rec := NewReconciler()
	rec.Bind(overlay)

	rec.Reconcile([]models.Issue{
		geoIssue("issue-1", models.Reported),
		geoIssue("issue-2", models.InProgress),
		geoIssue("issue-3", models.Resolved),
	})

	want := map[string]string{
		"issue-1": "#F59E0B",
		"issue-2": "#EF4444",
		"issue-3": "#10B981",
	}
	for _, m := range overlay.IssueMarkers() {
		if m.Color != want[m.IssueID] {
			t.Errorf("marker %q color = %q, want %q", m.IssueID, m.Color, want[m.IssueID])
		}
	}
}

func TestStatusColorFallback(t *testing.T) {
	if got := StatusColor(models.IssueStatus("weird")); got != "#F59E0B" {
		t.Fatalf("fallback color = %q, want amber", got)
	}
}

func TestReconcileLeavesOtherMarkersAlone(t *testing.T) {
	overlay := NewOverlay(models.LatLng{}, 13)
	overlay.AddMarker(Marker{Kind: KindLocation, Position: models.LatLng{Lat: 28.6, Lng: 77.2}})
	overlay.AddMarker(Marker{Kind: KindClick, Position: models.LatLng{Lat: 28.5, Lng: 77.3}})

	rec := NewReconciler()
	rec.Bind(overlay)
	rec.Reconcile([]models.Issue{geoIssue("issue-1", models.Reported)})
	rec.Reconcile(nil)

	kinds := map[MarkerKind]int{}
	for _, m := range overlay.AllMarkers() {
		kinds[m.Kind]++
	}
	if kinds[KindLocation] != 1 || kinds[KindClick] != 1 {
		t.Fatalf("transient markers disturbed: %v", kinds)
	}
	if kinds[KindIssue] != 0 {
		t.Fatalf("issue markers remain after empty reconcile: %v", kinds)
	}
}

func TestReconcileUnboundIsNoop(t *testing.T) {
	rec := NewReconciler()
	// Must tolerate being invoked before the widget exists.
	rec.Reconcile([]models.Issue{geoIssue("issue-1", models.Reported)})
	rec.Reconcile(nil)
}

func TestReconcileAfterLateBind(t *testing.T) {
	rec := NewReconciler()
	rec.Reconcile([]models.Issue{geoIssue("issue-1", models.Reported)})

	overlay := NewOverlay(models.LatLng{}, 13)
	rec.Bind(overlay)
	rec.Reconcile([]models.Issue{geoIssue("issue-2", models.Reported)})

	got := markerIDs(overlay.IssueMarkers())
	if len(got) != 1 || !got["issue-2"] {
		t.Fatalf("markers after late bind = %v, want issue-2 only", got)
	}
}

func TestOverlayClickAndPan(t *testing.T) {
	overlay := NewOverlay(models.LatLng{Lat: 28.7041, Lng: 77.1025}, 13)

	var clicked models.LatLng
	overlay.OnClick(func(pos models.LatLng) { clicked = pos })
	overlay.Click(models.LatLng{Lat: 28.61, Lng: 77.23})
	if clicked.Lat != 28.61 || clicked.Lng != 77.23 {
		t.Fatalf("click handler got %+v", clicked)
	}

	overlay.PanTo(models.LatLng{Lat: 28.5355, Lng: 77.391}, 16)
	center, zoom := overlay.View()
	if center.Lat != 28.5355 || zoom != 16 {
		t.Fatalf("view = %+v zoom %d after pan", center, zoom)
	}

	overlay.Destroy()
	if len(overlay.AllMarkers()) != 0 {
		t.Fatal("markers survive Destroy")
	}
}
