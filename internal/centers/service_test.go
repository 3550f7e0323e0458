package centers

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"cool-finder/internal/observability"
	"cool-finder/internal/registry"
	"cool-finder/internal/types"

	"github.com/jonboulle/clockwork"
)

// fakeSource serves a canned ranked sequence regardless of the query origin
type fakeSource struct {
	ranked []registry.RankedCenter
}

func (f *fakeSource) Nearest(_ types.Coords, _ float64) []registry.RankedCenter {
	// Callers may truncate the returned slice, so hand out a copy.
	out := make([]registry.RankedCenter, len(f.ranked))
	copy(out, f.ranked)
	return out
}

func (f *fakeSource) All() []types.CoolingCenter {
	centers := make([]types.CoolingCenter, len(f.ranked))
	for i, r := range f.ranked {
		centers[i] = r.Center
	}
	return centers
}

func (f *fakeSource) GetByID(id string) (*types.CoolingCenter, bool) {
	for i := range f.ranked {
		if f.ranked[i].Center.ID == id {
			return &f.ranked[i].Center, true
		}
	}
	return nil, false
}

// fixedTimezone resolves every coordinate to the same location
type fixedTimezone struct {
	loc *time.Location
	err error
}

func (f *fixedTimezone) Resolve(_, _ float64) (*time.Location, error) {
	return f.loc, f.err
}

func rankedCenter(id string, centerType types.CenterType, distanceMeters float64, hourSpecs ...string) registry.RankedCenter {
	hours, err := types.DailyHours(hourSpecs...)
	if err != nil {
		panic(err)
	}
	return registry.RankedCenter{
		Center: types.CoolingCenter{
			ID:          id,
			Name:        id,
			Type:        centerType,
			Coordinates: types.NewCoords(47.6, -122.3),
			Hours:       hours,
			Features:    []types.Feature{types.FeatureAirConditioning},
		},
		Distance: types.NewDistanceFromMeters(distanceMeters),
	}
}

func newTestService(source CenterSource, loc *time.Location, now time.Time) Service {
	return NewServiceWithDeps(
		source,
		&fixedTimezone{loc: loc},
		clockwork.NewFakeClockAt(now),
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func defaultRanked() []registry.RankedCenter {
	return []registry.RankedCenter{
		rankedCenter("library-near", types.CenterTypeLibrary, 100, "10:00AM-8:00PM"),
		rankedCenter("cc-mid", types.CenterTypeCommunityCenter, 500, "9:00AM-9:00PM"),
		rankedCenter("hall-far", types.CenterTypeEventHall, 2500, "7:00AM-9:00PM"),
	}
}

func ids(ranked []registry.RankedCenter) []string {
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.Center.ID
	}
	return out
}

func equalIDs(a []string, b ...string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestService_FindNearest_Validation(t *testing.T) {
	svc := newTestService(&fakeSource{}, time.UTC, time.Now())

	tests := []struct {
		name    string
		query   Query
		wantErr error
	}{
		{
			name:    "latitude out of range",
			query:   Query{Origin: types.NewCoords(91, 0)},
			wantErr: types.ErrInvalidLatitude,
		},
		{
			name:    "longitude out of range",
			query:   Query{Origin: types.NewCoords(0, 181)},
			wantErr: types.ErrInvalidLongitude,
		},
		{
			name:    "negative radius",
			query:   Query{Origin: types.NewCoords(47.6, -122.3), RadiusMeters: -1},
			wantErr: ErrInvalidRadius,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.FindNearest(tt.query)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("FindNearest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestService_FindNearest_NoFiltersIsIdentity(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())

	got, err := svc.FindNearest(Query{Origin: types.NewCoords(47.6, -122.3)})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if !equalIDs(ids(got), "library-near", "cc-mid", "hall-far") {
		t.Errorf("FindNearest() order = %v, want ranked input unchanged", ids(got))
	}
}

func TestService_FindNearest_TypeFilter(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())
	origin := types.NewCoords(47.6, -122.3)

	t.Run("single type", func(t *testing.T) {
		got, err := svc.FindNearest(Query{
			Origin: origin,
			Types:  []types.CenterType{types.CenterTypeLibrary},
		})
		if err != nil {
			t.Fatalf("FindNearest() error = %v", err)
		}
		if !equalIDs(ids(got), "library-near") {
			t.Errorf("FindNearest() = %v, want [library-near]", ids(got))
		}
	})

	t.Run("multi-select is OR across types", func(t *testing.T) {
		got, err := svc.FindNearest(Query{
			Origin: origin,
			Types:  []types.CenterType{types.CenterTypeLibrary, types.CenterTypeEventHall},
		})
		if err != nil {
			t.Fatalf("FindNearest() error = %v", err)
		}
		if !equalIDs(ids(got), "library-near", "hall-far") {
			t.Errorf("FindNearest() = %v, want [library-near, hall-far]", ids(got))
		}
	})
}

func TestService_FindNearest_OpenNowBoundaries(t *testing.T) {
	// Single center open 10:00AM-8:00PM in UTC for exact boundary control.
	source := &fakeSource{ranked: []registry.RankedCenter{
		rankedCenter("lib", types.CenterTypeLibrary, 100, "10:00AM-8:00PM"),
	}}

	day := time.Date(2026, 8, 24, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "opening minute included", now: day.Add(10 * time.Hour), want: 1},
		{name: "minute before opening excluded", now: day.Add(9*time.Hour + 59*time.Minute), want: 0},
		{name: "closing minute excluded", now: day.Add(20 * time.Hour), want: 0},
		{name: "minute before closing included", now: day.Add(19*time.Hour + 59*time.Minute), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(source, time.UTC, tt.now)
			got, err := svc.FindNearest(Query{
				Origin:  types.NewCoords(47.6, -122.3),
				OpenNow: true,
			})
			if err != nil {
				t.Fatalf("FindNearest() error = %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("FindNearest() returned %d centers, want %d", len(got), tt.want)
			}
		})
	}
}

func TestService_FindNearest_OpenNowUsesCenterTimezone(t *testing.T) {
	seattle, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}

	source := &fakeSource{ranked: []registry.RankedCenter{
		rankedCenter("cc", types.CenterTypeCommunityCenter, 100, "9:00AM-9:00PM"),
	}}

	// 2026-08-24 05:00 UTC is 22:00 the previous evening in Seattle: closed
	// locally even though the UTC clock reads early morning.
	now := time.Date(2026, 8, 24, 5, 0, 0, 0, time.UTC)
	svc := newTestService(source, seattle, now)

	got, err := svc.FindNearest(Query{
		Origin:  types.NewCoords(47.6, -122.3),
		OpenNow: true,
	})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("FindNearest() returned %d centers, want 0 (closed in local time)", len(got))
	}

	// 19:00 UTC the same day is noon in Seattle: open.
	svc = newTestService(source, seattle, now.Add(14*time.Hour))
	got, err = svc.FindNearest(Query{
		Origin:  types.NewCoords(47.6, -122.3),
		OpenNow: true,
	})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("FindNearest() returned %d centers, want 1 (open in local time)", len(got))
	}
}

func TestService_FindNearest_ExplicitReferenceTime(t *testing.T) {
	source := &fakeSource{ranked: []registry.RankedCenter{
		rankedCenter("lib", types.CenterTypeLibrary, 100, "10:00AM-8:00PM"),
	}}

	// Clock says closed; the explicit reference instant says open.
	clockNow := time.Date(2026, 8, 24, 23, 0, 0, 0, time.UTC)
	svc := newTestService(source, time.UTC, clockNow)

	got, err := svc.FindNearest(Query{
		Origin:  types.NewCoords(47.6, -122.3),
		OpenNow: true,
		At:      time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("FindNearest() returned %d centers, want 1 at explicit instant", len(got))
	}
}

func TestService_FindNearest_Limit(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())

	got, err := svc.FindNearest(Query{
		Origin: types.NewCoords(47.6, -122.3),
		Limit:  2,
	})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if !equalIDs(ids(got), "library-near", "cc-mid") {
		t.Errorf("FindNearest() = %v, want the two nearest", ids(got))
	}
}

func TestService_FindNearest_TimezoneFailureFallsBack(t *testing.T) {
	source := &fakeSource{ranked: []registry.RankedCenter{
		rankedCenter("lib", types.CenterTypeLibrary, 100, "10:00AM-8:00PM"),
	}}

	svc := NewServiceWithDeps(
		source,
		&fixedTimezone{err: errors.New("no polygon")},
		clockwork.NewFakeClockAt(time.Date(2026, 8, 24, 12, 0, 0, 0, time.UTC)),
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	got, err := svc.FindNearest(Query{
		Origin:  types.NewCoords(47.6, -122.3),
		OpenNow: true,
	})
	if err != nil {
		t.Fatalf("FindNearest() error = %v", err)
	}
	if len(got) != 1 {
		t.Errorf("FindNearest() returned %d centers, want 1 via unconverted fallback", len(got))
	}
}

func TestService_List(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())

	t.Run("no filters returns everything", func(t *testing.T) {
		got := svc.List(nil, nil)
		if len(got) != 3 {
			t.Errorf("List() returned %d centers, want 3", len(got))
		}
	})

	t.Run("type filter", func(t *testing.T) {
		got := svc.List([]types.CenterType{types.CenterTypeCommunityCenter}, nil)
		if len(got) != 1 || got[0].ID != "cc-mid" {
			t.Errorf("List() = %v, want [cc-mid]", got)
		}
	})

	t.Run("feature filter", func(t *testing.T) {
		got := svc.List(nil, []types.Feature{types.FeatureFoodCourt})
		if len(got) != 0 {
			t.Errorf("List() returned %d centers, want 0", len(got))
		}
	})
}

func TestService_GetByID(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())

	got, err := svc.GetByID("cc-mid")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.ID != "cc-mid" {
		t.Errorf("GetByID() = %q, want cc-mid", got.ID)
	}

	if _, err := svc.GetByID("nope"); !errors.Is(err, ErrCenterNotFound) {
		t.Errorf("GetByID() error = %v, want ErrCenterNotFound", err)
	}
}

func TestService_GeoJSON(t *testing.T) {
	svc := newTestService(&fakeSource{ranked: defaultRanked()}, time.UTC, time.Now())

	fc := svc.GeoJSON()
	if len(fc.Features) != 3 {
		t.Fatalf("GeoJSON() has %d features, want 3", len(fc.Features))
	}

	f := fc.Features[0]
	if f.Properties["name"] != "library-near" {
		t.Errorf("feature name = %v, want library-near", f.Properties["name"])
	}
	if f.Properties["type"] != "library" {
		t.Errorf("feature type = %v, want library", f.Properties["type"])
	}
}
