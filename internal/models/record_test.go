package models

import "testing"

func TestParseIntentBucket(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  IntentBucket
		ok    bool
	}{
		{"plain hot", "Hot", BucketHot, true},
		{"plain warm", "warm", BucketWarm, true},
		{"plain cold", "COLD", BucketCold, true},
		{"glyph hot", "🔥 Hot", BucketHot, true},
		{"glyph warm", "🟡 Warm", BucketWarm, true},
		{"glyph cold", "❄️ Cold", BucketCold, true},
		{"unknown", "tepid", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseIntentBucket(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseIntentBucket(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestIntentBucketGlyph(t *testing.T) {
	if got := BucketHot.Glyph(); got != "🔥 Hot" {
		t.Errorf("BucketHot.Glyph() = %q", got)
	}
	if got := BucketWarm.Glyph(); got != "🟡 Warm" {
		t.Errorf("BucketWarm.Glyph() = %q", got)
	}
	if got := BucketCold.Glyph(); got != "❄️ Cold" {
		t.Errorf("BucketCold.Glyph() = %q", got)
	}
}

func TestParseRegion(t *testing.T) {
	if r, ok := ParseRegion("ca"); !ok || r != RegionCA {
		t.Errorf("ParseRegion(ca) = (%q, %v)", r, ok)
	}
	if _, ok := ParseRegion("ZZ"); ok {
		t.Error("ParseRegion(ZZ) should fail")
	}
	if _, ok := ParseRegion(""); ok {
		t.Error("ParseRegion of empty string should fail")
	}
}

func TestParseViewMode(t *testing.T) {
	for _, v := range []string{"founder", "Institutional", "ADVANCED"} {
		if _, ok := ParseViewMode(v); !ok {
			t.Errorf("ParseViewMode(%q) should succeed", v)
		}
	}
	if _, ok := ParseViewMode("overview"); ok {
		t.Error("ParseViewMode(overview) should fail")
	}
}

func TestFilterStateMembership(t *testing.T) {
	fs := FilterState{Sectors: []string{"AI"}, Buckets: []IntentBucket{BucketHot}}

	if !fs.HasSector("AI") || fs.HasSector("Fintech") {
		t.Error("sector membership broken")
	}
	if !fs.HasBucket(BucketHot) || fs.HasBucket(BucketCold) {
		t.Error("bucket membership broken")
	}

	// Empty sets admit everything.
	open := FilterState{}
	if !open.HasSector("anything") || !open.HasBucket(BucketCold) {
		t.Error("empty filter sets should admit all values")
	}
}

func TestDefaultFilterState(t *testing.T) {
	fs := DefaultFilterState(0.45)

	if fs.MinScore != 0.45 {
		t.Errorf("MinScore = %v", fs.MinScore)
	}
	if !fs.HasBucket(BucketHot) || !fs.HasBucket(BucketWarm) || fs.HasBucket(BucketCold) {
		t.Error("default should preselect Hot and Warm only")
	}
	if !fs.HasSector("AI") {
		t.Error("default should admit every sector")
	}
}

func TestDatasetSectors(t *testing.T) {
	ds := &Dataset{Records: []Record{
		{Sector: "AI"},
		{Sector: "Fintech"},
		{Sector: "AI"},
		{Sector: ""},
	}}

	got := ds.Sectors()
	if len(got) != 2 || got[0] != "AI" || got[1] != "Fintech" {
		t.Errorf("Sectors() = %v", got)
	}
}
