package model

import "testing"

func TestStreamRecord_EffectiveSize(t *testing.T) {
	tests := []struct {
		name     string
		exact    int64
		approx   int64
		expected int64
	}{
		{"exact wins", 1000, 2000, 1000},
		{"approx fallback", 0, 5000000, 5000000},
		{"both unknown", 0, 0, 0},
		{"exact only", 42, 0, 42},
	}

	for _, test := range tests {
		r := StreamRecord{Filesize: test.exact, FilesizeApprox: test.approx}
		if got := r.EffectiveSize(); got != test.expected {
			t.Errorf("%s: EffectiveSize() = %d, expected %d", test.name, got, test.expected)
		}
	}
}

func TestStreamRecord_HasSize(t *testing.T) {
	r := StreamRecord{}
	if r.HasSize() {
		t.Error("record without sizes should not report HasSize")
	}

	r.FilesizeApprox = 1
	if !r.HasSize() {
		t.Error("record with approximate size should report HasSize")
	}
}

func TestStreamRecord_DisplayResolution(t *testing.T) {
	tests := []struct {
		resolution string
		height     int
		expected   string
	}{
		{"1920x1080", 1080, "1920x1080"},
		{"", 720, "720p"},
		{"", 0, "unknown"},
	}

	for _, test := range tests {
		r := StreamRecord{Resolution: test.resolution, Height: test.height}
		if got := r.DisplayResolution(); got != test.expected {
			t.Errorf("DisplayResolution() with res=%q height=%d = %q, expected %q",
				test.resolution, test.height, got, test.expected)
		}
	}
}

func TestFormatSize(t *testing.T) {
	if got := FormatSize(0); got != "N/A" {
		t.Errorf("FormatSize(0) = %q, expected N/A", got)
	}
	if got := FormatSize(-1); got != "N/A" {
		t.Errorf("FormatSize(-1) = %q, expected N/A", got)
	}
	if got := FormatSize(5000000); got == "N/A" || got == "" {
		t.Errorf("FormatSize(5000000) = %q, expected a human-readable size", got)
	}
}
