package units

import "testing"

func TestHumanSize(t *testing.T) {
	tests := []struct {
		name      string
		bp        int
		precision int
		want      string
	}{
		{"scale bar kb", 50000, 0, "50Kb"},
		{"scale bar mb", 2000000, 0, "2Mb"},
		{"small stays bp", 850, 0, "850bp"},
		{"mb with decimals", 6250000, 2, "6.25Mb"},
		{"gb", 3000000000, 0, "3Gb"},
		{"zero", 0, 0, "0bp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HumanSize(tt.bp, tt.precision); got != tt.want {
				t.Errorf("HumanSize(%d, %d) = %q, want %q", tt.bp, tt.precision, got, tt.want)
			}
		})
	}
}

func TestBestUnit(t *testing.T) {
	tests := []struct {
		bp   int
		want Unit
	}{
		{999, Bp},
		{1000, Kb},
		{999999, Kb},
		{1000000, Mb},
		{1000000000, Gb},
		{-2000000, Mb},
	}

	for _, tt := range tests {
		if got := BestUnit(tt.bp); got != tt.want {
			t.Errorf("BestUnit(%d) = %v, want %v", tt.bp, got, tt.want)
		}
	}
}

func TestRangeLabel(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		want       string
	}{
		{"both mb", 6250000, 7500000, "6.25-7.50Mb"},
		{"reverse window keeps order", 7500000, 6250000, "7.50-6.25Mb"},
		{"kb window", 120000, 480000, "120.00-480.00Kb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RangeLabel(tt.start, tt.end); got != tt.want {
				t.Errorf("RangeLabel(%d, %d) = %q, want %q", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
