package wcag

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		ratio float64
		want  Level
	}{
		{21.0, LevelAAA},
		{7.0, LevelAAA},
		{6.99, LevelAANormal},
		{4.5, LevelAANormal},
		{4.49, LevelAALarge},
		{3.0, LevelAALarge},
		{2.99, LevelFail},
		{1.0, LevelFail},
	}

	for _, tt := range tests {
		if got := Classify(tt.ratio); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.ratio, got, tt.want)
		}
	}
}

func TestMeetsAANormal(t *testing.T) {
	tests := []struct {
		level Level
		want  bool
	}{
		{LevelAAA, true},
		{LevelAANormal, true},
		{LevelAALarge, false},
		{LevelFail, false},
	}

	for _, tt := range tests {
		if got := tt.level.MeetsAANormal(); got != tt.want {
			t.Errorf("%v.MeetsAANormal() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelAAA, "AAA (normal and large text)"},
		{LevelAANormal, "AAA (large text only), AA (normal text)"},
		{LevelAALarge, "AA (large text only) - fails for normal text"},
		{LevelFail, "FAILS WCAG requirements"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLevelCode(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelAAA, "aaa"},
		{LevelAANormal, "aa-normal"},
		{LevelAALarge, "aa-large"},
		{LevelFail, "fail"},
	}

	for _, tt := range tests {
		if got := tt.level.Code(); got != tt.want {
			t.Errorf("%d.Code() = %q, want %q", tt.level, got, tt.want)
		}
		text, err := tt.level.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText: %v", err)
		}
		if string(text) != tt.want {
			t.Errorf("%d.MarshalText() = %q, want %q", tt.level, text, tt.want)
		}
	}
}
