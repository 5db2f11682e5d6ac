package placement

import (
	"errors"
	"testing"

	"github.com/teepress/mockup-tools/internal/detection"
)

func TestCompute_ReferenceScenario(t *testing.T) {
	// 200x200 template, region (50,50,100,100), 50x50 design,
	// padding 0.5, offset 0 -> scale min(2,2,1)*0.5 = 0.5 -> 25x25 at (87,50).
	region := &detection.Region{X: 50, Y: 50, Width: 100, Height: 100}
	p := Params{PaddingRatio: 0.5, VerticalOffsetPct: 0}

	got, err := Compute(50, 50, region, 200, 200, p)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	want := Placement{X: 87, Y: 50, Width: 25, Height: 25, Scaled: true}
	if got != want {
		t.Errorf("placement: got %+v, want %+v", got, want)
	}
}

func TestCompute_FallbackCentersUnscaled(t *testing.T) {
	// No region, 300x300 design on 200x200 template -> (-50,-50), no resize.
	got, err := Compute(300, 300, nil, 200, 200, Params{PaddingRatio: 0.5})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	want := Placement{X: -50, Y: -50, Width: 300, Height: 300, Scaled: false}
	if got != want {
		t.Errorf("placement: got %+v, want %+v", got, want)
	}
}

func TestCompute_FallbackOddDifference(t *testing.T) {
	// (200-301)//2 floors toward negative infinity: -51, not -50.
	got, err := Compute(301, 301, nil, 200, 200, Params{PaddingRatio: 1})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got.X != -51 || got.Y != -51 {
		t.Errorf("odd-difference centering: got (%d,%d), want (-51,-51)", got.X, got.Y)
	}
}

func TestCompute_NeverUpscales(t *testing.T) {
	region := &detection.Region{X: 0, Y: 0, Width: 1000, Height: 1000}

	tests := []struct {
		name    string
		dw, dh  int
		padding float64
	}{
		{"tiny design in huge region", 10, 10, 1.0},
		{"tall design", 20, 400, 1.0},
		{"padded", 50, 50, 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(tt.dw, tt.dh, region, 1000, 1000, Params{PaddingRatio: tt.padding})
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if got.Width > tt.dw || got.Height > tt.dh {
				t.Errorf("design upscaled: got %dx%d from %dx%d",
					got.Width, got.Height, tt.dw, tt.dh)
			}
		})
	}
}

func TestCompute_FitsRegionAfterPadding(t *testing.T) {
	region := &detection.Region{X: 30, Y: 40, Width: 90, Height: 60}

	got, err := Compute(500, 400, region, 600, 600, Params{PaddingRatio: 0.8})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if got.Width > region.Width || got.Height > region.Height {
		t.Errorf("scaled design %dx%d exceeds region %dx%d",
			got.Width, got.Height, region.Width, region.Height)
	}
	if got.X < region.X || got.X+got.Width > region.X+region.Width {
		t.Errorf("horizontal placement %d..%d outside region %d..%d",
			got.X, got.X+got.Width, region.X, region.X+region.Width)
	}
}

func TestCompute_VerticalOffset(t *testing.T) {
	region := &detection.Region{X: 0, Y: 100, Width: 200, Height: 150}

	tests := []struct {
		name  string
		pct   float64
		wantY int
	}{
		{"zero", 0, 100},
		{"positive", 10, 115},
		{"negative floors", -7, 100 - 11}, // floor(150 * -0.07) = floor(-10.5) = -11
		{"pushes below region", 200, 100 + 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(50, 50, region, 400, 400, Params{PaddingRatio: 1, VerticalOffsetPct: tt.pct})
			if err != nil {
				t.Fatalf("Compute failed: %v", err)
			}
			if got.Y != tt.wantY {
				t.Errorf("y: got %d, want %d", got.Y, tt.wantY)
			}
		})
	}
}

func TestCompute_ScaledDimensionsNeverReachZero(t *testing.T) {
	// A tiny region against a huge design floors the scaled size to zero;
	// the reported rectangle must match the 1px minimum the resizer produces.
	region := &detection.Region{X: 10, Y: 10, Width: 1, Height: 1}

	got, err := Compute(1000, 1000, region, 200, 200, Params{PaddingRatio: 0.45})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got.Width != 1 || got.Height != 1 {
		t.Errorf("scaled size: got %dx%d, want 1x1", got.Width, got.Height)
	}
	if got.X != 10 || got.Y != 10 {
		t.Errorf("position: got (%d,%d), want (10,10)", got.X, got.Y)
	}
	if !got.Scaled {
		t.Error("placement with a region must be marked scaled")
	}
}

func TestCompute_OnlyCollapsedAxisClamps(t *testing.T) {
	// Extreme aspect ratio: the height floors to zero and clamps to 1 while
	// the width keeps its computed value (scale is exactly 1/16 here).
	region := &detection.Region{X: 0, Y: 0, Width: 4, Height: 500}

	got, err := Compute(64, 8, region, 600, 600, Params{PaddingRatio: 1})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if got.Width != 4 {
		t.Errorf("width: got %d, want 4", got.Width)
	}
	if got.Height != 1 {
		t.Errorf("height: got %d, want 1", got.Height)
	}
}

func TestCompute_ZeroSizeDesign(t *testing.T) {
	region := &detection.Region{X: 0, Y: 0, Width: 100, Height: 100}

	for _, dims := range [][2]int{{0, 50}, {50, 0}, {0, 0}, {-1, 50}} {
		_, err := Compute(dims[0], dims[1], region, 200, 200, Params{PaddingRatio: 0.5})
		if !errors.Is(err, ErrZeroSizeDesign) {
			t.Errorf("design %dx%d: got err %v, want ErrZeroSizeDesign", dims[0], dims[1], err)
		}
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"White-Plain.png", Plain},
		{"Gray-Model.png", Model},
		{"gray-MODEL.jpg", Model},
		{"supermodel_black.png", Model},
		{"heather.png", Plain},
		{"", Plain},
	}

	for _, tt := range tests {
		if got := Classify(tt.name); got != tt.want {
			t.Errorf("Classify(%q): got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParamSet_SelectsByName(t *testing.T) {
	set := ParamSet{
		Plain: Params{PaddingRatio: 0.45, VerticalOffsetPct: -7},
		Model: Params{PaddingRatio: 0.35, VerticalOffsetPct: 3},
	}

	region := &detection.Region{X: 0, Y: 0, Width: 100, Height: 100}

	plain, err := Compute(50, 50, region, 200, 200, set.For("White-Plain.png"))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	model, err := Compute(50, 50, region, 200, 200, set.For("Gray-Model.png"))
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	if plain.Y == model.Y {
		t.Errorf("plain and model offsets must differ: both y=%d", plain.Y)
	}
	if plain.Y != -7 {
		t.Errorf("plain y: got %d, want -7 (floor(100*-0.07))", plain.Y)
	}
	if model.Y != 3 {
		t.Errorf("model y: got %d, want 3", model.Y)
	}
}

func TestKind_String(t *testing.T) {
	if Plain.String() != "plain" || Model.String() != "model" {
		t.Errorf("Kind strings: got %q/%q", Plain.String(), Model.String())
	}
}
