package swipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/swipecell/internal/model"
)

func thresholdStyle() *model.ExpansionStyle {
	return model.NewExpansionStyle(model.ExpansionTarget{Kind: model.TargetPercentage, Value: 1},
		[]model.ExpansionTrigger{{Kind: model.TriggerTouchThreshold, Value: 0.8}}, false,
		model.CompletionAnimation{Kind: model.CompletionBounce})
}

func TestShouldExpand(t *testing.T) {
	row := model.Rect{Width: rowWidth, Height: rowHeight}
	base := ExpansionInput{
		Translation:    100,
		Displacement:   100,
		RowFrame:       row,
		SurfaceBounds:  row,
		PreferredWidth: 74,
		Orientation:    model.OrientationLeft,
	}
	reference := model.Rect{X: 100, Width: 200, Height: rowHeight}

	tests := []struct {
		name     string
		style    *model.ExpansionStyle
		modify   func(in *ExpansionInput)
		expected bool
	}{
		{"no style", nil, nil, false},
		{"touch short of threshold", thresholdStyle(), func(in *ExpansionInput) { in.Location.X = 200 }, false},
		{"touch past threshold", thresholdStyle(), func(in *ExpansionInput) { in.Location.X = 270 }, true},
		{"right edge threshold", thresholdStyle(), func(in *ExpansionInput) {
			in.Orientation = model.OrientationRight
			in.Displacement = -100
			in.Location.X = 40
		}, true},
		{"translation under minimum overscroll", thresholdStyle(), func(in *ExpansionInput) {
			in.Translation = 15
			in.Location.X = 300
		}, false},
		{"strip not yet revealed", thresholdStyle(), func(in *ExpansionInput) {
			in.Displacement = 60
			in.Location.X = 300
		}, false},
		{"beyond target", thresholdStyle(), func(in *ExpansionInput) { in.Displacement = 321 }, true},
		{"reference frame past threshold", thresholdStyle(), func(in *ExpansionInput) {
			in.ReferenceFrame = &reference
			in.Location.X = 270
		}, true},
		{"reference frame short of threshold", thresholdStyle(), func(in *ExpansionInput) {
			in.ReferenceFrame = &reference
			in.Location.X = 250
		}, false},
		{"overscroll trigger", model.DestructiveExpansion(), func(in *ExpansionInput) { in.Displacement = 105 }, true},
		{"overscroll short", model.DestructiveExpansion(), func(in *ExpansionInput) { in.Displacement = 104 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			if tt.modify != nil {
				tt.modify(&in)
			}
			if got := ShouldExpand(tt.style, in); got != tt.expected {
				t.Errorf("ShouldExpand() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestTargetOffset(t *testing.T) {
	in := ExpansionInput{RowFrame: model.Rect{Width: rowWidth}, PreferredWidth: 148}
	assert.Equal(t, 148.0, TargetOffset(nil, in))
	assert.Equal(t, 290.0, TargetOffset(model.DestructiveExpansion(), in))
	assert.Equal(t, 168.0, TargetOffset(model.SelectionExpansion(), in))
}

func TestElasticTranslation(t *testing.T) {
	tests := []struct {
		name        string
		translation float64
		limit       float64
		ratio       float64
		expected    float64
	}{
		{"inside limit", 50, 74, ElasticScrollRatio, 210},
		{"at limit", -74, 74, ElasticScrollRatio, 86},
		{"past limit right", 100, 74, ElasticScrollRatio, 244.4},
		{"past limit left", -100, 74, ElasticScrollRatio, 75.6},
		{"zero limit", 50, 0, DefaultElasticRatio, 170},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := elasticTranslation(tt.translation, midX, midX, tt.limit, tt.ratio)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
