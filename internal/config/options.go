package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ytget/swipecell/internal/model"
)

var (
	// ErrUnknownPreset is returned for a preset name that is not offered
	ErrUnknownPreset = errors.New("config: unknown expansion preset")
	// ErrInvalidOption is returned for an option value out of its domain
	ErrInvalidOption = errors.New("config: invalid option")
)

// SwipeOptions holds the strip options of both orientations
type SwipeOptions struct {
	Left  model.Options
	Right model.Options
}

// For returns the options of orientation o
func (s SwipeOptions) For(o model.Orientation) model.Options {
	if o == model.OrientationLeft {
		return s.Left
	}
	return s.Right
}

// DefaultSwipeOptions uses the default presets of both sides
func DefaultSwipeOptions() SwipeOptions {
	left := model.DefaultOptions()
	left.ExpansionStyle = DefaultLeftPreset.Style()
	right := model.DefaultOptions()
	right.ExpansionStyle = DefaultRightPreset.Style()
	return SwipeOptions{Left: left, Right: right}
}

type optionsFile struct {
	Left  sideOptions `toml:"left"`
	Right sideOptions `toml:"right"`
}

type sideOptions struct {
	Preset                string   `toml:"preset"`
	MinimumButtonWidth    float64  `toml:"minimum_button_width"`
	MaximumButtonWidth    float64  `toml:"maximum_button_width"`
	ButtonPadding         *float64 `toml:"button_padding"`
	FillTiming            string   `toml:"fill_timing"`
	AutoFulfillment       string   `toml:"auto_fulfillment"`
	TargetPercentage      *float64 `toml:"target_percentage"`
	TargetEdgeInset       *float64 `toml:"target_edge_inset"`
	OverscrollTrigger     *float64 `toml:"overscroll_trigger"`
	TouchThresholdTrigger *float64 `toml:"touch_threshold_trigger"`
	Elasticity            *float64 `toml:"elasticity"`
}

// LoadOptions reads swipe options from a TOML file with [left] and [right]
// tables. A missing file yields the defaults.
func LoadOptions(path string) (SwipeOptions, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultSwipeOptions(), nil
	}
	if err != nil {
		return SwipeOptions{}, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(string(data))
}

// ParseOptions decodes swipe options from TOML text
func ParseOptions(data string) (SwipeOptions, error) {
	var f optionsFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return SwipeOptions{}, fmt.Errorf("decode options: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return SwipeOptions{}, fmt.Errorf("%w: unknown key %s", ErrInvalidOption, undecoded[0])
	}

	left, err := f.Left.build(DefaultLeftPreset)
	if err != nil {
		return SwipeOptions{}, fmt.Errorf("left: %w", err)
	}
	right, err := f.Right.build(DefaultRightPreset)
	if err != nil {
		return SwipeOptions{}, fmt.Errorf("right: %w", err)
	}
	return SwipeOptions{Left: left, Right: right}, nil
}

func (s sideOptions) build(fallback Preset) (model.Options, error) {
	opts := model.DefaultOptions()

	preset := fallback
	if s.Preset != "" {
		preset = Preset(s.Preset)
	}
	if !preset.Valid() {
		return opts, fmt.Errorf("%w: %q", ErrUnknownPreset, s.Preset)
	}

	if s.MinimumButtonWidth < 0 || s.MaximumButtonWidth < 0 {
		return opts, fmt.Errorf("%w: negative button width", ErrInvalidOption)
	}
	if s.MinimumButtonWidth > 0 {
		opts.MinimumButtonWidth = s.MinimumButtonWidth
	}
	opts.MaximumButtonWidth = s.MaximumButtonWidth
	if s.ButtonPadding != nil {
		opts.ButtonPadding = *s.ButtonPadding
	}

	style := preset.Style()
	if style == nil && (s.TargetPercentage != nil || s.TargetEdgeInset != nil) {
		style = model.NewExpansionStyle(model.ExpansionTarget{}, nil, false,
			model.CompletionAnimation{Kind: model.CompletionBounce})
	}
	if style != nil {
		if err := s.applyStyle(style); err != nil {
			return opts, err
		}
	}
	opts.ExpansionStyle = style
	return opts, nil
}

func (s sideOptions) applyStyle(style *model.ExpansionStyle) error {
	switch {
	case s.TargetPercentage != nil && s.TargetEdgeInset != nil:
		return fmt.Errorf("%w: target_percentage and target_edge_inset are exclusive", ErrInvalidOption)
	case s.TargetPercentage != nil:
		if *s.TargetPercentage <= 0 || *s.TargetPercentage > 1 {
			return fmt.Errorf("%w: target_percentage %v", ErrInvalidOption, *s.TargetPercentage)
		}
		style.Target = model.ExpansionTarget{Kind: model.TargetPercentage, Value: *s.TargetPercentage}
	case s.TargetEdgeInset != nil:
		style.Target = model.ExpansionTarget{Kind: model.TargetEdgeInset, Value: *s.TargetEdgeInset}
	}

	if s.OverscrollTrigger != nil || s.TouchThresholdTrigger != nil {
		style.AdditionalTriggers = nil
		if s.OverscrollTrigger != nil {
			style.AdditionalTriggers = append(style.AdditionalTriggers,
				model.ExpansionTrigger{Kind: model.TriggerOverscroll, Value: *s.OverscrollTrigger})
		}
		if s.TouchThresholdTrigger != nil {
			style.AdditionalTriggers = append(style.AdditionalTriggers,
				model.ExpansionTrigger{Kind: model.TriggerTouchThreshold, Value: *s.TouchThresholdTrigger})
		}
	}

	if s.Elasticity != nil {
		style.TargetOverscrollElasticity = *s.Elasticity
	}

	if s.FillTiming == "" && s.AutoFulfillment == "" {
		return nil
	}
	if !style.IsFill() {
		return fmt.Errorf("%w: fill settings on a non-fill preset", ErrInvalidOption)
	}
	switch timing := model.FillTiming(s.FillTiming); timing {
	case "":
	case model.FillBefore, model.FillWith, model.FillAfter:
		style.CompletionAnimation.Fill.Timing = timing
	default:
		return fmt.Errorf("%w: fill_timing %q", ErrInvalidOption, s.FillTiming)
	}
	switch s.AutoFulfillment {
	case "":
	case "manual":
		style.CompletionAnimation.Fill.AutoFulfillment = nil
	case string(model.FulfillmentDelete), string(model.FulfillmentReset):
		fulfillment := model.FulfillmentStyle(s.AutoFulfillment)
		style.CompletionAnimation.Fill.AutoFulfillment = &fulfillment
	default:
		return fmt.Errorf("%w: auto_fulfillment %q", ErrInvalidOption, s.AutoFulfillment)
	}
	return nil
}
