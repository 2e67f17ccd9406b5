package swipe

import (
	"log/slog"
	"math"
	"time"

	"github.com/ytget/swipecell/internal/gesture"
	"github.com/ytget/swipecell/internal/model"
)

// Coordinator drives the state machine of a single row. It only runs on the
// row's queue.
type Coordinator struct {
	row      *Row
	host     HostElement
	surface  Surface
	registry *Registry
	animator Animator
	present  PresentationFactory
	haptics  Haptics
	logger   *slog.Logger

	originalCenter float64
	scrollRatio    float64

	transition Transition
	generation uint64
	deleting   bool
	// filling is set from a fill perform until its action is fulfilled
	filling bool
}

func (c *Coordinator) ready() bool {
	return c.host != nil && c.surface != nil
}

// committed reports whether the row runs a fill or delete that must not be interrupted
func (c *Coordinator) committed() bool {
	return c.deleting || c.filling
}

func (c *Coordinator) shouldBeginPan(p Pan) bool {
	return gesture.IsHorizontal(p.Translation())
}

func (c *Coordinator) handlePan(p Pan) {
	if !c.ready() {
		return
	}
	if c.committed() {
		c.logger.Debug("pan ignored", "reason", "row is completing an action")
		return
	}

	switch p.Phase() {
	case gesture.PhaseBegan:
		c.panBegan(p)
	case gesture.PhaseChanged:
		c.panChanged(p)
	case gesture.PhaseEnded, gesture.PhaseCancelled, gesture.PhaseFailed:
		c.panEnded(p)
	}
}

func (c *Coordinator) panBegan(p Pan) {
	if other := c.registry.otherInStates(c.row, model.StateDragging); other != nil {
		c.logger.Debug("pan rejected", "reason", "another row is dragging", "other", other.id.String())
		return
	}
	if other := c.registry.otherCommitted(c.row); other != nil {
		c.logger.Debug("pan rejected", "reason", "another row is completing an action", "other", other.id.String())
		return
	}

	orientation := model.OrientationForVelocity(p.Velocity().X)
	if !c.surface.CanBeginEditing(c.row, orientation) {
		c.logger.Debug("pan rejected", "reason", "editing not allowed", "orientation", orientation.String())
		return
	}

	c.row.panning = true
	c.stopTransition()
	c.originalCenter = c.host.CenterX()

	state := c.row.state
	if state != model.StateCenter && state != model.StateAnimatingToCenter {
		return
	}
	if c.showActions(orientation) {
		return
	}
	// A stopped collapse must not leave the row half open
	if c.row.actions != nil {
		c.moveTo(c.targetCenter(false))
		c.reset()
	}
}

func (c *Coordinator) panChanged(p Pan) {
	strip := c.row.actions
	if strip == nil || !c.row.state.IsActive() || !c.row.panning {
		return
	}
	if c.row.state == model.StateAnimatingToCenter {
		if other := c.registry.otherInStates(c.row, model.StateDragging, model.StateLeft, model.StateRight); other != nil {
			c.logger.Debug("pan ignored", "reason", "another row is active", "other", other.id.String())
			return
		}
	}

	translation := p.Translation().X
	scale := strip.Orientation().Scale()
	midX := c.host.Bounds().MidX()
	c.scrollRatio = 1

	// Dragging past rest away from the strip
	if (translation+c.originalCenter-midX)*scale > 0 {
		c.moveTo(elasticTranslation(translation, c.originalCenter, midX, 0, DefaultElasticRatio))
		c.scrollRatio = ElasticScrollRatio
		return
	}

	style := strip.Options().ExpansionStyle
	if style == nil {
		c.moveTo(elasticTranslation(translation, c.originalCenter, midX, strip.PreferredWidth(), ElasticScrollRatio))
		if math.Abs(translation+c.originalCenter-midX) > strip.PreferredWidth() {
			c.scrollRatio = ElasticScrollRatio
		}
		return
	}

	in := c.expansionInput(p, strip)
	expanded := ShouldExpand(style, in)
	targetOffset := TargetOffset(style, in)
	currentOffset := math.Abs(translation + c.originalCenter - midX)

	if expanded && !strip.Expanded() && targetOffset > currentOffset {
		centerForEdge := midX - targetOffset*scale
		c.moveTo(centerForEdge)
		p.SetTranslation(model.Point{X: centerForEdge - c.originalCenter, Y: p.Translation().Y})
	} else {
		c.moveTo(elasticTranslation(translation, c.originalCenter, midX, targetOffset, style.TargetOverscrollElasticity))
	}
	c.setExpanded(strip, expanded, true)
}

func (c *Coordinator) panEnded(p Pan) {
	wasPanning := c.row.panning
	c.row.panning = false

	strip := c.row.actions
	if strip == nil || !wasPanning {
		return
	}
	if !c.row.state.IsActive() && c.host.CenterX() == c.host.Bounds().MidX() {
		return
	}

	velocity := p.Velocity().X
	c.setState(c.targetState(velocity))

	if strip.Expanded() {
		if action := strip.ExpandableAction(); action != nil {
			c.perform(action)
			return
		}
	}

	active := c.row.state.IsActive()
	target := c.targetCenter(active)
	initial := normalizedVelocity(velocity*c.scrollRatio, target-c.host.CenterX())

	c.animate(DefaultSettleDuration, target, initial, func() {
		if c.row.state == model.StateCenter {
			c.reset()
		}
	})

	if !active {
		c.surface.DidEndEditing(c.row, strip.Orientation())
	}
}

func (c *Coordinator) expansionInput(p Pan, strip Presentation) ExpansionInput {
	in := ExpansionInput{
		Translation:    p.Translation().X,
		Displacement:   c.displacement(),
		Location:       p.Location(),
		RowFrame:       c.host.Frame(),
		SurfaceBounds:  c.surface.Bounds(),
		PreferredWidth: strip.PreferredWidth(),
		Orientation:    strip.Orientation(),
	}
	if in.RowFrame.Width <= 0 {
		in.RowFrame.Width = c.host.Bounds().Width
	}
	if container, ok := c.host.(ContainerHost); ok {
		frame := container.ContainerFrame()
		in.ReferenceFrame = &frame
	}
	return in
}

// showActions builds the strip for orientation. It reports false when the
// surface has nothing to show.
func (c *Coordinator) showActions(orientation model.Orientation) bool {
	actions := c.surface.EditActions(c.row, orientation)
	if len(actions) == 0 {
		c.logger.Debug("no actions", "orientation", orientation.String())
		return false
	}

	c.configure(actions, orientation)
	if c.row.actions == nil {
		return false
	}

	c.registry.HideAllExcept(c.row)
	c.surface.WillBeginEditing(c.row, orientation)
	return true
}

func (c *Coordinator) configure(actions []*model.Action, orientation model.Orientation) {
	options := c.surface.EditActionsOptions(c.row, orientation)

	if c.row.actions != nil {
		c.row.actions.Remove()
		c.row.actions = nil
	}
	if c.present == nil {
		return
	}

	var insets model.Insets
	if visible, ok := c.surface.VisibleRect(); ok {
		insets = c.host.Frame().VerticalInsets(visible)
	}

	strip := c.present(StripConfig{
		Row:           c.row,
		Actions:       actions,
		Options:       options,
		Orientation:   orientation,
		MaxSize:       c.host.Bounds().Size(),
		ContentInsets: insets,
	})
	if strip == nil {
		return
	}
	c.row.actions = strip
	c.setState(model.StateDragging)
}

func (c *Coordinator) perform(action *model.Action) {
	strip := c.row.actions
	if strip == nil || action == nil || !c.ready() || c.committed() {
		return
	}

	style := strip.Options().ExpansionStyle
	if style != nil && action == strip.ExpandableAction() {
		c.setExpanded(strip, true, false)
		if style.IsFill() {
			c.performFill(action, style.CompletionAnimation.Fill)
			return
		}
		c.invoke(action, true)
		return
	}
	c.invoke(action, action.HidesWhenSelected)
}

func (c *Coordinator) invoke(action *model.Action, hide bool) {
	action.Invoke(c.row.index)
	if hide {
		c.hide(true, nil)
	}
}

func (c *Coordinator) performFill(action *model.Action, fill model.FillOptions) {
	strip := c.row.actions
	bounds := c.host.Bounds()
	orientation := strip.Orientation()
	beyondEdge := bounds.MidX() - (bounds.Width+strip.MinimumButtonWidth())*orientation.Scale()
	index := c.row.index

	timing := fill.Timing
	if timing == "" {
		timing = model.FillWith
	}

	c.filling = true
	action.SetCompletionHandler(func(style model.FulfillmentStyle) {
		c.row.queue.Post(func() {
			c.fulfill(style, orientation, index, beyondEdge, timing)
		})
	})

	invoke := func() {
		action.Invoke(index)
		if fill.AutoFulfillment != nil {
			action.Fulfill(*fill.AutoFulfillment)
		}
	}

	if timing == model.FillBefore {
		invoke()
	}
	c.animate(FillDuration, beyondEdge, 0, func() {
		if timing == model.FillAfter {
			invoke()
		}
	})
	if timing == model.FillWith {
		invoke()
	}
}

func (c *Coordinator) fulfill(style model.FulfillmentStyle, orientation model.Orientation, index int, beyondEdge float64, timing model.FillTiming) {
	c.filling = false
	c.surface.DidEndEditing(c.row, orientation)

	switch style {
	case model.FulfillmentDelete:
		strip := c.row.actions
		var mask Mask
		if strip != nil {
			mask = strip.CreateDeletionMask()
		}
		c.host.SetMask(mask)
		c.deleting = true

		c.surface.DidDeleteRow(c.row, index)

		from := c.host.CenterX()
		var fromHeight float64
		if mask != nil {
			fromHeight = mask.Height()
		}
		fade := timing == model.FillAfter

		c.run(AnimationSpec{Curve: CurveEaseInOut, Duration: FillDuration}, func(progress float64) {
			c.moveTo(lerp(from, beyondEdge, progress))
			if mask != nil {
				mask.SetHeight(lerp(fromHeight, 0, progress))
			}
			if s := c.row.actions; fade && s != nil {
				s.SetAlpha(1 - progress)
			}
		}, func() {
			c.host.SetMask(nil)
			c.moveTo(c.targetCenter(false))
			c.reset()
		})
	case model.FulfillmentReset:
		c.hideSwipe(true, nil, false)
	}
}

func (c *Coordinator) hide(animated bool, completion func()) {
	c.hideSwipe(animated, completion, true)
}

func (c *Coordinator) hideSwipe(animated bool, completion func(), notify bool) {
	strip := c.row.actions
	if strip == nil || !c.row.state.IsRevealed() || !c.ready() || c.committed() {
		return
	}
	orientation := strip.Orientation()

	c.setState(model.StateAnimatingToCenter)
	target := c.targetCenter(false)

	finish := func() {
		c.reset()
		if completion != nil {
			completion()
		}
	}
	if animated {
		c.animate(DefaultSettleDuration, target, 0, finish)
	} else {
		c.stopTransition()
		c.moveTo(target)
		finish()
	}

	if notify {
		c.surface.DidEndEditing(c.row, orientation)
	}
}

func (c *Coordinator) setOffset(offset float64, animated bool, completion func()) {
	if !c.ready() || c.committed() {
		return
	}
	if offset == 0 || math.IsNaN(offset) {
		c.hide(animated, completion)
		return
	}

	orientation := model.OrientationForOffset(offset)
	target := model.StateFor(orientation)
	if c.row.state != target {
		if !c.surface.CanBeginEditing(c.row, orientation) {
			return
		}
		if other := c.registry.otherInStates(c.row, model.StateDragging); other != nil {
			c.logger.Debug("show rejected", "reason", "another row is dragging", "other", other.id.String())
			return
		}
		if other := c.registry.otherCommitted(c.row); other != nil {
			c.logger.Debug("show rejected", "reason", "another row is completing an action", "other", other.id.String())
			return
		}
		c.stopTransition()
		c.originalCenter = c.host.CenterX()
		if !c.showActions(orientation) {
			return
		}
		c.setState(target)
	}

	bounds := c.host.Bounds()
	var center float64
	if math.IsInf(offset, 0) {
		center = c.targetCenter(true)
	} else {
		center = bounds.MidX() + math.Min(bounds.Width, math.Abs(offset))*-orientation.Scale()
	}

	if animated {
		c.animate(DefaultSettleDuration, center, 0, completion)
		return
	}
	c.stopTransition()
	c.moveTo(center)
	if completion != nil {
		completion()
	}
}

func (c *Coordinator) traitsChanged() {
	if !c.ready() || !c.row.state.IsRevealed() || c.committed() {
		return
	}
	c.moveTo(c.targetCenter(true))
}

func (c *Coordinator) targetState(velocity float64) model.SwipeState {
	strip := c.row.actions
	if strip == nil {
		return model.StateCenter
	}
	expanded := strip.Expanded()

	switch strip.Orientation() {
	case model.OrientationLeft:
		if velocity < 0 && !expanded {
			return model.StateCenter
		}
		return model.StateLeft
	default:
		if velocity > 0 && !expanded {
			return model.StateCenter
		}
		return model.StateRight
	}
}

func (c *Coordinator) targetCenter(active bool) float64 {
	midX := c.host.Bounds().MidX()
	strip := c.row.actions
	if !active || strip == nil {
		return midX
	}
	return midX - strip.PreferredWidth()*strip.Orientation().Scale()
}

func (c *Coordinator) setExpanded(strip Presentation, expanded, feedback bool) {
	if strip.Expanded() == expanded {
		return
	}
	strip.SetExpanded(expanded)
	if expanded && feedback && c.haptics != nil {
		c.haptics.ExpansionFeedback()
	}
}

func (c *Coordinator) setState(next model.SwipeState) {
	prev := c.row.state
	if !prev.CanTransitionTo(next) {
		c.logger.Warn("invalid swipe transition", "from", prev.String(), "to", next.String())
		return
	}
	if prev != next {
		c.logger.Debug("swipe state", "from", prev.String(), "to", next.String(), "index", c.row.index)
	}
	c.row.state = next
}

func (c *Coordinator) displacement() float64 {
	return c.host.CenterX() - c.host.Bounds().MidX()
}

func (c *Coordinator) moveTo(x float64) {
	c.host.SetCenterX(x)
	if strip := c.row.actions; strip != nil {
		strip.SetVisibleWidth(math.Abs(c.displacement()))
	}
	c.host.LayoutIfNeeded()
}

func (c *Coordinator) reset() {
	c.setState(model.StateCenter)
	c.deleting = false
	c.filling = false
	c.scrollRatio = 1
	if strip := c.row.actions; strip != nil {
		strip.Remove()
		c.row.actions = nil
	}
	if observer, ok := c.surface.(ResetObserver); ok {
		observer.DidReset(c.row)
	}
}

// animate settles the content center at target. A non-zero velocity seeds a spring.
func (c *Coordinator) animate(duration time.Duration, target, velocity float64, completion func()) {
	spec := AnimationSpec{Curve: CurveCriticallyDamped, Duration: duration}
	if velocity != 0 {
		spec.Curve = CurveSpring
		spec.InitialVelocity = velocity
	}
	c.host.LayoutIfNeeded()
	from := c.host.CenterX()
	c.run(spec, func(progress float64) {
		c.moveTo(lerp(from, target, progress))
	}, completion)
}

// run replaces the row's transition. Callbacks of a replaced transition are dropped.
func (c *Coordinator) run(spec AnimationSpec, step func(progress float64), completion func()) {
	c.stopTransition()

	if c.animator == nil {
		step(1)
		if completion != nil {
			completion()
		}
		return
	}

	generation := c.generation
	queue := c.row.queue
	c.transition = c.animator.Animate(spec, func(progress float64) {
		queue.Post(func() {
			if c.generation == generation {
				step(progress)
			}
		})
	}, func() {
		queue.Post(func() {
			if c.generation != generation {
				return
			}
			c.transition = nil
			c.generation++
			if completion != nil {
				completion()
			}
		})
	})
}

func (c *Coordinator) stopTransition() {
	c.generation++
	if c.transition != nil {
		c.transition.Stop()
		c.transition = nil
	}
}
