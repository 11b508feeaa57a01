package render

import (
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/ui"
)

const (
	tuningWidth  = 240.0
	tuningMargin = 10.0
)

// tuning binds a ui.Panel to the engine settings. Slider changes are applied
// with Engine.SetSettings, so they take effect on the next frame.
type tuning struct {
	panel    *ui.Panel
	engine   *flock.Engine
	defaults flock.Settings
	sliders  map[string]*ui.Slider
	stats    *ui.Checkbox
}

// setting points at one field of a flock.Settings.
type setting func(s *flock.Settings) *float64

var (
	proximityRange setting = func(s *flock.Settings) *float64 { return &s.ProximityRange }
	visibleRange   setting = func(s *flock.Settings) *float64 { return &s.VisibleRange }
	minSpeed       setting = func(s *flock.Settings) *float64 { return &s.MinSpeed }
	maxSpeed       setting = func(s *flock.Settings) *float64 { return &s.MaxSpeed }
)

// tunable describes one slider: its default range and the setting it edits.
// floor and ceiling, when set, name the setting this one may not go below or
// above.
type tunable struct {
	label          string
	min, max       float64
	field          setting
	floor, ceiling setting
}

var tunables = []struct {
	section string
	items   []tunable
}{
	{"Rules", []tunable{
		{label: "Avoid factor", min: 0, max: 0.2, field: func(s *flock.Settings) *float64 { return &s.AvoidFactor }},
		{label: "Matching factor", min: 0, max: 1, field: func(s *flock.Settings) *float64 { return &s.MatchingFactor }},
		{label: "Cohesion factor", min: 0, max: 0.01, field: func(s *flock.Settings) *float64 { return &s.CohesionFactor }},
		{label: "Proximity range", min: 5, max: 60, field: proximityRange, ceiling: visibleRange},
		{label: "Visible range", min: 60, max: 200, field: visibleRange, floor: proximityRange},
	}},
	{"Motion", []tunable{
		{label: "Min speed", min: 0.5, max: 3, field: minSpeed, ceiling: maxSpeed},
		{label: "Max speed", min: 3, max: 10, field: maxSpeed, floor: minSpeed},
		{label: "Turn factor", min: 0, max: 0.5, field: func(s *flock.Settings) *float64 { return &s.TurnFactor }},
	}},
}

// newTuning builds the panel against the right edge of the world. Slider
// ranges are widened to include the start-up settings. The checkbox writes
// through to *showStats.
func newTuning(e *flock.Engine, showStats *bool) *tuning {
	s := e.Settings()
	t := &tuning{
		panel:    ui.NewPanel("Tuning (T to hide)", s.Width-tuningWidth-tuningMargin, tuningMargin, tuningWidth, s.Height-2*tuningMargin),
		engine:   e,
		defaults: s,
		sliders:  make(map[string]*ui.Slider),
	}

	for _, group := range tunables {
		t.panel.AddSection(group.section)
		for _, item := range group.items {
			value := *item.field(&s)
			slider := ui.NewSlider(item.label, min(item.min, value), max(item.max, value), value, nil)
			slider.OnChange = func(v float64) { t.apply(item, slider, v) }
			t.sliders[item.label] = slider
			t.panel.Add(slider)
		}
	}

	t.panel.AddSection("View")
	t.stats = ui.NewCheckbox("Show stats (D)", *showStats, func(v bool) { *showStats = v })
	t.panel.Add(t.stats)
	t.panel.Add(ui.NewButton("Restore defaults", t.restore))
	return t
}

// apply writes v into the engine settings, held between the floor and
// ceiling settings of item, and moves the slider back if v was held.
func (t *tuning) apply(item tunable, slider *ui.Slider, v float64) {
	next := t.engine.Settings()
	if item.floor != nil {
		v = max(v, *item.floor(&next))
	}
	if item.ceiling != nil {
		v = min(v, *item.ceiling(&next))
	}
	*item.field(&next) = v
	t.engine.SetSettings(next)
	slider.Reset(v)
}

// restore puts back the settings the window was opened with.
func (t *tuning) restore() {
	t.engine.SetSettings(t.defaults)
	for _, group := range tunables {
		for _, item := range group.items {
			t.sliders[item.label].Reset(*item.field(&t.defaults))
		}
	}
}

// update runs the panel input for one frame. showStats may have been flipped
// with the keyboard since the last call.
func (t *tuning) update(showStats bool) {
	t.stats.Value = showStats
	t.panel.Update()
}
