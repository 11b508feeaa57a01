package ui

import (
	"math"
	"testing"
)

func TestSlider_ValueAt(t *testing.T) {
	s := NewSlider("Avoid", 0, 0.2, 0.05, nil)
	s.MoveTo(10, 50, 200)

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left edge", 10, 0},
		{"middle", 110, 0.1},
		{"right edge", 210, 0.2},
		{"left of the bar", -50, 0},
		{"right of the bar", 500, 0.2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.valueAt(tt.x); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("valueAt(%v) = %v; want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestSlider_SetClampsAndNotifies(t *testing.T) {
	var got []float64
	s := NewSlider("Turn", 0, 1, 2, func(v float64) { got = append(got, v) })
	if s.Value != 1 {
		t.Fatalf("NewSlider value = %v; want clamped to 1", s.Value)
	}

	s.Set(0.5)
	s.Set(0.5) // unchanged, no callback
	s.Set(-3)

	want := []float64{0.5, 0}
	if len(got) != len(want) {
		t.Fatalf("OnChange calls = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OnChange call %d = %v; want %v", i, got[i], want[i])
		}
	}
}

func TestSlider_ResetIsSilent(t *testing.T) {
	calls := 0
	s := NewSlider("Visible", 50, 200, 70, func(float64) { calls++ })

	s.Reset(120)
	if s.Value != 120 || calls != 0 {
		t.Errorf("Reset(120): Value = %v, calls = %d; want 120, 0", s.Value, calls)
	}
	s.Reset(10)
	if s.Value != 50 {
		t.Errorf("Reset(10) = %v; want clamped to 50", s.Value)
	}
}

func TestSlider_Press(t *testing.T) {
	s := NewSlider("Cohesion", 0, 10, 5, nil)
	s.MoveTo(0, 0, 100)

	s.press(20, 5, false)
	if s.Value != 5 {
		t.Errorf("hover without a click changed the value to %v", s.Value)
	}
	s.press(20, 50, true)
	if s.Value != 5 {
		t.Errorf("click below the bar changed the value to %v", s.Value)
	}
	s.press(20, 5, true)
	if s.Value != 2 {
		t.Errorf("click at 20%% = %v; want 2", s.Value)
	}
}

func TestCheckbox_TogglesOncePerPress(t *testing.T) {
	toggles := 0
	c := NewCheckbox("Show stats", false, func(bool) { toggles++ })
	c.MoveTo(0, 0, 0)

	// Button held for three frames, released, then pressed again.
	c.press(5, 5, true)
	c.press(5, 5, true)
	c.press(5, 5, true)
	if !c.Value || toggles != 1 {
		t.Fatalf("after one long press Value = %v, toggles = %d; want true, 1", c.Value, toggles)
	}
	c.press(5, 5, false)
	c.press(5, 5, true)
	if c.Value || toggles != 2 {
		t.Errorf("after second press Value = %v, toggles = %d; want false, 2", c.Value, toggles)
	}

	c.press(50, 50, true)
	if toggles != 2 {
		t.Errorf("press outside the box toggled it")
	}
}

func TestButton_ClicksOncePerPress(t *testing.T) {
	clicks := 0
	b := NewButton("Defaults", func() { clicks++ })
	b.MoveTo(10, 10, 100)

	b.press(20, 15, true)
	b.press(20, 15, true)
	b.press(20, 15, false)
	b.press(20, 15, true)
	b.press(500, 15, true)

	if clicks != 2 {
		t.Errorf("clicks = %d; want 2", clicks)
	}
}

func TestPanel_Layout(t *testing.T) {
	p := NewPanel("Tuning", 100, 0, 240, 400)
	p.AddSection("Rules")
	avoid := NewSlider("Avoid", 0, 1, 0.5, nil)
	p.Add(avoid)
	stats := NewCheckbox("Show stats", false, nil)
	p.Add(stats)
	reset := NewButton("Defaults", nil)
	p.Add(reset)

	// title, section, caption, then the slider
	wantY := titleHeight + sectionHeight + captionHeight
	if avoid.X != 100+padding || avoid.Y != wantY || avoid.W != 240-2*padding {
		t.Errorf("slider at (%v, %v) width %v; want (%v, %v) width %v",
			avoid.X, avoid.Y, avoid.W, 100+padding, wantY, 240-2*padding)
	}
	wantY += avoid.Height() + widgetGap + captionHeight
	if stats.Y != wantY {
		t.Errorf("checkbox y = %v; want %v", stats.Y, wantY)
	}
	wantY += stats.Height() + widgetGap
	if reset.Y != wantY {
		t.Errorf("button y = %v; want %v (no caption)", reset.Y, wantY)
	}

	if n := len(p.Widgets()); n != 3 {
		t.Errorf("Widgets() has %d entries; want 3", n)
	}
}

func TestPanel_ScrollIsBounded(t *testing.T) {
	p := NewPanel("Tuning", 0, 0, 200, 100)
	p.AddSection("Rules")
	for i := 0; i < 10; i++ {
		p.Add(NewSlider("s", 0, 1, 0, nil))
	}

	p.Scroll(1)
	if p.ScrollOffset != 0 {
		t.Errorf("scrolling up from the top moved to %v", p.ScrollOffset)
	}

	p.Scroll(-1000)
	want := p.contentHeight() - (p.Height - titleHeight - padding)
	if p.ScrollOffset != want {
		t.Errorf("ScrollOffset = %v; want bottom %v", p.ScrollOffset, want)
	}

	first := p.Widgets()[0].(*Slider)
	if first.Y != titleHeight+sectionHeight+captionHeight-want {
		t.Errorf("first slider y = %v after scroll", first.Y)
	}
}
