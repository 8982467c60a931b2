package css_test

import (
	"testing"

	"github.com/npillmayer/domfx/dom/style"
	"github.com/npillmayer/domfx/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

func TestDimenKinds(t *testing.T) {
	if !css.Auto().IsAuto() {
		t.Errorf("expected auto dimension to be auto")
	}
	if !css.JustDimen(0).IsZero() {
		t.Errorf("expected fixed dimension of 0 to be zero")
	}
	if css.JustDimen(dimen.PT * 10).IsZero() {
		t.Errorf("expected 10pt not to be zero")
	}
	if !css.Percentage(percent.FromInt(0)).IsZero() {
		t.Errorf("expected 0%% to be zero")
	}
	if css.Percentage(percent.FromInt(80)).IsZero() {
		t.Errorf("expected 80%% not to be zero")
	}
	if css.Inherit().IsUnset() || css.Inherit().IsZero() {
		t.Errorf("expected inherit to be set and non-zero")
	}
}

func TestParseDimen(t *testing.T) {
	for _, c := range []struct {
		value string
		zero  bool
		auto  bool
	}{
		{"0", true, false},
		{"0px", true, false},
		{"12px", false, false},
		{"0.5in", false, false},
		{"0%", true, false},
		{"50%", false, false},
		{"1.5em", false, false},
		{"auto", false, true},
	} {
		d, err := css.ParseDimen(style.Property(c.value))
		if err != nil {
			t.Errorf("unexpected error for %q: %v", c.value, err)
			continue
		}
		if d.IsZero() != c.zero {
			t.Errorf("expected IsZero(%q) to be %v", c.value, c.zero)
		}
		if d.IsAuto() != c.auto {
			t.Errorf("expected IsAuto(%q) to be %v", c.value, c.auto)
		}
	}
	if _, err := css.ParseDimen("12furlongs"); err == nil {
		t.Errorf("expected error for unknown unit")
	}
	if d, _ := css.ParseDimen(""); !d.IsUnset() {
		t.Errorf("expected empty property to be unset")
	}
}
