package maybe_test

import (
	"strings"
	"testing"

	. "github.com/npillmayer/csskit/maybe"
)

func TestMaybeMatch(t *testing.T) {
	system := Just("cyclic")
	pad := Nothing[int]()

	var v string
	switch m := system.Match(); m {
	case m.Just(&v):
		t.Logf("system: %s", v)
	case m.Nothing():
		t.Logf("system unset")
	}
	if v != "cyclic" {
		t.Errorf("expected system to be cyclic, is %q", v)
	}

	w := -1
	switch m := pad.Match(); m {
	case m.Just(&w):
		t.Errorf("expected pad to be unset, is %d", w)
	case m.Nothing():
		w = 0
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %d", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if s := Just("- ").WithDefault("-"); s != "- " {
		t.Errorf("expected specified negative sign to be kept, is %q", s)
	}
	if s := Nothing[string]().WithDefault("-"); s != "-" {
		t.Errorf("expected unset negative sign to default to \"-\", is %q", s)
	}
}

func TestMaybeMap(t *testing.T) {
	upper := func(s string) string { return strings.ToUpper(s) }
	var v string
	switch m := Just("decimal").Map(upper).Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != "DECIMAL" {
		t.Errorf("expected Just(decimal).Map(upper) to be DECIMAL, is %q", v)
	}
	if v, _ = Map(upper, Just("disc")).Get(); v != "DISC" {
		t.Errorf("expected Map(upper, Just disc) to be DISC, is %q", v)
	}
	if Nothing[string]().Map(upper).IsJust() {
		t.Error("expected Nothing.Map(…) to be Nothing, isn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	positive := func(n int) Maybe[uint] {
		if n > 0 {
			return Just(uint(n))
		}
		return Nothing[uint]()
	}
	if v, ok := AndThen(positive, Just(3)).Get(); !ok || v != 3 {
		t.Errorf("expected Just(3) |> andThen(positive) to be 3, is %d/%v", v, ok)
	}
	if AndThen(positive, Just(-3)).IsJust() {
		t.Error("expected Just(-3) |> andThen(positive) to be Nothing, isn't")
	}
	if AndThen(positive, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(positive) to be Nothing, isn't")
	}
}

func TestMaybeOptionalField(t *testing.T) {
	type record struct {
		suffix Maybe[string]
	}
	var r record
	if !IsNothing(r.suffix) {
		t.Error("expected unset field to be Nothing, isn't")
	}
	if s := OrElse(r.suffix, ". "); s != ". " {
		t.Errorf("expected unset field to default to \". \", is %q", s)
	}
	r.suffix = Just(" ")
	if s, ok := Value(r.suffix); !ok || s != " " {
		t.Errorf("expected field to be Just(\" \"), is %q/%v", s, ok)
	}
	if OrElse(r.suffix, ". ") != " " {
		t.Error("expected specified field to ignore default, doesn't")
	}
}

func TestMaybeOf(t *testing.T) {
	if x := Of(3, false); x.IsJust() {
		t.Errorf("expected Of(3, false) to be Nothing, is %v", x)
	}
	if v, ok := Of(3, true).Get(); !ok || v != 3 {
		t.Errorf("expected Of(3, true) to be Just(3), is %d/%v", v, ok)
	}
}
