package latlon

import (
	"math"
	"testing"
)

func TestWrapPi(t *testing.T) {
	if w := wrapPi(0.5); w != 0.5 {
		t.Errorf("wrapPi(0.5) = %f; want 0.5", w)
	}
	if w := wrapPi(π); w != π {
		t.Errorf("wrapPi(π) = %f; want π", w)
	}
	if w := wrapPi(-π); w != π {
		t.Errorf("wrapPi(-π) = %f; want π", w)
	}
	if w := wrapPi(3 * π); math.Abs(w-π) > 1e-12 {
		t.Errorf("wrapPi(3π) = %f; want π", w)
	}
	if w := wrapPi(2.5 * π); math.Abs(w-0.5*π) > 1e-12 {
		t.Errorf("wrapPi(2.5π) = %f; want 0.5π", w)
	}
	if w := wrapPi(-2.5 * π); math.Abs(w+0.5*π) > 1e-12 {
		t.Errorf("wrapPi(-2.5π) = %f; want -0.5π", w)
	}
	if w := wrapPi(π + 0.1); math.Abs(w-(-π+0.1)) > 1e-12 {
		t.Errorf("wrapPi(π+0.1) = %f; want -π+0.1", w)
	}
}

func TestWrapTau(t *testing.T) {
	if w := wrapTau(-1.0); math.Abs(w-(2*π-1.0)) > 1e-12 {
		t.Errorf("wrapTau(-1) = %f; want 2π-1", w)
	}
	if w := wrapTau(2*π + 1.0); math.Abs(w-1.0) > 1e-12 {
		t.Errorf("wrapTau(2π+1) = %f; want 1", w)
	}
	if w := wrapTau(1.0); w != 1.0 {
		t.Errorf("wrapTau(1) = %f; want 1", w)
	}
}

func TestClampLat(t *testing.T) {
	if c := clampLat(2.0); c != π/2 {
		t.Errorf("clampLat(2) = %f; want π/2", c)
	}
	if c := clampLat(-2.0); c != -π/2 {
		t.Errorf("clampLat(-2) = %f; want -π/2", c)
	}
	if c := clampLat(0.3); c != 0.3 {
		t.Errorf("clampLat(0.3) = %f; want 0.3", c)
	}
}

func TestClampUnit(t *testing.T) {
	if c := clampUnit(1.0000000000000002); c != 1.0 {
		t.Errorf("clampUnit(1+ε) = %f; want 1", c)
	}
	if c := clampUnit(-1.0000000000000002); c != -1.0 {
		t.Errorf("clampUnit(-1-ε) = %f; want -1", c)
	}
	if c := clampUnit(0.5); c != 0.5 {
		t.Errorf("clampUnit(0.5) = %f; want 0.5", c)
	}
}

func TestNew(t *testing.T) {
	p := New(2.0, 3*π)
	if p.Lat != π/2 {
		t.Errorf("New(2, 3π).Lat = %f; want π/2", p.Lat)
	}
	if math.Abs(p.Lon-π) > 1e-12 {
		t.Errorf("New(2, 3π).Lon = %f; want π", p.Lon)
	}

	p = New(0.3, -π)
	if p.Lon != π {
		t.Errorf("New(0.3, -π).Lon = %f; want π", p.Lon)
	}

	p = New(0.3, -1.2)
	if p.Lat != 0.3 || p.Lon != -1.2 {
		t.Errorf("New(0.3, -1.2) = %v; want {0.3, -1.2}", p)
	}
}

func TestToRadiansToDegrees(t *testing.T) {
	if r := ToRadians(180.0); r != π {
		t.Errorf("ToRadians(180) = %f; want π", r)
	}
	if d := ToDegrees(π / 2); d != 90.0 {
		t.Errorf("ToDegrees(π/2) = %f; want 90", d)
	}
}
