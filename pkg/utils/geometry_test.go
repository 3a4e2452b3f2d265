package utils

import (
	"math"
	"testing"
)

// TestNormalizeAngle 任意输入都规范化到 [-π, π)
func TestNormalizeAngle(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{0, 0},
		{math.Pi / 2, math.Pi / 2},
		{-math.Pi / 2, -math.Pi / 2},
		{math.Pi * 3 / 2, -math.Pi / 2},
		{-math.Pi * 3 / 2, math.Pi / 2},
		{math.Pi * 5 / 2, math.Pi / 2},
		{-math.Pi * 5 / 2, -math.Pi / 2},
		{math.Pi * 4, 0},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%v) = %v, want %v", c.in, got, c.want)
		}
		if got < -math.Pi || got >= math.Pi {
			t.Errorf("NormalizeAngle(%v) = %v, outside [-pi, pi)", c.in, got)
		}
	}
}

// TestClamp 越界值收拢到区间端点
func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp(5,0,3) = %v, want 3", got)
	}
	if got := Clamp(-2, 0, 3); got != 0 {
		t.Errorf("Clamp(-2,0,3) = %v, want 0", got)
	}
	if got := ClampInt(7, 1, 6); got != 6 {
		t.Errorf("ClampInt(7,1,6) = %d, want 6", got)
	}
}

// TestVelocityToward 重合点退化为竖直向下，其余情况保持速度模长
func TestVelocityToward(t *testing.T) {
	vx, vy := VelocityToward(10, 10, 10, 10, 4)
	if vx != 0 || vy != 4 {
		t.Errorf("coincident points should fall back to straight down, got (%v, %v)", vx, vy)
	}

	vx, vy = VelocityToward(0, 0, 30, 40, 5)
	if math.Abs(math.Hypot(vx, vy)-5) > 1e-9 {
		t.Errorf("expected speed 5, got %v", math.Hypot(vx, vy))
	}
	if vx <= 0 || vy <= 0 {
		t.Errorf("velocity should point toward the target, got (%v, %v)", vx, vy)
	}
}

// TestCalculateTargetAngle 目标在正下方时角度为0，正右方为 π/2
func TestCalculateTargetAngle(t *testing.T) {
	if got := CalculateTargetAngle(0, 0, 0, 10); math.Abs(got) > 1e-9 {
		t.Errorf("straight down should be 0, got %v", got)
	}
	if got := CalculateTargetAngle(0, 0, 10, 0); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("straight right should be pi/2, got %v", got)
	}
}
