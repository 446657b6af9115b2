package game

import "math"

// leadTarget returns where a shot fired from (sx, sy) at speed should be
// aimed to meet a target moving at (vx, vy). Slow or very close targets are
// aimed at directly.
func leadTarget(sx, sy, tx, ty, vx, vy, speed float64) (float64, float64) {
	if speed <= 0 || (math.Abs(vx) < 0.1 && math.Abs(vy) < 0.1) {
		return tx, ty
	}
	d := distance(sx, sy, tx, ty)
	if d < 1 {
		return tx, ty
	}

	// Refine the flight time a few times; converges quickly while the
	// target is slower than the shot
	t := d / speed
	for i := 0; i < 5; i++ {
		next := distance(sx, sy, tx+vx*t, ty+vy*t) / speed
		if math.Abs(next-t) < 0.001 {
			t = next
			break
		}
		t = next
	}
	return tx + vx*t, ty + vy*t
}
