package geom

import "image"

// MoveTowards moves cur toward target by at most step and clamps exactly at
// target. A non-positive step leaves cur unchanged.
func MoveTowards(cur, target, step int) int {
	if step <= 0 {
		return cur
	}
	switch {
	case cur < target:
		if cur+step > target {
			return target
		}
		return cur + step
	case cur > target:
		if cur-step < target {
			return target
		}
		return cur - step
	}
	return cur
}

// MovePointTowards applies MoveTowards to both coordinates.
func MovePointTowards(cur, target image.Point, step int) image.Point {
	return image.Pt(MoveTowards(cur.X, target.X, step), MoveTowards(cur.Y, target.Y, step))
}

// MoveLinear moves start by frame*velocity while frame < maxFrames and snaps
// to start+finalOffset afterwards.
func MoveLinear(start, velocity image.Point, frame, maxFrames int, finalOffset image.Point) image.Point {
	if frame < maxFrames {
		return start.Add(velocity.Mul(frame))
	}
	return start.Add(finalOffset)
}
