package bodysim

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/locomotion/game"
)

// clip returns the part of delta moving can travel before running into stationary. Boxes
// that already overlap push moving out along the axis of least penetration.
func clip(stationary, moving cube.BBox, delta mgl32.Vec3) mgl32.Vec3 {
	if stationary.Min() == stationary.Max() {
		return delta
	}

	var penetration, signed, normal [3]float32
	separating, axis := 0, 0
	for i := 0; i < 3; i++ {
		minPen := moving.Max()[i] - stationary.Min()[i]
		maxPen := stationary.Max()[i] - moving.Min()[i]
		if math32.Abs(minPen) <= 1e-7 {
			minPen = 0
		}
		if math32.Abs(maxPen) <= 1e-7 {
			maxPen = 0
		}

		switch minPos, maxPos := math32.Max(0, minPen), math32.Max(0, maxPen); {
		case minPos == 0:
			signed[i], normal[i] = minPen, -1
			separating, axis = separating+1, i
		case maxPos == 0:
			signed[i], normal[i] = maxPen, 1
			separating, axis = separating+1, i
		case minPos < maxPos:
			penetration[i], signed[i], normal[i] = minPos, minPos, -1
		default:
			penetration[i], signed[i], normal[i] = maxPos, maxPos, 1
		}
		if separating > 1 {
			return delta
		}
	}

	if separating == 0 {
		best := 0
		for i := 1; i < 3; i++ {
			if penetration[i] < penetration[best] {
				best = i
			}
		}
		if push := penetration[best] * normal[best]; push > 0 {
			delta[best] = math32.Max(push, delta[best])
		} else {
			delta[best] = math32.Min(push, delta[best])
		}
		return delta
	}

	if swept := signed[axis] - normal[axis]*delta[axis]; swept <= 0 {
		return delta
	}
	delta[axis] = signed[axis] * normal[axis]
	return delta
}

// sweep moves bb by delta one axis at a time, vertical first, and returns the distance
// actually travelled.
func sweep(boxes []cube.BBox, bb cube.BBox, delta mgl32.Vec3) (mgl32.Vec3, cube.BBox) {
	var moved mgl32.Vec3
	for _, i := range [3]int{1, 0, 2} {
		var d mgl32.Vec3
		d[i] = delta[i]
		for j := len(boxes) - 1; j >= 0; j-- {
			d = clip(boxes[j], bb, d)
		}
		bb = bb.Translate(d)
		moved[i] = d[i]
	}
	return moved, bb
}

// stepUp retries a blocked horizontal move lifted by height, then settles back down.
func stepUp(boxes []cube.BBox, bb cube.BBox, delta mgl32.Vec3, height float32) (mgl32.Vec3, cube.BBox) {
	lift, bb := sweep(boxes, bb, mgl32.Vec3{0, height, 0})
	hz, bb := sweep(boxes, bb, mgl32.Vec3{delta.X(), 0, delta.Z()})
	drop, bb := sweep(boxes, bb, mgl32.Vec3{0, -lift.Y(), 0})
	return game.Horizontal(hz).Add(mgl32.Vec3{0, lift.Y() + drop.Y(), 0}), bb
}
