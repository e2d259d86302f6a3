package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Round32 will round a float32 to a given precision.
func Round32(val float32, precision int) float32 {
	pwr := math32.Pow(10, float32(precision))
	return math32.Round(val*pwr) / pwr
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// ClampFloat clamp the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// MoveTowards moves current towards target by at most maxDelta.
func MoveTowards(current, target, maxDelta float32) float32 {
	if math32.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// SafeNormalize normalizes v, returning the zero vector for vectors too short to normalize.
func SafeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.LenSqr() < 1e-12 {
		return mgl32.Vec3{}
	}
	return v.Normalize()
}

// Horizontal returns the vector with its vertical component removed.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// Vec3HzDistSqr returns the squared horizontal distance in a vector.
func Vec3HzDistSqr(vec3 mgl32.Vec3) float32 {
	return vec3.X()*vec3.X() + vec3.Z()*vec3.Z()
}

// HorizontalSpeed returns the length of the horizontal part of a velocity.
func HorizontalSpeed(v mgl32.Vec3) float32 {
	return math32.Sqrt(Vec3HzDistSqr(v))
}

// ProjectOnPlane removes the component of v along the plane normal n.
func ProjectOnPlane(v, n mgl32.Vec3) mgl32.Vec3 {
	n = SafeNormalize(n)
	return v.Sub(n.Mul(v.Dot(n)))
}

// TangentForward projects a movement direction onto a surface while keeping its length,
// so walking into a slope does not lose speed.
func TangentForward(dir, normal mgl32.Vec3) mgl32.Vec3 {
	l := dir.Len()
	if l < 1e-6 {
		return mgl32.Vec3{}
	}
	return SafeNormalize(ProjectOnPlane(dir, normal)).Mul(l)
}

// AngleBetween returns the angle in degrees between a and b.
func AngleBetween(a, b mgl32.Vec3) float32 {
	la, lb := a.Len(), b.Len()
	if la < 1e-6 || lb < 1e-6 {
		return 0
	}
	return mgl32.RadToDeg(math32.Acos(ClampFloat(a.Dot(b)/(la*lb), -1, 1)))
}

// SlopeAngle returns the angle in degrees between a surface normal and up.
func SlopeAngle(normal mgl32.Vec3) float32 {
	return AngleBetween(normal, Up)
}

// YawRotation returns a rotation of yaw degrees about the up axis.
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(mgl32.DegToRad(yaw), Up)
}

// Yaw returns the yaw in degrees of the forward axis of a rotation.
func Yaw(rot mgl32.Quat) float32 {
	f := rot.Rotate(Forward)
	return mgl32.RadToDeg(math32.Atan2(f.X(), f.Z()))
}

// ForwardOf returns the horizontal forward direction of a rotation.
func ForwardOf(rot mgl32.Quat) mgl32.Vec3 {
	return SafeNormalize(Horizontal(rot.Rotate(Forward)))
}

// RightOf returns the horizontal right direction of a rotation.
func RightOf(rot mgl32.Quat) mgl32.Vec3 {
	return SafeNormalize(Horizontal(rot.Rotate(Right)))
}

// MoveDirection converts a move axis into a world direction relative to rot. The
// result keeps the axis magnitude, clamped to 1.
func MoveDirection(rot mgl32.Quat, move mgl32.Vec2) mgl32.Vec3 {
	dir := RightOf(rot).Mul(move.X()).Add(ForwardOf(rot).Mul(move.Y()))
	if l := dir.Len(); l > 1 {
		dir = dir.Mul(1 / l)
	}
	return dir
}

// ClampHorizontal limits the horizontal length of v to max, leaving v.Y untouched.
func ClampHorizontal(v mgl32.Vec3, max float32) mgl32.Vec3 {
	hz := HorizontalSpeed(v)
	if hz <= max || hz < 1e-6 {
		return v
	}
	s := max / hz
	return mgl32.Vec3{v.X() * s, v.Y(), v.Z() * s}
}

// ClampLength limits the length of v to max.
func ClampLength(v mgl32.Vec3, max float32) mgl32.Vec3 {
	l := v.Len()
	if l <= max || l < 1e-6 {
		return v
	}
	return v.Mul(max / l)
}

// AbsVec32 will return the given vector, but all the values of it are switched to their absolute values.
func AbsVec32(vec mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Abs(vec.X()), math32.Abs(vec.Y()), math32.Abs(vec.Z())}
}

// RoundVec32 will round a 32-bit vector to a given precision.
func RoundVec32(v mgl32.Vec3, p int) mgl32.Vec3 {
	return mgl32.Vec3{Round32(v.X(), p), Round32(v.Y(), p), Round32(v.Z(), p)}
}
