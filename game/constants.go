package game

import "github.com/go-gl/mathgl/mgl32"

const (
	DefaultGravity          = float32(20)
	DefaultTerminalVelocity = float32(40)

	DefaultCapsuleHeight = float32(1.8)
	DefaultCapsuleRadius = float32(0.35)
	CrouchCapsuleHeight  = float32(1.1)

	// Surfaces with an angle from up above this are never walkable.
	MaxWalkableSlope = float32(50)
	// Surfaces with |normal.Y| below this count as walls.
	WallNormalMaxY = float32(0.3)

	SpeedEpsilon = float32(1e-4)
)

var (
	Up      = mgl32.Vec3{0, 1, 0}
	Forward = mgl32.Vec3{0, 0, 1}
	Right   = mgl32.Vec3{1, 0, 0}
)
