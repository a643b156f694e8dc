package math

// Frame is a position plus orientation used to place local geometry in
// world space. Frames are plain values; nothing holds on to them between
// mesh generations.
type Frame struct {
	Position Vec3
	Rotation Quat
}

// NewFrame creates a frame from a position and rotation.
func NewFrame(position Vec3, rotation Quat) Frame {
	return Frame{Position: position, Rotation: rotation}
}

// FrameLookingAt creates a frame whose local +Z points along forward,
// using world up.
func FrameLookingAt(position, forward Vec3) Frame {
	return FrameLookingAtUp(position, forward, Up)
}

// FrameLookingAtUp creates a frame whose local +Z points along forward and
// whose local +Y leans toward up.
func FrameLookingAtUp(position, forward, up Vec3) Frame {
	return Frame{Position: position, Rotation: QuatLookRotation(forward, up)}
}

// ToWorldPosition maps a local point into world space.
func (f Frame) ToWorldPosition(local Vec3) Vec3 {
	return f.Position.Add(f.Rotation.Rotate(local))
}

// ToWorldDirection maps a local direction into world space without
// translating it. Used for normals.
func (f Frame) ToWorldDirection(local Vec3) Vec3 {
	return f.Rotation.Rotate(local)
}

// Forward returns the frame's local +Z axis in world space.
func (f Frame) Forward() Vec3 { return f.Rotation.Rotate(Forward) }

// Up returns the frame's local +Y axis in world space.
func (f Frame) Up() Vec3 { return f.Rotation.Rotate(Up) }

// Right returns the frame's local +X axis in world space.
func (f Frame) Right() Vec3 { return f.Rotation.Rotate(Right) }

// Compose returns the world frame of child, where child is expressed
// relative to f.
func (f Frame) Compose(child Frame) Frame {
	return Frame{
		Position: f.ToWorldPosition(child.Position),
		Rotation: f.Rotation.Mul(child.Rotation).Normalize(),
	}
}

// Matrix returns the model matrix (translation * rotation) for the frame.
func (f Frame) Matrix() Mat4 {
	return Translate(f.Position.X, f.Position.Y, f.Position.Z).Mul(f.Rotation.ToMat4())
}
