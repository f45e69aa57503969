package race

import "github.com/go-gl/mathgl/mgl64"

// Camera is a chase view: where the eye sits and the point it looks at.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
}

// FollowCamera places the eye CameraHeight up and CameraBehind along +Z from the
// car, looking at the car's ground position.
func FollowCamera(v Vehicle) Camera {
	return Camera{
		Eye:    mgl64.Vec3{v.X, CameraHeight, v.Z + CameraBehind},
		Target: mgl64.Vec3{v.X, 0, v.Z},
	}
}
