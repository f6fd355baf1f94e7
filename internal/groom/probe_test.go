package groom

import "github.com/Faultbox/furgroom/pkg/math"

// planeProbe maps screen pixels onto the local XZ plane at one unit per
// hundred pixels. Screen positions inside miss are reported as misses.
type planeProbe struct {
	miss map[math.Vec2]bool
	// dir overrides LocalDirection when non-zero.
	dir math.Vec3
}

func (p *planeProbe) Hit(screen math.Vec2) (math.Vec3, bool) {
	if p.miss[screen] {
		return math.Vec3{}, false
	}
	return math.Vec3{X: screen.X / 100, Z: screen.Y / 100}, true
}

func (p *planeProbe) LocalDirection(screen math.Vec2) math.Vec3 {
	if p.dir != (math.Vec3{}) {
		return p.dir
	}
	// Screen right is local +X, screen down is local +Z.
	return math.Vec3{X: screen.X, Z: screen.Y}
}

func down(x, y float32) Pointer {
	return Pointer{Down: true, Position: math.Vec2{X: x, Y: y}}
}

func press(x, y float32) Pointer {
	return Pointer{Down: true, Pressed: true, Position: math.Vec2{X: x, Y: y}}
}

func up(x, y float32) Pointer {
	return Pointer{Position: math.Vec2{X: x, Y: y}}
}

func release(x, y float32) Pointer {
	return Pointer{Released: true, Position: math.Vec2{X: x, Y: y}}
}
