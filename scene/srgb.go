package scene

import (
	"math"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/texture"
	"github.com/geometrian/spectraltracer/spectral"
)

// NewPlaneSRGB builds a minimal test scene: a single textured quad
// facing the camera, lit from all sides by a surrounding box of D65
// emitters. Useful for checking the sRGB-texture-to-spectrum upsampling
// path in isolation, without the Cornell box's indirect bounces.
func NewPlaneSRGB(texturePath string, cdata *color.Data) (*Scene, error) {
	s := New()

	pos := geom.Vec3{X: 0, Y: 0, Z: 5}
	fovY := float32(2.0 * math.Atan2(1, float64(pos.Z)) * 180 / math.Pi)

	s.Camera = Camera{
		Pos:     pos,
		Dir:     geom.Vec3{X: 0, Y: 0, Z: -1},
		Up:      geom.Vec3{X: 0, Y: 1, Z: 0},
		ResX:    512,
		ResY:    512,
		FovYDeg: fovY,
	}

	tex, err := texture.Load(texturePath)
	if err != nil {
		return nil, err
	}
	mtlTex := &Material{Kind: Lambertian, Albedo: Albedo{Texture: tex}}
	s.Materials["tex"] = mtlTex

	zeroRefl, err := spectral.New([]float32{0, 0}, spectral.LambdaMin, spectral.LambdaMax)
	if err != nil {
		return nil, err
	}
	mtlLight := &Material{Kind: Lambertian, Emission: cdata.D65Rad, Albedo: Albedo{Constant: zeroRefl}}
	s.Materials["light"] = mtlLight

	s.Primitives = append(s.Primitives, NewQuadPrimitive(geom.NewQuad(
		v(-1, -1, 0, 0, 0),
		v(1, -1, 0, 1, 0),
		v(1, 1, 0, 1, 1),
		v(-1, 1, 0, 0, 1),
	), mtlTex))

	size := float32(10.0)
	box := [][4]geom.Vertex{
		{v(-size, -size, size, 0, 0), v(-size, -size, -size, 0, 0), v(-size, size, -size, 0, 0), v(-size, size, size, 0, 0)},
		{v(size, -size, -size, 0, 0), v(size, -size, size, 0, 0), v(size, size, size, 0, 0), v(size, size, -size, 0, 0)},
		{v(-size, -size, size, 0, 0), v(size, -size, size, 0, 0), v(size, -size, -size, 0, 0), v(-size, -size, -size, 0, 0)},
		{v(size, size, size, 0, 0), v(-size, size, size, 0, 0), v(-size, size, -size, 0, 0), v(size, size, -size, 0, 0)},
		{v(-size, -size, -size, 0, 0), v(size, -size, -size, 0, 0), v(size, size, -size, 0, 0), v(-size, size, -size, 0, 0)},
		{v(size, -size, size, 0, 0), v(-size, -size, size, 0, 0), v(-size, size, size, 0, 0), v(size, size, size, 0, 0)},
	}
	for _, face := range box {
		s.Primitives = append(s.Primitives, NewQuadPrimitive(geom.NewQuad(face[0], face[1], face[2], face[3]), mtlLight))
	}

	s.Finalize()
	return s, nil
}
