package scene

import (
	"path/filepath"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/geom"
	"github.com/geometrian/spectraltracer/internal/specdata"
	"github.com/geometrian/spectraltracer/internal/texture"
	"github.com/geometrian/spectraltracer/spectral"
)

// v builds a Vertex from position components and an ST coordinate,
// shortening the primitive-construction code below to roughly one line
// per vertex, matching the original's compact Pos/ST aggregate literals.
func v(x, y, z, s, t float32) geom.Vertex {
	return geom.Vertex{Pos: geom.Vec3{X: x, Y: y, Z: z}, ST: geom.ST{S: s, T: t}}
}

// NewCornell builds the classic Cornell box: a closed room lit by a
// rectangular ceiling light (with a hole cut for it, rather than placed
// flush against the ceiling, which sharply reduces variance for
// next-event estimation), containing a short and a tall block.
// Coordinates are taken from the Cornell Box Data Set (cut down to the
// subset of quads the original renderer uses).
func NewCornell(dataDir string) (*Scene, error) {
	s := New()

	s.Camera = Camera{
		Pos:     geom.Vec3{X: 278, Y: 273, Z: -800},
		Dir:     geom.Vec3{X: 0, Y: 0, Z: 1},
		Up:      geom.Vec3{X: 0, Y: 1, Z: 0},
		ResX:    512,
		ResY:    512,
		FovYDeg: 39.0,
	}

	wallData, err := specdata.LoadColumns(filepath.Join(dataDir, "scenes/cornell/white-green-red.csv"), 3)
	if err != nil {
		return nil, err
	}
	whiteSpec, err := spectral.New(wallData[0], 400, 700)
	if err != nil {
		return nil, err
	}
	greenSpec, err := spectral.New(wallData[1], 400, 700)
	if err != nil {
		return nil, err
	}
	redSpec, err := spectral.New(wallData[2], 400, 700)
	if err != nil {
		return nil, err
	}

	lightData, err := specdata.LoadColumns(filepath.Join(dataDir, "scenes/cornell/light.csv"), 1)
	if err != nil {
		return nil, err
	}
	lightEmission, err := spectral.New(lightData[0], 400, 700)
	if err != nil {
		return nil, err
	}
	lightEmission = lightEmission.Scale(200.0)
	lightReflectance, err := spectral.New([]float32{0.78, 0.78}, spectral.LambdaMin, spectral.LambdaMax)
	if err != nil {
		return nil, err
	}

	s.Materials["white-back"] = &Material{Kind: Lambertian, Albedo: Albedo{Constant: whiteSpec}}
	s.Materials["white-blocks"] = &Material{Kind: Lambertian, Albedo: Albedo{Constant: whiteSpec}}
	s.Materials["white-floorceil"] = &Material{Kind: Lambertian, Albedo: Albedo{Constant: whiteSpec}}
	s.Materials["green"] = &Material{Kind: Lambertian, Albedo: Albedo{Constant: greenSpec}}
	s.Materials["red"] = &Material{Kind: Lambertian, Albedo: Albedo{Constant: redSpec}}
	s.Materials["light"] = &Material{Kind: Lambertian, Emission: lightEmission, Albedo: Albedo{Constant: lightReflectance}}

	add := func(mat string, v0, v1, v2, v3 geom.Vertex) {
		q := geom.NewQuad(v0, v1, v2, v3)
		s.Primitives = append(s.Primitives, NewQuadPrimitive(q, s.Materials[mat]))
	}

	// Floor.
	add("white-floorceil",
		v(552.8, 0.0, 0.0, 1, 0),
		v(0.0, 0.0, 0.0, 0, 0),
		v(0.0, 0.0, 559.2, 0, 1),
		v(549.6, 0.0, 559.2, 1, 1),
	)

	// Ceiling, with a rectangular hole cut out for the light (A,B,C,D are
	// the ceiling's corners; E,F,G,H bound the cutout).
	A := v(0.0, 548.8, 559.2, 0, 0)
	B := v(556.0, 548.8, 559.2, 0, 0)
	C := v(0.0, 548.8, 0.0, 0, 0)
	D := v(556.0, 548.8, 0.0, 0, 0)
	E := v(213.0, 548.8, 332.0, 0, 0)
	F := v(343.0, 548.8, 332.0, 0, 0)
	G := v(213.0, 548.8, 227.0, 0, 0)
	H := v(343.0, 548.8, 227.0, 0, 0)

	add("light",
		v(343.0, 548.7, 227.0, 1, 0),
		v(343.0, 548.7, 332.0, 1, 1),
		v(213.0, 548.7, 332.0, 0, 1),
		v(213.0, 548.7, 227.0, 0, 0),
	)
	add("white-floorceil", D, B, F, H)
	add("white-floorceil", B, A, E, F)
	add("white-floorceil", A, C, G, E)
	add("white-floorceil", C, D, H, G)

	// Back wall.
	add("white-back",
		v(549.6, 0.0, 559.2, 0, 0),
		v(0.0, 0.0, 559.2, 1, 0),
		v(0.0, 548.8, 559.2, 1, 1),
		v(556.0, 548.8, 559.2, 0, 1),
	)

	// Right wall (green).
	add("green",
		v(0.0, 0.0, 559.2, 1, 0),
		v(0.0, 0.0, 0.0, 0, 0),
		v(0.0, 548.8, 0.0, 0, 1),
		v(0.0, 548.8, 559.2, 1, 1),
	)

	// Left wall (red).
	add("red",
		v(552.8, 0.0, 0.0, 0, 0),
		v(549.6, 0.0, 559.2, 1, 0),
		v(556.0, 548.8, 559.2, 1, 1),
		v(556.0, 548.8, 0.0, 0, 1),
	)

	// Short block.
	add("white-blocks",
		v(130.0, 165.0, 65.0, 0, 0), v(82.0, 165.0, 225.0, 0, 0),
		v(240.0, 165.0, 272.0, 0, 0), v(290.0, 165.0, 114.0, 0, 0))
	add("white-blocks",
		v(290.0, 0.0, 114.0, 0, 0), v(290.0, 165.0, 114.0, 0, 0),
		v(240.0, 165.0, 272.0, 0, 0), v(240.0, 0.0, 272.0, 0, 0))
	add("white-blocks",
		v(130.0, 0.0, 65.0, 0, 0), v(130.0, 165.0, 65.0, 0, 0),
		v(290.0, 165.0, 114.0, 0, 0), v(290.0, 0.0, 114.0, 0, 0))
	add("white-blocks",
		v(82.0, 0.0, 225.0, 0, 0), v(82.0, 165.0, 225.0, 0, 0),
		v(130.0, 165.0, 65.0, 0, 0), v(130.0, 0.0, 65.0, 0, 0))
	add("white-blocks",
		v(240.0, 0.0, 272.0, 0, 0), v(240.0, 165.0, 272.0, 0, 0),
		v(82.0, 165.0, 225.0, 0, 0), v(82.0, 0.0, 225.0, 0, 0))

	// Tall block.
	add("white-blocks",
		v(423.0, 330.0, 247.0, 0, 0), v(265.0, 330.0, 296.0, 0, 0),
		v(314.0, 330.0, 456.0, 0, 0), v(472.0, 330.0, 406.0, 0, 0))
	add("white-blocks",
		v(423.0, 0.0, 247.0, 0, 0), v(423.0, 330.0, 247.0, 0, 0),
		v(472.0, 330.0, 406.0, 0, 0), v(472.0, 0.0, 406.0, 0, 0))
	add("white-blocks",
		v(472.0, 0.0, 406.0, 0, 0), v(472.0, 330.0, 406.0, 0, 0),
		v(314.0, 330.0, 456.0, 0, 0), v(314.0, 0.0, 456.0, 0, 0))
	add("white-blocks",
		v(314.0, 0.0, 456.0, 0, 0), v(314.0, 330.0, 456.0, 0, 0),
		v(265.0, 330.0, 296.0, 0, 0), v(265.0, 0.0, 296.0, 0, 0))
	add("white-blocks",
		v(265.0, 0.0, 296.0, 0, 0), v(265.0, 330.0, 296.0, 0, 0),
		v(423.0, 330.0, 247.0, 0, 0), v(423.0, 0.0, 247.0, 0, 0))

	s.Finalize()
	return s, nil
}

// NewCornellSRGB takes a Cornell box and replaces some of its surfaces
// with an sRGB texture and a flat white, demonstrating reflectance
// upsampling against the texture path: the back and left walls become
// the texture, the blocks/floor/ceiling/green wall become flat white
// (reflectance 1), and the light is brightened and recolored to D65.
func NewCornellSRGB(dataDir, texturePath string, lightScale float32, cdata *color.Data) (*Scene, error) {
	s, err := NewCornell(dataDir)
	if err != nil {
		return nil, err
	}

	tex, err := texture.Load(texturePath)
	if err != nil {
		return nil, err
	}
	mtlTex := &Material{Kind: Lambertian, Albedo: Albedo{Texture: tex}}
	s.Materials["srgb"] = mtlTex

	white1Spec := spectral.Constant(1.0)
	mtlWhite1 := &Material{Kind: Lambertian, Albedo: Albedo{Constant: white1Spec}}
	s.Materials["white1"] = mtlWhite1

	replace := map[*Material]*Material{
		s.Materials["white-back"]:      mtlTex,
		s.Materials["white-blocks"]:    mtlWhite1,
		s.Materials["white-floorceil"]: mtlWhite1,
		s.Materials["green"]:           mtlWhite1,
		s.Materials["red"]:             mtlTex,
	}
	for _, p := range s.Primitives {
		if next, ok := replace[p.Material]; ok {
			p.Material = next
		}
	}

	s.Materials["light"].Emission = cdata.D65Rad.Scale(lightScale)

	s.Finalize()
	return s, nil
}
