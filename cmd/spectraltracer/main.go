// Command spectraltracer renders one of a fixed set of built-in scenes
// with a spectral Monte Carlo path tracer and writes the result to an
// image file, chosen by the output path's extension.
//
// Usage:
//
//	spectraltracer --scene=cornell --width=512 --height=512 --samples=64 --output=out.png
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/geometrian/spectraltracer/color"
	"github.com/geometrian/spectraltracer/internal/imageio"
	"github.com/geometrian/spectraltracer/render"
	"github.com/geometrian/spectraltracer/scene"
)

const (
	exitOK           = 0
	exitBadArgs      = -1
	exitUnknownScene = -3
)

func main() {
	os.Exit(safeRun(os.Args[1:], os.Stderr))
}

// safeRun is the only place in this repository that recovers a panic: the
// scene/color/spectrum layers use spectral.InvariantViolation as a panic
// payload for conditions treated as fatal assertions (a degenerate
// spectrum, a scene with no light, a corrupted sample grid). Everywhere
// else a panic indicates a real bug and should crash the process.
func safeRun(args []string, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "spectraltracer: fatal: %v\n", r)
			code = exitBadArgs
		}
	}()
	return run(args, stderr)
}

// run parses arguments, renders, and returns the process exit code
// spec.md §6 specifies (0 success, −1 bad arguments, −3 unknown scene).
// It's split out from main so tests can exercise it without os.Exit.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("spectraltracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }

	var sceneName string
	fs.StringVar(&sceneName, "scene", "", "built-in scene to render (cornell, cornell-srgb, plane-srgb)")
	fs.StringVar(&sceneName, "s", "", "shorthand for --scene")

	var width int
	fs.IntVar(&width, "width", 0, "output image width in pixels")
	fs.IntVar(&width, "w", 0, "shorthand for --width")

	var height int
	fs.IntVar(&height, "height", 0, "output image height in pixels")
	fs.IntVar(&height, "h", 0, "shorthand for --height")

	var spp int
	fs.IntVar(&spp, "samples", 0, "samples per pixel")
	fs.IntVar(&spp, "spp", 0, "shorthand for --samples")

	var output string
	fs.StringVar(&output, "output", "", "output image path (.png, .hdr, .pfm, or .csv)")
	fs.StringVar(&output, "o", "", "shorthand for --output")

	var dataDir string
	fs.StringVar(&dataDir, "data", "data", "directory holding the CIE/CSV spectral data tables")

	var texturePath string
	fs.StringVar(&texturePath, "texture", "", "sRGB reflectance texture path (required for cornell-srgb/plane-srgb)")
	fs.StringVar(&texturePath, "t", "", "shorthand for --texture")

	var numWorkers int
	fs.IntVar(&numWorkers, "threads", 0, "worker thread count (0 = hardware concurrency)")

	fs.Bool("window", false, "accepted for compatibility; live preview is not implemented")

	if err := fs.Parse(args); err != nil {
		return exitBadArgs
	}

	if sceneName == "" || width <= 0 || height <= 0 || spp <= 0 || output == "" {
		fmt.Fprintln(stderr, "spectraltracer: missing or invalid required argument")
		printUsage(stderr)
		return exitBadArgs
	}

	if fs.NArg() > 0 {
		fmt.Fprintln(stderr, "spectraltracer: warning: ignoring extraneous argument(s):")
		for _, a := range fs.Args() {
			fmt.Fprintf(stderr, "  %q\n", a)
		}
	}

	cdata, err := color.Init(dataDir, color.Observer1931)
	if err != nil {
		fmt.Fprintf(stderr, "spectraltracer: loading color data: %v\n", err)
		return exitBadArgs
	}

	s, code := buildScene(sceneName, dataDir, texturePath, cdata, stderr)
	if s == nil {
		return code
	}
	s.Camera.ResX = width
	s.Camera.ResY = height
	s.Camera.Init()

	warnAboutELS(sceneName, stderr)

	opts := &render.Options{
		Scene:     s,
		ColorData: cdata,
		Upsampler: color.BasisUpsampler{Data: cdata},
		SPP:       spp,
		ELS:       render.ELSOn,
		FlatField: false,
	}

	fb := imageio.New(width, height)
	err = render.Render(opts, fb, numWorkers, stderr, func(f *imageio.Framebuffer) error {
		return f.Save(output)
	})
	if err != nil {
		fmt.Fprintf(stderr, "spectraltracer: %v\n", err)
		return exitBadArgs
	}
	return exitOK
}

// buildScene constructs the named built-in scene, or prints the
// unknown-scene hint and returns a nil scene with exitUnknownScene.
func buildScene(name, dataDir, texturePath string, cdata *color.Data, stderr io.Writer) (*scene.Scene, int) {
	switch name {
	case "cornell":
		s, err := scene.NewCornell(dataDir)
		if err != nil {
			fmt.Fprintf(stderr, "spectraltracer: building cornell scene: %v\n", err)
			return nil, exitBadArgs
		}
		return s, exitOK
	case "cornell-srgb":
		if texturePath == "" {
			fmt.Fprintln(stderr, "spectraltracer: cornell-srgb requires --texture=<path>")
			return nil, exitBadArgs
		}
		s, err := scene.NewCornellSRGB(dataDir, texturePath, 30.0, cdata)
		if err != nil {
			fmt.Fprintf(stderr, "spectraltracer: building cornell-srgb scene: %v\n", err)
			return nil, exitBadArgs
		}
		return s, exitOK
	case "plane-srgb":
		if texturePath == "" {
			fmt.Fprintln(stderr, "spectraltracer: plane-srgb requires --texture=<path>")
			return nil, exitBadArgs
		}
		s, err := scene.NewPlaneSRGB(texturePath, cdata)
		if err != nil {
			fmt.Fprintf(stderr, "spectraltracer: building plane-srgb scene: %v\n", err)
			return nil, exitBadArgs
		}
		return s, exitOK
	default:
		fmt.Fprintf(stderr, "spectraltracer: unrecognized scene %q (supported scenes: \"cornell\", \"cornell-srgb\", \"plane-srgb\")\n", name)
		return nil, exitUnknownScene
	}
}

// warnAboutELS prints the same convergence hint the original renderer
// prints: cornell-style scenes (small light, mostly-dark room) converge
// much faster with explicit light sampling on; the srgb demo scene
// (lit broadly from every side) converges faster with it off.
func warnAboutELS(sceneName string, stderr io.Writer) {
	if strings.HasPrefix(sceneName, "cornell") {
		return
	}
	fmt.Fprintln(stderr, "spectraltracer: warning: explicit light sampling converges slower for this scene; consider disabling it")
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `Simple Spectral: a simple spectral renderer for demonstration purposes
  Required arguments:
    --scene=<name>   / -s=<name>    Render the given built-in scene.
                                    (valid scenes: "cornell", "cornell-srgb", "plane-srgb")
    --width=<width>  / -w=<width>   Set the width of the render.
    --height=<height>/ -h=<height>  Set the height of the render.
    --samples=<n>    / -spp=<n>     Set the number of samples per pixel.
    --output=<path>  / -o=<path>    Set the path to the output image.
  Optional arguments:
    --texture=<path> / -t=<path>    sRGB texture (required for cornell-srgb/plane-srgb).
    --data=<dir>                    Spectral data directory (default "data").
    --threads=<n>                   Worker thread count (default: hardware concurrency).
`)
}
