// Command meshdemo builds coverage meshes for a few shapes and writes a CPU
// preview of them to a PNG file.
package main

import (
	"context"
	"flag"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/aamesh"
	"github.com/gogpu/aamesh/internal/preview"
)

func main() {
	var (
		width   = flag.Int("width", 640, "image width in pixels")
		height  = flag.Int("height", 480, "image height in pixels")
		scale   = flag.Float64("scale", 2, "device pixels per path unit")
		config  = flag.String("config", "", "optional TOML engine config")
		output  = flag.String("output", "meshdemo.png", "output file")
		verbose = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		aamesh.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := aamesh.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = loadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	p, err := aamesh.NewWithConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	s := float32(*scale)
	calls, colors := scene(s)
	results, err := p.BuildBatch(context.Background(), calls)
	if err != nil {
		log.Fatalf("Failed to build meshes: %v", err)
	}

	canvas := preview.NewCanvas(*width, *height, s)
	canvas.Clear(color.NRGBA{R: 24, G: 28, B: 36, A: 255})
	triangles := 0
	for i, res := range results {
		canvas.FillContours(res.Boundary, colors[i])
		canvas.DrawMesh(res.Mesh, colors[i])
		triangles += len(res.Mesh.Indices()) / 3
		if res.BooleanFailures > 0 {
			log.Printf("draw call %d: %d boolean operations fell back", i, res.BooleanFailures)
		}
	}

	if err := savePNG(*output, canvas); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Preview saved to %s (%dx%d, %d meshes, %d triangles)\n",
		*output, *width, *height, len(results), triangles)
}

// scene returns the demo draw calls and the preview color of each.
func scene(scale float32) ([]aamesh.DrawCall, []color.NRGBA) {
	var calls []aamesh.DrawCall
	var colors []color.NRGBA
	add := func(call aamesh.DrawCall, c color.NRGBA) {
		call.Scale = scale
		call.Style = aamesh.Solid(uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A))
		calls = append(calls, call)
		colors = append(colors, c)
	}

	// Filled rounded rectangle.
	rr := aamesh.NewPath()
	rr.RoundedRectangle(10, 10, 75, 75, 10)
	add(aamesh.DrawCall{Path: rr}, color.NRGBA{R: 230, G: 90, B: 70, A: 255})

	// Stroked circle.
	circle := aamesh.NewPath()
	circle.Circle(150, 50, 35)
	ring := aamesh.DefaultStroke().WithWidth(6).WithJoin(aamesh.LineJoinRound)
	add(aamesh.DrawCall{Path: circle, Stroke: &ring}, color.NRGBA{R: 90, G: 200, B: 120, A: 255})

	// Dashed zigzag with round caps.
	zigzag := aamesh.BuildPath().
		MoveTo(210, 80).LineTo(235, 20).LineTo(260, 80).LineTo(285, 20).LineTo(310, 80).
		Build()
	dashed := aamesh.RoundStroke().WithWidth(4).WithDashPattern(12, 6)
	add(aamesh.DrawCall{Path: zigzag, Stroke: &dashed}, color.NRGBA{R: 240, G: 200, B: 60, A: 255})

	// Star, turned a little about its centre, clipped to a circle with a
	// square cut out.
	turn := aamesh.Translate(60, 160).Multiply(aamesh.Rotate(0.3)).Multiply(aamesh.Translate(-60, -160))
	star := aamesh.BuildPath().Star(60, 160, 55, 22, 5).Build().Transform(turn)
	clip := aamesh.BuildPath().Circle(0, 0, 45).Build()
	cut := aamesh.BuildPath().Rect(-8, -8, 16, 16).Build()
	add(aamesh.DrawCall{
		Path: star,
		Options: []aamesh.DrawOption{
			aamesh.WithClip(clip),
			aamesh.WithDiff(cut),
			aamesh.WithClipOffset(aamesh.Pt(60, 160)),
		},
	}, color.NRGBA{R: 110, G: 150, B: 250, A: 255})

	// Mitered open polyline with square caps.
	poly := aamesh.BuildPath().MoveTo(130, 200).LineTo(170, 130).LineTo(210, 200).Build()
	miter := aamesh.SquareStroke().WithWidth(8)
	add(aamesh.DrawCall{Path: poly, Stroke: &miter}, color.NRGBA{R: 200, G: 120, B: 220, A: 255})

	return calls, colors
}

func loadConfig(name string) (aamesh.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return aamesh.Config{}, err
	}
	defer f.Close()
	return aamesh.LoadConfig(f)
}

func savePNG(name string, c *preview.Canvas) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, c.Image()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
