// Command curves builds parametric curves from form-like parameters, prints
// their positions and derivatives and optionally exports a tube mesh,
// a shaded preview and a projection plot.
//
// Example:
//
//	curves -type Helix -radius 2 -step 1 -axis X -angle 30 -offsetz 1 -stl helix.stl -png helix.png
package main

import (
	"bytes"
	"flag"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/soypat/curves"
	"github.com/soypat/curves/factory"
	"github.com/soypat/curves/render"
	"github.com/soypat/curves/report"
)

func main() {
	var parms factory.Parms
	flag.StringVar(&parms.Type, "type", "", "curve type: Circle, Ellipse or Helix. Empty uses the default set")
	flag.StringVar(&parms.Radius, "radius", "2", "radius, or X radius of an ellipse")
	flag.StringVar(&parms.RadiusY, "radiusy", "3", "Y radius of an ellipse")
	flag.StringVar(&parms.Step, "step", "1", "helix rise per revolution")
	flag.StringVar(&parms.OffsetX, "offsetx", "0", "world space X offset")
	flag.StringVar(&parms.OffsetY, "offsety", "0", "world space Y offset")
	flag.StringVar(&parms.OffsetZ, "offsetz", "0", "world space Z offset")
	flag.StringVar(&parms.RotationAxis, "axis", "Z", `rotation axis: X, Y, Z or "x,y,z"`)
	flag.StringVar(&parms.AngleDegrees, "angle", "0", "rotation angle in degrees")
	random := flag.Int("random", 0, "append this many random curves")
	seed := flag.Int64("seed", 0, "random seed, 0 uses the current time")
	evalT := flag.Float64("t", math.Pi/4, "parameter at which curves are evaluated")
	t0 := flag.Float64("t0", render.DefaultSampler.T0, "sampling start parameter")
	t1 := flag.Float64("t1", render.DefaultSampler.T1, "sampling end parameter")
	n := flag.Int("n", render.DefaultSampler.N, "number of samples")
	workers := flag.Int("workers", 1, "goroutines used for sampling")
	tubeRadius := flag.Float64("tube", 0.05, "tube radius of the exported mesh")
	sides := flag.Int("sides", 12, "tube cross section vertices")
	stlPath := flag.String("stl", "", "write tube mesh of the first curve to this STL file")
	pngPath := flag.String("png", "", "write a shaded preview of the STL to this PNG file (requires -stl)")
	plotPath := flag.String("plot", "", "write a projection plot of all curves (format from extension)")
	plane := flag.String("plane", "XY", "projection plane of -plot: XY, XZ or YZ")
	show := flag.String("kind", "All", "only show curves of this type: All, Circle, Ellipse or Helix")
	flag.Parse()

	var kind curves.Kind
	if *show != "All" {
		var err error
		kind, err = curves.ParseKind(*show)
		if err != nil {
			log.Fatal(err)
		}
	}

	var set []curves.Curve3
	if parms.Type == "" {
		set = factory.Defaults()
	} else {
		c, err := factory.Build(parms)
		if err != nil {
			log.Fatal(err)
		}
		set = append(set, c)
	}
	if *random > 0 {
		if *seed == 0 {
			*seed = time.Now().UnixNano()
		}
		log.Printf("random seed %d", *seed)
		set = append(set, factory.Random(rand.New(rand.NewSource(*seed)), *random)...)
	}

	set = report.Filter(set, kind)
	if len(set) == 0 {
		log.Fatalf("no %s curves to show", kind)
	}
	err := report.Write(os.Stdout, report.Evaluate(set, *evalT), report.Circles(set))
	if err != nil {
		log.Fatal(err)
	}

	sampler := render.Sampler{T0: *t0, T1: *t1, N: *n, Concurrent: *workers}
	if *stlPath != "" {
		tstart := time.Now()
		tube, err := render.NewTubeRenderer(set[0], sampler, *tubeRadius, *sides)
		if err != nil {
			log.Fatal(err)
		}
		if err = render.CreateSTL(*stlPath, tube); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s in %s", *stlPath, time.Since(tstart).Round(time.Millisecond))
		if *pngPath != "" {
			if err = render.STLToPNG(*stlPath, *pngPath, render.DefaultView); err != nil {
				log.Fatal(err)
			}
			log.Printf("wrote %s", *pngPath)
		}
	} else if *pngPath != "" {
		log.Fatal("-png requires -stl")
	}

	if *plotPath != "" {
		pl, err := render.ParsePlane(*plane)
		if err != nil {
			log.Fatal(err)
		}
		format := strings.TrimPrefix(filepath.Ext(*plotPath), ".")
		var buf bytes.Buffer
		if err = render.PlotProjection(&buf, format, pl, sampler, set...); err != nil {
			log.Fatal(err)
		}
		if err = os.WriteFile(*plotPath, buf.Bytes(), 0o644); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *plotPath)
	}
}
