// blendsim runs a camera rig headlessly: it loads a profile, chases a
// circling target, fires a shake preset partway through, and prints sampled
// camera state. Useful for eyeballing tuning changes without a game build.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/blend/profile"
)

func main() {
	var (
		profilePath = flag.String("profile", "default.yaml", "camera profile to load")
		steps       = flag.Int("steps", 600, "simulation steps")
		dt          = flag.Float64("dt", 1.0/60, "seconds per step")
		shakeAt     = flag.Int("shake-at", 300, "step to trigger the hit shake, -1 disables")
		sample      = flag.Int("sample", 30, "print every N steps")
	)
	flag.Parse()

	spec, err := profile.LoadRigSpec(*profilePath)
	if err != nil {
		log.Fatal(err)
	}

	elapsed := 0.0
	target := func() cp.Vector {
		return cp.Vector{
			X: 1024 + 400*math.Cos(elapsed*0.7),
			Y: 576 + 220*math.Sin(elapsed*0.9),
		}
	}

	rig, err := profile.Build(spec, target)
	if err != nil {
		log.Fatal(err)
	}

	for i := 0; i < *steps; i++ {
		elapsed += *dt

		if i == *shakeAt {
			shake, err := profile.BuildShake(spec, "hit", int64(i))
			if err != nil {
				log.Printf("blendsim: %v", err)
			} else {
				rig.Position.AddOffset(shake)
			}
		}

		rig.Update(*dt)

		if *sample > 0 && i%*sample == 0 {
			at := rig.At()
			fmt.Printf("t=%6.2fs pos=(%8.2f, %8.2f) zoom=%.2f\n", elapsed, at.X, at.Y, rig.ZoomLevel())
		}
	}
}
