package mandelbrot

import (
	"fmt"
	"sort"
	"strings"
)

// Landmark is a named view of the Mandelbrot set, expressed in the viewer's
// center/zoom model. Zoom is chosen so the landmark's real-axis span fills
// the viewport.
type Landmark struct {
	Name             string
	CenterX, CenterY float64
	Zoom             float64
}

// View returns the landmark's view state.
func (l Landmark) View() View {
	return View{CenterX: l.CenterX, CenterY: l.CenterY, Zoom: l.Zoom}
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Home – the whole set, the view every session starts from
	Home = Landmark{"home", -0.5, 0, 1}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Landmark{"seahorse", -0.75, 0.10, 20}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Landmark{"elephant", -1.80, -0.06, 20}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Landmark{"minibrot", -0.74275, 0.13175, 1300}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Landmark{"triplespiral", -0.7465, 0.0965, 650}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Landmark{"dragon", -0.7375, 0.1825, 400}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Landmark{"minispiral", -1.73825, -0.02275, 1300}
)

var landmarks = map[string]Landmark{
	Home.Name:                 Home,
	SeahorseValley.Name:       SeahorseValley,
	ElephantValley.Name:       ElephantValley,
	SpiralMinibrot.Name:       SpiralMinibrot,
	TripleSpiral.Name:         TripleSpiral,
	ValleyOfTheDragon.Name:    ValleyOfTheDragon,
	MinibrotInMiniSpiral.Name: MinibrotInMiniSpiral,
}

// LookupLandmark resolves a landmark by name (case-insensitive).
func LookupLandmark(name string) (Landmark, error) {
	l, ok := landmarks[strings.ToLower(name)]
	if !ok {
		return Landmark{}, fmt.Errorf("unknown landmark %q (known: %s)", name, strings.Join(LandmarkNames(), ", "))
	}
	return l, nil
}

// LandmarkNames lists the known landmark names, sorted.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
