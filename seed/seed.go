// Package seed generates initial populations for the engine.
//
// Generators only return coordinates; callers hand them to Engine.SetAlive, so every
// seed goes through the engine's bounds checking.
package seed

import (
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	// perlinAlpha is the weight given to each successive octave
	perlinAlpha = 2.
	// perlinBeta is the frequency harmonic between octaves
	perlinBeta = 2.
	// perlinOctaves is the number of noise iterations summed
	perlinOctaves = 3
)

// ErrInvalidParams is returned for densities, scales or dimensions that cannot produce a seed
var ErrInvalidParams = errors.New("invalid seed parameters")

// Random picks each cell of a width × height grid independently with probability density
func Random(width, height int, density float64, rng *rand.Rand) ([]model.Coord, error) {
	if width <= 0 || height <= 0 || density < 0 || density > 1 {
		return nil, errors.Wrapf(ErrInvalidParams, "[Random] %dx%d density=%v", width, height, density)
	}

	var live []model.Coord
	for row := range height {
		for col := range width {
			if rng.Float64() < density {
				live = append(live, model.Coord{Col: col, Row: row})
			}
		}
	}
	return live, nil
}

// Scatter picks count cells uniformly at random, duplicates allowed
func Scatter(width, height, count int, rng *rand.Rand) []model.Coord {
	if width <= 0 || height <= 0 || count <= 0 {
		return nil
	}
	live := make([]model.Coord, count)
	for i := range live {
		live[i] = model.Coord{Col: rng.IntN(width), Row: rng.IntN(height)}
	}
	return live
}

// Noise marks the cells where 2D Perlin noise exceeds threshold, producing clustered
// blobs instead of uniform static. scale is the number of cells per noise unit.
func Noise(width, height int, scale, threshold float64, seed int64) ([]model.Coord, error) {
	if width <= 0 || height <= 0 || scale <= 0 {
		return nil, errors.Wrapf(ErrInvalidParams, "[Noise] %dx%d scale=%v", width, height, scale)
	}

	p := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)

	var live []model.Coord
	for row := range height {
		for col := range width {
			// Sample cell centers; the noise is exactly 0 on integer lattice points
			if p.Noise2D((float64(col)+0.5)/scale, (float64(row)+0.5)/scale) > threshold {
				live = append(live, model.Coord{Col: col, Row: row})
			}
		}
	}
	return live, nil
}
