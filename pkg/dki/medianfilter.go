package dki

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat"

	"dkimaps/pkg/volume"
)

// ApplyMedianFilter runs the outlier median post-filter over already
// assembled maps with a caller-supplied violation mask: it builds a one-shot
// policy, checks the activation threshold, and filters every scalar map when
// the flagged fraction exceeds it. It reports whether filtering activated.
// This is the entry point for callers that derive their violation mask from
// the computed maps themselves (for example, MK outside plausible bounds).
func ApplyMedianFilter(maps *Maps, violations *volume.Mask, threshold float64, kernel int) bool {
	policy := newMedianFilterPolicy(maps.Mask, violations, threshold, kernel)
	if !policy.active() {
		return false
	}
	policy.apply(maps)
	return true
}

// medianFilterPolicy decides whether the outlier median post-filter runs and,
// when it does, applies it identically to every scalar map. A policy is built
// fresh from its inputs on every ComputeParameters call and discarded
// afterwards; it carries no cross-call state, so a stale violation mask or
// threshold can never leak into a later run.
type medianFilterPolicy struct {
	mask       *volume.Mask
	violations *volume.Mask
	threshold  float64
	kernel     int
}

func newMedianFilterPolicy(mask, violations *volume.Mask, threshold float64, kernel int) *medianFilterPolicy {
	if kernel < 1 {
		kernel = 3
	}
	return &medianFilterPolicy{
		mask:       mask,
		violations: violations,
		threshold:  threshold,
		kernel:     kernel,
	}
}

// fraction returns the share of in-mask voxels flagged as violating.
func (p *medianFilterPolicy) fraction() float64 {
	total := 0
	flagged := 0
	for i, in := range p.mask.Data {
		if !in {
			continue
		}
		total++
		if p.violations.Data[i] {
			flagged++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(flagged) / float64(total)
}

// active reports whether enough voxels violate to justify filtering.
func (p *medianFilterPolicy) active() bool {
	return p.fraction() > p.threshold
}

// apply replaces every flagged in-mask voxel's value, in every scalar map,
// with the median of that map's in-mask, non-NaN values inside the local
// cubic neighborhood (clipped at volume boundaries). Each map is filtered
// against a snapshot of its pre-filter state, so neighbor reads never observe
// partially filtered data; the same flagged voxel set is used for all maps,
// preserving inter-map spatial consistency.
func (p *medianFilterPolicy) apply(maps *Maps) {
	scalars := maps.ScalarMaps()

	var wg sync.WaitGroup
	for _, s := range scalars {
		wg.Add(1)
		go func(vol *volume.Volume) {
			defer wg.Done()
			p.filterMap(vol)
		}(s.Vol)
	}
	wg.Wait()
}

// filterMap filters one scalar map in place, reading from a snapshot.
func (p *medianFilterPolicy) filterMap(vol *volume.Volume) {
	snapshot := vol.Clone()
	half := p.kernel / 2
	window := make([]float64, 0, p.kernel*p.kernel*p.kernel)

	for z := 0; z < vol.Nz; z++ {
		for y := 0; y < vol.Ny; y++ {
			for x := 0; x < vol.Nx; x++ {
				idx := vol.Index(x, y, z)
				if !p.mask.Data[idx] || !p.violations.Data[idx] {
					continue
				}
				vol.Data[idx] = p.neighborhoodMedian(snapshot, x, y, z, half, window[:0])
			}
		}
	}
}

// neighborhoodMedian gathers the in-mask, non-NaN values of the cubic
// neighborhood around (x, y, z) from the snapshot and returns their median;
// NaN when the neighborhood holds no usable value at all.
func (p *medianFilterPolicy) neighborhoodMedian(snap *volume.Volume, x, y, z, half int, window []float64) float64 {
	for dz := -half; dz <= half; dz++ {
		zz := z + dz
		if zz < 0 || zz >= snap.Nz {
			continue
		}
		for dy := -half; dy <= half; dy++ {
			yy := y + dy
			if yy < 0 || yy >= snap.Ny {
				continue
			}
			for dx := -half; dx <= half; dx++ {
				xx := x + dx
				if xx < 0 || xx >= snap.Nx {
					continue
				}
				idx := snap.Index(xx, yy, zz)
				v := snap.Data[idx]
				if p.mask.Data[idx] && !math.IsNaN(v) {
					window = append(window, v)
				}
			}
		}
	}
	if len(window) == 0 {
		return math.NaN()
	}
	sort.Float64s(window)
	return stat.Quantile(0.5, stat.Empirical, window, nil)
}
