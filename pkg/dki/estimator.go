// Package dki derives scalar and directional diffusion-kurtosis parameter
// maps from a voxel-wise 21-coefficient tensor field. For every voxel inside
// a region-of-interest mask it computes the conventional diffusion-tensor
// metrics (FA, MD, RD, AD, principal direction) and the kurtosis metrics
// (MK, RK, AK, KFA, MKT), then optionally suppresses physically implausible
// outlier voxels with a neighborhood median filter.
package dki

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/mat"

	"dkimaps/pkg/tensor"
	"dkimaps/pkg/volume"
)

// TensorChannels is the per-voxel coefficient count of a diffusion-kurtosis
// tensor field: 6 diffusion-tensor entries followed by 15 kurtosis entries.
const TensorChannels = 21

// wThreshold is the kurtosis-tensor norm below which the tensor is treated
// as degenerate and KFA is defined to be zero.
const wThreshold = 1e-3

// Params holds the estimation parameters.
type Params struct {
	// MedianFilter enables the outlier median post-filter over all output maps.
	MedianFilter bool

	// ViolationMask marks voxels considered physically implausible. What
	// counts as a violation is the caller's policy; the estimator only
	// consumes the resulting boolean volume. Required when MedianFilter is on.
	ViolationMask *volume.Mask

	// KMin and KMax bound the mean kurtosis tensor (MKT) map.
	KMin, KMax float64

	// ViolationThreshold is the fraction of in-mask voxels that must be
	// flagged before the median filter activates.
	ViolationThreshold float64

	// FilterKernelSize is the cubic neighborhood edge length of the median
	// filter, in voxels.
	FilterKernelSize int

	// NumWorkers is the number of goroutines used for the per-voxel stages.
	NumWorkers int

	// Verbose enables progress output on stdout.
	Verbose bool
}

// DefaultParams returns the standard estimation parameters: MKT bounded to
// [0, 3], a 10% violation threshold, a 3x3x3 filter kernel, and one worker
// per CPU core.
func DefaultParams() *Params {
	return &Params{
		KMin:               0,
		KMax:               3,
		ViolationThreshold: 0.10,
		FilterKernelSize:   3,
		NumWorkers:         runtime.NumCPU(),
	}
}

// Maps holds the output parameter maps. All maps share the input mask's
// spatial shape; voxels outside the mask are NaN.
type Maps struct {
	// FA is the fractional anisotropy of the diffusion tensor, in [0, 1].
	FA *volume.Volume

	// MD, RD, AD are the mean, radial, and axial diffusivities.
	MD, RD, AD *volume.Volume

	// MK, RK, AK are the mean, radial, and axial kurtosis.
	MK, RK, AK *volume.Volume

	// KFA is the kurtosis fractional anisotropy, in [0, 1].
	KFA *volume.Volume

	// MKT is the mean kurtosis tensor, clamped to [KMin, KMax].
	MKT *volume.Volume

	// FE is the principal diffusion direction, one unit 3-vector per voxel.
	FE *volume.Field

	// Mask is the processing mask the maps were computed under.
	Mask *volume.Mask
}

// NamedVolume pairs a scalar map with its conventional short name.
type NamedVolume struct {
	Name string
	Vol  *volume.Volume
}

// ScalarMaps returns the nine scalar maps in a stable order, for post-passes
// and export that must treat every map identically.
func (m *Maps) ScalarMaps() []NamedVolume {
	return []NamedVolume{
		{"fa", m.FA}, {"md", m.MD}, {"rd", m.RD}, {"ad", m.AD},
		{"mk", m.MK}, {"rk", m.RK}, {"ak", m.AK},
		{"kfa", m.KFA}, {"mkt", m.MKT},
	}
}

// Estimator computes the parameter maps for one tensor field. The per-voxel
// stages are embarrassingly parallel: every voxel depends only on its own
// coefficients and on shared read-only direction tables, so the estimator
// fans the packed voxel list out over a worker pool with disjoint output
// slots and no locking.
type Estimator struct {
	field  *volume.Field
	mask   *volume.Mask
	params *Params

	// shared direction machinery, built once per estimator
	sphere    [][3]float64
	adcSphere *mat.Dense
	akcSphere *mat.Dense
}

// NewEstimator creates an estimator for the given tensor field. A nil mask
// derives the default mask from the field (first channel finite); nil params
// select DefaultParams.
func NewEstimator(field *volume.Field, mask *volume.Mask, params *Params) *Estimator {
	if params == nil {
		params = DefaultParams()
	}
	return &Estimator{
		field:  field,
		mask:   mask,
		params: params,
	}
}

// ComputeParameters runs the full estimation pipeline and returns the output
// maps. It fails fast on structural problems (wrong channel count, non-3-D
// shape, mask shape mismatch, missing violation mask); numeric trouble inside
// single voxels never fails the batch and surfaces as NaN map values instead.
func (e *Estimator) ComputeParameters() (*Maps, error) {
	// Step 1: validate inputs
	if err := e.field.Validate(TensorChannels); err != nil {
		return nil, fmt.Errorf("invalid tensor field: %w", err)
	}
	if e.mask == nil {
		e.mask = e.field.DefaultMask()
	}
	if e.mask.Nx != e.field.Nx || e.mask.Ny != e.field.Ny || e.mask.Nz != e.field.Nz {
		return nil, fmt.Errorf("mask shape %dx%dx%d does not match field shape %dx%dx%d",
			e.mask.Nx, e.mask.Ny, e.mask.Nz, e.field.Nx, e.field.Ny, e.field.Nz)
	}
	if e.params.MedianFilter {
		if e.params.ViolationMask == nil {
			return nil, fmt.Errorf("median filtering requested without a violation mask")
		}
		if !e.mask.SameShape(e.params.ViolationMask) {
			return nil, fmt.Errorf("violation mask shape does not match processing mask")
		}
	}

	// Step 2: pack the in-mask voxels into a dense table
	indices, coeffs := e.field.Packed(e.mask)
	nvox := len(indices)
	if e.params.Verbose {
		fmt.Printf("Computing parameter maps for %d in-mask voxels...\n", nvox)
	}

	// Step 3: prepare the shared direction machinery
	e.sphere = tensor.Sphere256()
	e.adcSphere = tensor.ADCDesign(e.sphere)
	e.akcSphere = tensor.AKCDesign(e.sphere)

	// Step 4: mean kurtosis as one batched contraction over all voxels
	mk := e.meanKurtosisBatch(coeffs, nvox)

	// Step 5: per-voxel eigen stage and directional sampling
	res := e.computeVoxelwise(coeffs, nvox)

	// Step 6: scatter packed results into NaN-initialized maps
	maps := e.assembleMaps(indices, mk, res)

	// Step 7: outlier median post-filter
	if e.params.MedianFilter {
		policy := newMedianFilterPolicy(e.mask, e.params.ViolationMask,
			e.params.ViolationThreshold, e.params.FilterKernelSize)
		if policy.active() {
			if e.params.Verbose {
				fmt.Printf("Median filter active: %.1f%% of in-mask voxels flagged\n",
					100*policy.fraction())
			}
			policy.apply(maps)
		} else if e.params.Verbose {
			fmt.Printf("Median filter skipped: %.1f%% of in-mask voxels flagged (threshold %.1f%%)\n",
				100*policy.fraction(), 100*e.params.ViolationThreshold)
		}
	}

	return maps, nil
}

// meanKurtosisBatch computes MK for every packed voxel at once: the diffusion
// and kurtosis coefficient tables are multiplied against the shared
// 256-direction design matrices, giving per-voxel, per-direction ADC and
// quartic contractions, and MK is the direction average of the normalized
// kurtosis. Directions with non-positive ADC are undefined and excluded by
// turning the whole voxel NaN, matching the per-direction AKC contract.
func (e *Estimator) meanKurtosisBatch(coeffs []float64, nvox int) []float64 {
	mk := make([]float64, nvox)
	if nvox == 0 {
		return mk
	}

	dCoef := mat.NewDense(nvox, 6, nil)
	wCoef := mat.NewDense(nvox, 15, nil)
	for v := 0; v < nvox; v++ {
		row := coeffs[v*TensorChannels : (v+1)*TensorChannels]
		dCoef.SetRow(v, row[:6])
		wCoef.SetRow(v, row[6:])
	}

	ndir := len(e.sphere)
	var adc, quartic mat.Dense
	adc.Mul(dCoef, e.adcSphere.T())
	quartic.Mul(wCoef, e.akcSphere.T())

	for v := 0; v < nvox; v++ {
		md := (dCoef.At(v, 0) + dCoef.At(v, 3) + dCoef.At(v, 5)) / 3
		sum := 0.0
		for k := 0; k < ndir; k++ {
			a := adc.At(v, k)
			if a <= 0 {
				sum = math.NaN()
				break
			}
			sum += quartic.At(v, k) * md * md / (a * a)
		}
		mk[v] = sum / float64(ndir)
	}
	return mk
}

// voxelResult holds the per-voxel outputs produced by the worker stage.
type voxelResult struct {
	fa, md, rd, ad float64
	ak, rk         float64
	kfa, mkt       float64
	fe             [3]float64
}

// computeVoxelwise runs the eigen-decomposition, axial/radial kurtosis
// sampling, and the closed-form KFA/MKT over the packed voxel list. The list
// is split into contiguous chunks, one goroutine per chunk; every voxel owns
// a disjoint result slot, so the workers share nothing mutable.
func (e *Estimator) computeVoxelwise(coeffs []float64, nvox int) []voxelResult {
	res := make([]voxelResult, nvox)

	workers := e.params.NumWorkers
	if workers < 1 {
		workers = 1
	}
	if workers > nvox {
		workers = nvox
	}
	if nvox == 0 {
		return res
	}

	var wg sync.WaitGroup
	chunk := (nvox + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > nvox {
			hi = nvox
		}
		if lo >= hi {
			break
		}

		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for v := lo; v < hi; v++ {
				row := coeffs[v*TensorChannels : (v+1)*TensorChannels]
				res[v] = computeVoxel(row)
			}
		}(lo, hi)
	}
	wg.Wait()

	return res
}

// computeVoxel derives one voxel's parameters from its 21 coefficients.
func computeVoxel(row []float64) voxelResult {
	var t [21]float64
	copy(t[:], row)
	var d [6]float64
	copy(d[:], row[:6])

	var r voxelResult

	sys := tensor.DecomposeDT(d)
	r.fa = sys.FA()
	r.md = sys.MD()
	r.rd = sys.RD()
	r.ad = sys.AD()
	r.fe = sys.Vectors[0]

	if sys.Ok {
		// Axial kurtosis: the principal axis sampled both ways.
		e1 := sys.Vectors[0]
		axial := [][3]float64{e1, {-e1[0], -e1[1], -e1[2]}}
		r.ak = mean(tensor.AKC(t, axial))

		// Radial kurtosis: the equatorial ring orthogonal to the principal axis.
		ring := tensor.EquatorialDirections(e1, 256)
		r.rk = mean(tensor.AKC(t, ring))
	} else {
		r.ak = math.NaN()
		r.rk = math.NaN()
	}

	r.kfa, r.mkt = kurtosisTensorMetrics(t)
	return r
}

// mean averages the values, propagating NaN if any entry is undefined: a
// single undefined direction makes the whole sampled average undefined.
func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

// Positions of the fully-diagonal (W1111, W2222, W3333) and mixed-diagonal
// (W1122, W1133, W2233) coefficients within the 15-entry kurtosis ordering.
var (
	wDiagIdx  = [3]int{0, 10, 14}
	wMixedIdx = [3]int{3, 12, 5}
)

// kurtosisTensorMetrics computes KFA and the raw isotropic average of the
// kurtosis tensor directly from the 15 unique coefficients, no directional
// sampling involved.
//
// Wbar is the isotropic average (W1111+W2222+W3333 + 2*(W1122+W1133+W2233))/5.
// KFA is the ratio of the Frobenius norm of the anisotropic deviation
// (diagonal-family terms shifted by Wbar, mixed-diagonal terms by Wbar/3)
// to the Frobenius norm of the full tensor; near-zero norms (< 1e-3) define
// KFA as 0 to avoid amplifying noise in near-isotropic tensors.
func kurtosisTensorMetrics(t [21]float64) (kfa, wbar float64) {
	w := t[6:]

	wbar = (w[wDiagIdx[0]] + w[wDiagIdx[1]] + w[wDiagIdx[2]] +
		2*(w[wMixedIdx[0]]+w[wMixedIdx[1]]+w[wMixedIdx[2]])) / 5

	// Frobenius-like norms with multinomial multiplicities.
	var full, diff float64
	for c := 0; c < 15; c++ {
		x := w[c]
		dx := x
		switch c {
		case wDiagIdx[0], wDiagIdx[1], wDiagIdx[2]:
			dx = x - wbar
		case wMixedIdx[0], wMixedIdx[1], wMixedIdx[2]:
			dx = x - wbar/3
		}
		cnt := basis4Multiplicity(c)
		full += cnt * x * x
		diff += cnt * dx * dx
	}
	wf := math.Sqrt(full)

	switch {
	case math.IsNaN(wf):
		kfa = math.NaN()
	case wf < wThreshold:
		kfa = 0
	default:
		kfa = math.Sqrt(diff) / wf
	}
	return kfa, wbar
}

// basis4Multiplicity returns the multinomial multiplicity of the c-th unique
// kurtosis coefficient, via the shared tensor basis table.
func basis4Multiplicity(c int) float64 {
	return kurtosisMultiplicities[c]
}

var kurtosisMultiplicities = mustKurtosisMultiplicities()

func mustKurtosisMultiplicities() []float64 {
	_, cnt, err := tensor.Basis(4)
	if err != nil {
		panic(err)
	}
	return cnt
}

// assembleMaps scatters the packed per-voxel results into NaN-initialized
// volumes sharing the mask's spatial shape, applying the MKT clamp.
func (e *Estimator) assembleMaps(indices []int, mk []float64, res []voxelResult) *Maps {
	nx, ny, nz := e.mask.Nx, e.mask.Ny, e.mask.Nz
	maps := &Maps{
		FA:   volume.NewNaNVolume(nx, ny, nz),
		MD:   volume.NewNaNVolume(nx, ny, nz),
		RD:   volume.NewNaNVolume(nx, ny, nz),
		AD:   volume.NewNaNVolume(nx, ny, nz),
		MK:   volume.NewNaNVolume(nx, ny, nz),
		RK:   volume.NewNaNVolume(nx, ny, nz),
		AK:   volume.NewNaNVolume(nx, ny, nz),
		KFA:  volume.NewNaNVolume(nx, ny, nz),
		MKT:  volume.NewNaNVolume(nx, ny, nz),
		FE:   volume.NewNaNField(nx, ny, nz, 3),
		Mask: e.mask,
	}

	for v, idx := range indices {
		maps.FA.Data[idx] = res[v].fa
		maps.MD.Data[idx] = res[v].md
		maps.RD.Data[idx] = res[v].rd
		maps.AD.Data[idx] = res[v].ad
		maps.MK.Data[idx] = mk[v]
		maps.RK.Data[idx] = res[v].rk
		maps.AK.Data[idx] = res[v].ak
		maps.KFA.Data[idx] = res[v].kfa
		maps.MKT.Data[idx] = clamp(res[v].mkt, e.params.KMin, e.params.KMax)

		fe := maps.FE.Voxel(idx)
		fe[0] = res[v].fe[0]
		fe[1] = res[v].fe[1]
		fe[2] = res[v].fe[2]
	}
	return maps
}

// clamp bounds v into [lo, hi], leaving NaN untouched.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
