package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"dkimaps/internal/io"
	"dkimaps/pkg/config"
	"dkimaps/pkg/dki"
	"dkimaps/pkg/volume"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "dkimaps.yaml", "YAML configuration file (optional)")
	inputPath := flag.String("input", "", "4-D NIfTI tensor field (21 coefficients per voxel)")
	maskPath := flag.String("mask", "", "3-D NIfTI brain mask (default: derived from the tensor field)")
	violationPath := flag.String("violation", "", "3-D NIfTI violation mask for the median filter (default: MK outside [kmin, kmax])")
	outputDir := flag.String("output", "", "Output directory for the parameter maps")
	numWorkers := flag.Int("cores", 0, "Number of worker goroutines (default: from config)")
	medianFilter := flag.Bool("median-filter", false, "Enable the outlier median post-filter")
	kMin := flag.Float64("kmin", math.NaN(), "Lower MKT clamp bound (default: from config)")
	kMax := flag.Float64("kmax", math.NaN(), "Upper MKT clamp bound (default: from config)")
	threshold := flag.Float64("threshold", math.NaN(), "Violation fraction that activates the median filter")
	kernel := flag.Int("kernel", 0, "Median filter kernel edge length in voxels")
	exportNpy := flag.Bool("npy", false, "Also export each map as an npy array")
	flag.Parse()

	// Validate inputs
	if *inputPath == "" {
		flag.Usage()
		os.Exit(1)
	}

	// Load configuration; flags override config values when set
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *numWorkers > 0 {
		cfg.Processing.NumWorkers = *numWorkers
	}
	if *medianFilter {
		cfg.Processing.MedianFilter = true
	}
	if !math.IsNaN(*threshold) {
		cfg.Processing.ViolationThreshold = *threshold
	}
	if *kernel > 0 {
		cfg.Processing.FilterKernelSize = *kernel
	}
	if !math.IsNaN(*kMin) {
		cfg.Kurtosis.KMin = *kMin
	}
	if !math.IsNaN(*kMax) {
		cfg.Kurtosis.KMax = *kMax
	}
	if *outputDir != "" {
		cfg.Output.Dir = *outputDir
	}
	if *exportNpy {
		cfg.Output.ExportNpy = true
	}

	fmt.Println("================================")
	fmt.Println("DKIMAPS - DIFFUSION KURTOSIS PARAMETER MAPPING")
	fmt.Println("================================")

	// Load the tensor field and optional masks
	fmt.Printf("Loading tensor field from %s...\n", *inputPath)
	field, err := io.LoadTensorField(*inputPath)
	if err != nil {
		log.Fatalf("Failed to load tensor field: %v", err)
	}
	fmt.Printf("Loaded %dx%dx%d volume with %d coefficients per voxel\n",
		field.Nx, field.Ny, field.Nz, field.Channels)

	var mask *volume.Mask
	if *maskPath != "" {
		mask, err = io.LoadMask(*maskPath)
		if err != nil {
			log.Fatalf("Failed to load mask: %v", err)
		}
	}

	var violations *volume.Mask
	if *violationPath != "" {
		violations, err = io.LoadMask(*violationPath)
		if err != nil {
			log.Fatalf("Failed to load violation mask: %v", err)
		}
	}

	// Build estimation parameters. When filtering was requested without an
	// explicit violation mask, the filter runs as a post-pass below with a
	// mask derived from the computed MK map instead.
	params := &dki.Params{
		KMin:               cfg.Kurtosis.KMin,
		KMax:               cfg.Kurtosis.KMax,
		ViolationThreshold: cfg.Processing.ViolationThreshold,
		FilterKernelSize:   cfg.Processing.FilterKernelSize,
		NumWorkers:         cfg.Processing.NumWorkers,
		Verbose:            cfg.Output.Verbose,
	}
	if cfg.Processing.MedianFilter && violations != nil {
		params.MedianFilter = true
		params.ViolationMask = violations
	}

	// Run the estimation pipeline
	fmt.Println("Computing parameter maps...")
	startTime := time.Now()
	maps, err := dki.NewEstimator(field, mask, params).ComputeParameters()
	if err != nil {
		log.Fatalf("Parameter estimation failed: %v", err)
	}

	// Post-pass median filter with a derived violation mask, CLI convenience
	// only: a voxel violates when its mean kurtosis falls outside the
	// configured [kmin, kmax] range.
	if cfg.Processing.MedianFilter && violations == nil {
		derived := deriveViolationMask(maps.MK, maps.Mask, cfg.Kurtosis.KMin, cfg.Kurtosis.KMax)
		if dki.ApplyMedianFilter(maps, derived, cfg.Processing.ViolationThreshold, cfg.Processing.FilterKernelSize) {
			fmt.Println("Median filter applied with derived violation mask")
		} else {
			fmt.Println("Median filter skipped: violation fraction below threshold")
		}
	}
	fmt.Printf("Parameter maps computed in %.2f seconds\n", time.Since(startTime).Seconds())

	// Write one NIfTI per map, plus the principal direction field
	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		log.Fatalf("Failed to create output directory: %v", err)
	}
	for _, m := range maps.ScalarMaps() {
		outPath := filepath.Join(cfg.Output.Dir, m.Name+".nii")
		if err := io.SaveVolume(outPath, m.Vol, *inputPath); err != nil {
			log.Fatalf("Failed to write %s: %v", outPath, err)
		}
		if cfg.Output.ExportNpy {
			npyPath := filepath.Join(cfg.Output.Dir, m.Name+".npy")
			if err := io.SaveVolumeNpy(npyPath, m.Vol); err != nil {
				log.Fatalf("Failed to write %s: %v", npyPath, err)
			}
		}
	}
	fePath := filepath.Join(cfg.Output.Dir, "fe.nii")
	if err := io.SaveField(fePath, maps.FE, *inputPath); err != nil {
		log.Fatalf("Failed to write %s: %v", fePath, err)
	}

	fmt.Printf("All maps written to %s\n", cfg.Output.Dir)
}

// deriveViolationMask flags in-mask voxels whose mean kurtosis falls outside
// the plausible [kMin, kMax] range. NaN voxels are never flagged; they carry
// no usable value to filter.
func deriveViolationMask(mk *volume.Volume, mask *volume.Mask, kMin, kMax float64) *volume.Mask {
	v := volume.NewMask(mk.Nx, mk.Ny, mk.Nz)
	for i, val := range mk.Data {
		if !mask.Data[i] || math.IsNaN(val) {
			continue
		}
		v.Data[i] = val < kMin || val > kMax
	}
	return v
}
