package main

import "flag"

// Command-line flags that control optional rendering, simulation, and runtime
// behavior.
var (
	// sceneFlag selects a YAML scene preset to load at startup.
	sceneFlag = flag.String("scene", "", "path to a YAML scene preset")

	// showFieldFlag toggles the full-canvas interference field heatmap.
	showFieldFlag = flag.Bool("show-field", true, "render the interference field heatmap")

	// fieldDownsampleFlag sets the block size used by the CPU field
	// evaluator; larger blocks are cheaper and coarser.
	fieldDownsampleFlag = flag.Int("field-downsample", defaultFieldDownsample, "CPU heatmap block size in pixels")

	// useGPUFlag enables the OpenCL field evaluator when the binary was
	// built with -tags opencl and a device is available.
	useGPUFlag = flag.Bool("gpu", true, "use the OpenCL field evaluator when available")

	// enableAudioFlag toggles the audible focus tone driven by the
	// interference amplitude at the active target.
	enableAudioFlag = flag.Bool("enable-audio", false, "enable the focus tone sonification")

	// recordPGOFlag sweeps the focus target for 15s while capturing default.pgo.
	recordPGOFlag = flag.Bool("record-pgo", false, "sweep the focus target while capturing default.pgo")

	// debugFlag enables the FPS and simulation overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and simulation state overlay")
)
