//go:build opencl

package main

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"
)

// openCLFieldSolver evaluates the full-resolution interference field on an
// OpenCL device. Per-element position and delay buffers are uploaded each
// frame; the kernel computes the normalized amplitude for every pixel.
type openCLFieldSolver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	posXBuf    *cl.MemObject
	posYBuf    *cl.MemObject
	delayBuf   *cl.MemObject
	outBuf     *cl.MemObject
	width      int
	height     int
	deviceName string

	posX   []float32
	posY   []float32
	delays []float32
	out    []float32
}

const fieldKernelSource = `__kernel void amplitude_field(
    const int width,
    const int height,
    const int count,
    const float t,
    const float speed,
    const float freq,
    __global const float* pos_x,
    __global const float* pos_y,
    __global const float* delays,
    __global float* out)
{
    int idx = get_global_id(0);
    int size = width * height;
    if (idx >= size) {
        return;
    }
    float px = (float)(idx % width);
    float py = (float)(idx / width);
    float sum = 0.0f;
    int n = 0;
    for (int i = 0; i < count; i++) {
        float dly = delays[i];
        if (t < dly) {
            continue;
        }
        float dx = px - pos_x[i];
        float dy = py - pos_y[i];
        float dist = sqrt(dx * dx + dy * dy);
        float arrival = t - dly - dist / speed;
        if (arrival < 0.0f) {
            continue;
        }
        float phase = arrival * 6.28318530718f * freq;
        sum += 0.5f * sin(phase) + 0.5f;
        n++;
    }
    out[idx] = (n == 0) ? 0.0f : sum / (float)n;
}`

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	var device *cl.Device
	for _, p := range platforms {
		devices, derr := p.GetDevices(cl.DeviceTypeGPU)
		if derr != nil && derr != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			device = devices[0]
			break
		}
	}
	if device == nil {
		for _, p := range platforms {
			devices, derr := p.GetDevices(cl.DeviceTypeCPU)
			if derr != nil && derr != cl.ErrDeviceNotFound {
				continue
			}
			if len(devices) > 0 {
				device = devices[0]
				break
			}
		}
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	context, err := cl.CreateContext([]*cl.Device{device})
	if err != nil {
		return nil, fmt.Errorf("creating OpenCL context: %w", err)
	}
	queue, err := context.CreateCommandQueue(device, 0)
	if err != nil {
		context.Release()
		return nil, fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	program, err := context.CreateProgramWithSource([]string{fieldKernelSource})
	if err != nil {
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		program.Release()
		queue.Release()
		context.Release()
		if buildErr, ok := err.(cl.BuildError); ok {
			return nil, fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return nil, fmt.Errorf("building OpenCL program: %w", err)
	}
	kernel, err := program.CreateKernel("amplitude_field")
	if err != nil {
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	floatSize := int(unsafe.Sizeof(float32(0)))
	elemBytes := maxFieldElements * floatSize
	posXBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, elemBytes)
	if err != nil {
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating element x buffer: %w", err)
	}
	posYBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, elemBytes)
	if err != nil {
		posXBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating element y buffer: %w", err)
	}
	delayBuf, err := context.CreateEmptyBuffer(cl.MemReadOnly, elemBytes)
	if err != nil {
		posYBuf.Release()
		posXBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating delay buffer: %w", err)
	}
	size := width * height
	outBuf, err := context.CreateEmptyBuffer(cl.MemWriteOnly, size*floatSize)
	if err != nil {
		delayBuf.Release()
		posYBuf.Release()
		posXBuf.Release()
		kernel.Release()
		program.Release()
		queue.Release()
		context.Release()
		return nil, fmt.Errorf("allocating output buffer: %w", err)
	}

	return &openCLFieldSolver{
		context:    context,
		queue:      queue,
		program:    program,
		kernel:     kernel,
		posXBuf:    posXBuf,
		posYBuf:    posYBuf,
		delayBuf:   delayBuf,
		outBuf:     outBuf,
		width:      width,
		height:     height,
		deviceName: device.Name(),
		posX:       make([]float32, maxFieldElements),
		posY:       make([]float32, maxFieldElements),
		delays:     make([]float32, maxFieldElements),
		out:        make([]float32, size),
	}, nil
}

// Compute evaluates the field for the given element set and time. The
// returned slice is reused between calls.
func (s *openCLFieldSolver) Compute(elements []element, t, speed float64) ([]float32, error) {
	count := len(elements)
	if count > maxFieldElements {
		count = maxFieldElements
	}
	for i := 0; i < count; i++ {
		s.posX[i] = float32(elements[i].x)
		s.posY[i] = float32(elements[i].y)
		s.delays[i] = float32(elements[i].delay)
	}
	if count > 0 {
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.posXBuf, false, 0, s.posX[:count], nil); err != nil {
			return nil, fmt.Errorf("writing element x buffer: %w", err)
		}
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.posYBuf, false, 0, s.posY[:count], nil); err != nil {
			return nil, fmt.Errorf("writing element y buffer: %w", err)
		}
		if _, err := s.queue.EnqueueWriteBufferFloat32(s.delayBuf, false, 0, s.delays[:count], nil); err != nil {
			return nil, fmt.Errorf("writing delay buffer: %w", err)
		}
	}
	if err := s.kernel.SetArgs(
		int32(s.width),
		int32(s.height),
		int32(count),
		float32(t),
		float32(speed),
		float32(visualizationFreqHz),
		s.posXBuf,
		s.posYBuf,
		s.delayBuf,
		s.outBuf,
	); err != nil {
		return nil, fmt.Errorf("setting kernel arguments: %w", err)
	}
	global := []int{s.width * s.height}
	if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
		return nil, fmt.Errorf("enqueueing kernel: %w", err)
	}
	if _, err := s.queue.EnqueueReadBufferFloat32(s.outBuf, true, 0, s.out, nil); err != nil {
		return nil, fmt.Errorf("reading output buffer: %w", err)
	}
	return s.out, nil
}

func (s *openCLFieldSolver) Close() {
	if s.outBuf != nil {
		s.outBuf.Release()
		s.outBuf = nil
	}
	if s.delayBuf != nil {
		s.delayBuf.Release()
		s.delayBuf = nil
	}
	if s.posYBuf != nil {
		s.posYBuf.Release()
		s.posYBuf = nil
	}
	if s.posXBuf != nil {
		s.posXBuf.Release()
		s.posXBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

func (s *openCLFieldSolver) DeviceName() string {
	return s.deviceName
}
