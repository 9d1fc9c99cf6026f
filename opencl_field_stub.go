//go:build !opencl

package main

import "errors"

type openCLFieldSolver struct{}

func newOpenCLFieldSolver(width, height int) (*openCLFieldSolver, error) {
	return nil, errors.New("OpenCL support is not enabled; rebuild with -tags opencl")
}

func (s *openCLFieldSolver) Compute(elements []element, t, speed float64) ([]float32, error) {
	return nil, errors.New("OpenCL solver unavailable")
}

func (s *openCLFieldSolver) Close() {}

func (s *openCLFieldSolver) DeviceName() string { return "" }
