package main

import "sync"

// Field evaluation is parallelized across a pool of goroutines that sleep on
// a condition variable between frames. Each step broadcast wakes every worker
// exactly once; the last worker to finish wakes the coordinator.

// startFieldWorkers launches the background goroutines that evaluate CPU
// field blocks.
func (g *Game) startFieldWorkers() {
	if g.workersStarted {
		return
	}
	if g.workerCount < 1 {
		g.workerCount = 1
	}
	if g.workerCond == nil {
		g.workerCond = sync.NewCond(&g.workerMu)
	}
	g.workersStarted = true
	for i := 0; i < g.workerCount; i++ {
		go g.fieldWorkerLoop(i)
	}
}

// fieldWorkerLoop evaluates the block rows assigned to one worker each time
// the coordinator advances the step counter.
func (g *Game) fieldWorkerLoop(index int) {
	lastStep := 0
	g.workerMu.Lock()
	for {
		for g.workerStep == lastStep {
			g.workerCond.Wait()
		}
		lastStep = g.workerStep
		g.workerMu.Unlock()

		g.field.evaluateBlockRows(index, g.workerCount)

		g.workerMu.Lock()
		g.workerPending--
		if g.workerPending == 0 {
			g.workerCond.Broadcast()
		}
	}
}

// evaluateFieldCPU runs one synchronous field evaluation across the worker
// pool. The field snapshot must be prepared before calling.
func (g *Game) evaluateFieldCPU() {
	g.workerMu.Lock()
	g.workerPending = g.workerCount
	g.workerStep++
	g.workerCond.Broadcast()
	for g.workerPending > 0 {
		g.workerCond.Wait()
	}
	g.workerMu.Unlock()
}
