package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split frame into blocks of variable height and assign to the pool
	// of tracers.
	//
	// This function returns the block height assignment for each tracer
	// in the input list. Assignments always add up to frameH.
	Schedule(tracers []Tracer, frameH uint32) []uint32
}

// The naive scheduler splits the frame rows based on each tracer's speed estimate.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (sch naiveScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	return speedBasedAssignment(tracers, frameH)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent frames is approximately the same.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split frame into blocks of variable height and assign to the pool
// of tracers using feedback collected from previous frames.
//
// When previous frame information is available the scheduler uses the
// following formula for estimating the workload for tracer w and frame i+1:
// w_i, f_i+1 = (blockH,w_i / time,w_i) / Σ(blockH_i-1 / time,i-1)
func (sch *perfectScheduler) Schedule(tracers []Tracer, frameH uint32) []uint32 {
	// If this is the first time we try to schedule or the number of tracers
	// has changed we need to reset the block assignments
	if len(sch.blockAssignment) != len(tracers) {
		sch.blockAssignment = speedBasedAssignment(tracers, frameH)
		return sch.blockAssignment
	}

	// Use last frame statistics
	var total float64
	rates := make([]float64, len(tracers))
	for idx, tr := range tracers {
		stats := tr.Stats()
		blockTime := float64(stats.BlockTime.Nanoseconds())
		if blockTime <= 0 {
			blockTime = 1
		}
		rates[idx] = float64(stats.BlockH) / blockTime
		total += rates[idx]
	}

	// No usable feedback; fall back to speed estimates
	if total == 0 {
		sch.blockAssignment = speedBasedAssignment(tracers, frameH)
		return sch.blockAssignment
	}

	scaler := float64(frameH) / total
	for idx := range tracers {
		sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(rates[idx]*scaler)))
	}

	balance(sch.blockAssignment, frameH)
	return sch.blockAssignment
}

func speedBasedAssignment(tracers []Tracer, frameH uint32) []uint32 {
	blockAssignment := make([]uint32, len(tracers))
	if len(tracers) == 0 {
		return blockAssignment
	}

	var total float64
	for _, tr := range tracers {
		total += float64(tr.SpeedEstimate())
	}
	scaler := float64(frameH) / total

	for idx, tr := range tracers {
		blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.SpeedEstimate())*scaler)))
	}

	balance(blockAssignment, frameH)
	return blockAssignment
}

// Adjust block assignments so they add up to frameH. Missing rows are
// appended to the first tracer; excess rows are removed from the largest
// blocks.
func balance(blockAssignment []uint32, frameH uint32) {
	var scheduledRows uint32
	for _, rows := range blockAssignment {
		scheduledRows += rows
	}

	for scheduledRows > frameH {
		largest := 0
		for idx, rows := range blockAssignment {
			if rows > blockAssignment[largest] {
				largest = idx
			}
		}
		blockAssignment[largest]--
		scheduledRows--
	}

	// In case rows don't add up to the frame height append the missing ones to the first tracer
	blockAssignment[0] += frameH - scheduledRows
}
