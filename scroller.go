package hlist

import (
	"math"
	"time"
)

const (
	// Standard gravity, used to derive deceleration from screen density.
	gravityEarth   = 9.80665
	inchesPerMeter = 39.37

	// Default friction applied to flings.
	DefaultFlingFriction = 0.015
	// Default number of terminal cells per inch used to scale the physics.
	DefaultCellsPerInch  = 10.0

	flingInflexion = 0.35 // Tension lines cross at (inflexion, 1).
	startTension   = 0.5
	endTension     = 1.0
	splineP1       = startTension * flingInflexion
	splineP2       = 1.0 - endTension*(1.0-flingInflexion)

	splineSamples = 100
)

var (
	decelerationRate = math.Log(0.78) / math.Log(0.9)
	splinePosition   = buildSplinePositions()
)

// buildSplinePositions samples the normalized distance traveled by a fling
// over normalized time.
func buildSplinePositions() [splineSamples + 1]float64 {
	var positions [splineSamples + 1]float64
	xMin := 0.0
	for i := 0; i < splineSamples; i++ {
		alpha := float64(i) / splineSamples
		xMax := 1.0
		var x, coef float64
		for {
			x = xMin + (xMax-xMin)/2.0
			coef = 3.0 * x * (1.0 - x)
			tx := coef*((1.0-x)*splineP1+x*splineP2) + x*x*x
			if math.Abs(tx-alpha) < 1e-5 {
				break
			}
			if tx > alpha {
				xMax = x
			} else {
				xMin = x
			}
		}
		positions[i] = coef*((1.0-x)*startTension+x) + x*x*x
	}
	positions[splineSamples] = 1.0
	return positions
}

// scroller simulates a decaying fling along one axis. Positions are in cells
// and velocities in cells per second.
type scroller struct {
	now func() time.Time

	friction      float64
	physicalCoeff float64

	startX, finalX, currX int
	minX, maxX            int

	startTime time.Time
	duration  time.Duration
	finished  bool
}

func newScroller(now func() time.Time) *scroller {
	s := &scroller{
		now:      now,
		friction: DefaultFlingFriction,
		finished: true,
	}
	s.setCellsPerInch(DefaultCellsPerInch)
	return s
}

func (s *scroller) setCellsPerInch(cellsPerInch float64) {
	s.physicalCoeff = gravityEarth * inchesPerMeter * cellsPerInch * 0.84
}

func (s *scroller) setFriction(friction float64) {
	s.friction = friction
}

func (s *scroller) splineDeceleration(velocity float64) float64 {
	return math.Log(flingInflexion * math.Abs(velocity) / (s.friction * s.physicalCoeff))
}

func (s *scroller) splineFlingDuration(velocity float64) time.Duration {
	l := s.splineDeceleration(velocity)
	seconds := math.Exp(l / (decelerationRate - 1.0))
	return time.Duration(seconds * float64(time.Second))
}

func (s *scroller) splineFlingDistance(velocity float64) float64 {
	l := s.splineDeceleration(velocity)
	return s.friction * s.physicalCoeff * math.Exp(decelerationRate/(decelerationRate-1.0)*l)
}

// fling starts a simulation at startX with the given velocity. The final
// position is clamped to [minX, maxX].
func (s *scroller) fling(startX, velocity, minX, maxX int) {
	s.finished = false
	speed := math.Abs(float64(velocity))
	s.startTime = s.now()
	s.startX, s.currX = startX, startX
	s.minX, s.maxX = minX, maxX

	if speed == 0 {
		s.duration = 0
		s.finalX = startX
		return
	}
	s.duration = s.splineFlingDuration(speed)

	direction := float64(velocity) / speed
	distance := s.splineFlingDistance(speed)
	s.finalX = startX + int(math.Round(distance*direction))
	s.finalX = min(max(s.finalX, s.minX), s.maxX)
}

// computeOffset advances the simulation to the current time. It returns false
// once the simulation has finished; the step that reaches the end snaps to the
// final position and still returns true.
func (s *scroller) computeOffset() bool {
	if s.finished {
		return false
	}

	elapsed := s.now().Sub(s.startTime)
	if elapsed >= s.duration {
		s.currX = s.finalX
		s.finished = true
		return true
	}

	t := float64(elapsed) / float64(s.duration)
	index := int(splineSamples * t)
	distanceCoef := 1.0
	if index < splineSamples {
		tInf := float64(index) / splineSamples
		tSup := float64(index+1) / splineSamples
		dInf := splinePosition[index]
		dSup := splinePosition[index+1]
		velocityCoef := (dSup - dInf) / (tSup - tInf)
		distanceCoef = dInf + (t-tInf)*velocityCoef
	}

	s.currX = s.startX + int(math.Round(distanceCoef*float64(s.finalX-s.startX)))
	s.currX = min(max(s.currX, s.minX), s.maxX)
	if s.currX == s.finalX {
		s.finished = true
	}
	return true
}

// forceFinished stops the simulation without moving to the final position.
func (s *scroller) forceFinished() {
	s.finished = true
}

func (s *scroller) isFinished() bool {
	return s.finished
}
