package qr

// Penalty weights for the four mask-scoring rules (ISO/IEC 18004
// section 8.8.2).
const (
	penaltyN1 = 3
	penaltyN2 = 3
	penaltyN3 = 40
	penaltyN4 = 10
)

// getPenaltyScore computes the total penalty score of c's current
// module grid (after masking), used to pick the mask with the fewest
// visually confusable features. Lower is better.
func (c *Code) getPenaltyScore() int {
	result := 0
	size := c.size

	// N1/N3: runs of same-colored modules in each row, and
	// finder-like patterns straddling run boundaries.
	for y := 0; y < size; y++ {
		runColor := false
		runX := 0
		fp := newFinderPenalty(size)
		for x := 0; x < size; x++ {
			if c.module(x, y) == runColor {
				runX++
				if runX == 5 {
					result += penaltyN1
				} else if runX > 5 {
					result++
				}
			} else {
				fp.addHistory(runX)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = c.module(x, y)
				runX = 1
			}
		}
		result += fp.terminateAndCount(runColor, runX) * penaltyN3
	}

	// N1/N3: same, by column.
	for x := 0; x < size; x++ {
		runColor := false
		runY := 0
		fp := newFinderPenalty(size)
		for y := 0; y < size; y++ {
			if c.module(x, y) == runColor {
				runY++
				if runY == 5 {
					result += penaltyN1
				} else if runY > 5 {
					result++
				}
			} else {
				fp.addHistory(runY)
				if !runColor {
					result += fp.countPatterns() * penaltyN3
				}
				runColor = c.module(x, y)
				runY = 1
			}
		}
		result += fp.terminateAndCount(runColor, runY) * penaltyN3
	}

	// N2: 2x2 blocks of same-colored modules.
	for y := 0; y < size-1; y++ {
		for x := 0; x < size-1; x++ {
			color := c.module(x, y)
			if color == c.module(x+1, y) && color == c.module(x, y+1) && color == c.module(x+1, y+1) {
				result += penaltyN2
			}
		}
	}

	// N4: balance of dark and light modules.
	dark := 0
	for _, m := range c.modules {
		if m {
			dark++
		}
	}
	total := size * size
	k := (abs(dark*20-total*10) + total - 1) / total - 1
	result += k * penaltyN4

	return result
}

// finderPenalty tracks run-length history for a single row or column
// while scanning it, in order to detect finder-pattern-like
// 1:1:3:1:1 run sequences (which, if they straddled the boundary
// between two separately-scored runs, would otherwise go undetected).
type finderPenalty struct {
	size    int
	history [7]int
}

func newFinderPenalty(size int) *finderPenalty {
	return &finderPenalty{size: size}
}

func (fp *finderPenalty) addHistory(runLength int) {
	if fp.history[0] == 0 {
		runLength += fp.size
	}
	copy(fp.history[1:], fp.history[:len(fp.history)-1])
	fp.history[0] = runLength
}

func (fp *finderPenalty) countPatterns() int {
	h := fp.history
	n := h[1]
	core := n > 0 && h[2] == n && h[3] == n*3 && h[4] == n && h[5] == n
	count := 0
	if core && h[0] >= n*4 && h[6] >= n {
		count++
	}
	if core && h[6] >= n*4 && h[0] >= n {
		count++
	}
	return count
}

func (fp *finderPenalty) terminateAndCount(runColor bool, runLength int) int {
	if runColor {
		fp.addHistory(runLength)
		runLength = 0
	}
	runLength += fp.size
	fp.addHistory(runLength)
	return fp.countPatterns()
}
