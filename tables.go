package qr

// Error correction codewords per block and number of error correction
// blocks, indexed [ErrorCorrectionLevel][Version]. Entry 0 of the
// version axis is unused (versions start at 1); transcribed from
// coding/gen.go's eccTable, cross-checked against
// original_source/qrcode-lib/src/qrcode.rs's ECC_CODEWORDS_PER_BLOCK
// and NUM_ERROR_CORRECTION_BLOCKS.
var eccCodewordsPerBlock = [4][41]int8{
	{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28},
	{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
	{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},
}

var numErrorCorrectionBlocks = [4][41]int8{
	{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},
	{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},
	{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},
	{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81},
}

func tableGet(table *[4][41]int8, ver Version, ecl ErrorCorrectionLevel) int {
	return int(table[ecl.ordinal()][ver])
}

// getNumRawDataModules returns the number of data modules (function
// modules excluded) available in a symbol of version ver, before
// splitting into data and error correction codewords.
func getNumRawDataModules(ver Version) int {
	v := ver.Value()
	result := (16*v+128)*v + 64
	if v >= 2 {
		numalign := v/7 + 2
		result -= (25*numalign-10)*numalign - 55
		if v >= 7 {
			result -= 36
		}
	}
	return result
}

// getNumDataCodewords returns the number of codewords available for
// data (error correction codewords excluded) in a symbol of the given
// version and error correction level.
func getNumDataCodewords(ver Version, ecl ErrorCorrectionLevel) int {
	return getNumRawDataModules(ver)/8 -
		tableGet(&eccCodewordsPerBlock, ver, ecl)*
			tableGet(&numErrorCorrectionBlocks, ver, ecl)
}

// getAlignmentPatternPositions returns the row/column positions of
// alignment pattern centers for a symbol of version ver, in ascending
// order. Returns nil for version 1, which has no alignment patterns.
func getAlignmentPatternPositions(ver Version) []int {
	v := ver.Value()
	if v == 1 {
		return nil
	}
	numalign := v/7 + 2
	step := (v*8+numalign*3+5)/(numalign*4-4)*2
	size := ver.size()
	result := make([]int, numalign)
	result[0] = 6
	for i := 0; i < numalign-1; i++ {
		result[numalign-1-i] = size - 7 - i*step
	}
	return result
}
