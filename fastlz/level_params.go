// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package fastlz

// levelParams holds the tunables for one greedy-match compression level:
// how long a match is "good enough" to stop searching for a better one,
// and how many hash-chain candidates to probe before giving up.
type levelParams struct {
	niceLen  int
	maxChain int
}

// fixedLevels mirrors the teacher's per-level table shape (level_params.go)
// but tuned for this format's match-length range instead of LZO1X's M2-M4
// classes: niceLen tops out at maxShortExtLen (the largest length the
// short variant's single extension byte can express) so low levels prefer
// matches the short variant can always encode.
var fixedLevels = [9]levelParams{
	{8, 4},
	{16, 8},
	{32, 16},
	{48, 32},
	{64, 48},
	{96, 64},
	{128, 96},
	{192, 128},
	{maxShortExtLen, 256},
}

func paramsForLevel(level int) levelParams {
	if level < 1 {
		level = 1
	}
	if level > len(fixedLevels) {
		level = len(fixedLevels)
	}
	return fixedLevels[level-1]
}
