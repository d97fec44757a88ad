// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package ringmpsc

// RaceEnabled is true when the race detector is active.
// This package's own concurrent Ring/Channel tests are excluded under
// the race detector by a !race build constraint rather than by reading
// this constant: they trigger false positives because the race detector
// cannot observe the happens-before relationship atomix's
// release/acquire ordering establishes between non-atomic field writes.
const RaceEnabled = true
