// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package parallel provides the worker pool that fans rasterization blocks
// out across goroutines.
//
// Work is expressed as an index range. The rasterizer maps indices to cells
// of its block grid; cells are independent, so ranges can run in any order
// and on any worker.
package parallel
