// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package node defines the joints of a plane frame. Nodes are created by the
// mesh builder, shared by the elements connected at the same joint, and
// mutated by the global solver only; elements read node state but never
// write to it.
package node

import (
	"github.com/cpmech/gosl/la"
)

// Node holds the state of one joint: its current position, the loads applied
// directly to it and its support conditions
//
//          Fglob[1]
//             ^    Floc[1] (member frame)
//             |   ,
//             |  ,      M (counterclockwise)
//            (o)------> Fglob[0]
//            /_\
//           FixedX, FixedY
//
type Node struct {
	Pos    la.Vector // [2] current coordinates; updated by the solver after each solution
	Floc   la.Vector // [2] applied force pair in the member-local frame
	Fglob  la.Vector // [2] applied force pair in the global frame
	M      float64   // applied moment
	FixedX bool      // displacement prescribed along global x
	FixedY bool      // displacement prescribed along global y
}

// New returns a free node at (x, y) with no applied loads
func New(x, y float64) *Node {
	return &Node{
		Pos:   la.Vector{x, y},
		Floc:  la.NewVector(2),
		Fglob: la.NewVector(2),
	}
}
