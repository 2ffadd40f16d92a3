// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geo implements small geometric utilities shared by the elements:
// rotation of force/load tensors between the member-local and global frames
// and linear interpolation of distributed load magnitudes along a member.
package geo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/lucas-ayub/FEM-implemmentation/node"
)

// LoadFunc defines a distributed load density as a function of the
// member-local coordinate x, with 0 ≤ x ≤ L
type LoadFunc func(x float64) float64

// Zero is the no-load density
func Zero(x float64) float64 { return 0 }

// RotateTensor applies the rotation R to the tensor t; i.e. computes R・t
func RotateTensor(R *la.Matrix, t la.Vector) (res la.Vector, err error) {
	if R.N != len(t) {
		return nil, chk.Err("cannot rotate %d-vector with %d×%d matrix", len(t), R.M, R.N)
	}
	res = la.NewVector(R.M)
	la.MatVecMul(res, 1, R, t)
	return
}

// Dist returns the distance between the current positions of two nodes
func Dist(a, b *node.Node) float64 {
	dx := b.Pos[0] - a.Pos[0]
	dy := b.Pos[1] - a.Pos[1]
	return math.Sqrt(dx*dx + dy*dy)
}

// LinearLoad returns a load density varying linearly from start at the left
// node to end at the right node. The member length is taken from the node
// positions at call time and must be positive.
func LinearLoad(start, end float64, left, right *node.Node) (LoadFunc, error) {
	l := Dist(left, right)
	if l <= 0 {
		return nil, chk.Err("linear load requires nodes at distinct positions")
	}
	return func(x float64) float64 {
		return start + (end-start)*x/l
	}, nil
}
