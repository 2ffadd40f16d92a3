// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/chk"

	"github.com/lucas-ayub/FEM-implemmentation/geo"
	"github.com/lucas-ayub/FEM-implemmentation/node"
)

// Discretize splits the member between two boundary nodes into nElements
// bars chained through nElements-1 evenly spaced interior nodes. The
// interior nodes start free and unloaded; fixities and nodal loads are
// applied externally afterwards. q is a constant member-local transverse
// load density applied to every bar.
func Discretize(left, right *node.Node, q, E, A, I float64, nElements int) (bars []*Bar, interior []*node.Node, err error) {

	// check
	if nElements < 1 {
		return nil, nil, chk.Err("number of elements must be at least 1. nElements=%d is invalid", nElements)
	}

	// interior nodes
	dx := (right.Pos[0] - left.Pos[0]) / float64(nElements)
	dy := (right.Pos[1] - left.Pos[1]) / float64(nElements)
	interior = make([]*node.Node, nElements-1)
	for i := 1; i < nElements; i++ {
		interior[i-1] = node.New(left.Pos[0]+float64(i)*dx, left.Pos[1]+float64(i)*dy)
	}

	// bars
	var qfcn geo.LoadFunc
	if q != 0 {
		qfcn = func(x float64) float64 { return q }
	}
	bars = make([]*Bar, nElements)
	for i := 0; i < nElements; i++ {
		a, b := left, right
		if i > 0 {
			a = interior[i-1]
		}
		if i < nElements-1 {
			b = interior[i]
		}
		bars[i], err = NewBar(a, b, E, A, I, nil, nil, nil, qfcn)
		if err != nil {
			return nil, nil, err
		}
	}
	return
}
