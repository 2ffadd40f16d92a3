// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ana provides closed-form solutions used to validate the numerical
// results of the elements: equivalent nodal loads of simple distributed
// loads, fixed-end moment and shear fields, and properties of typical
// cross-sections.
package ana

// UniformTransverse returns the equivalent nodal loads of a constant
// transverse load density q over a member of length l
//
//        ↓↓↓↓↓↓↓↓↓↓ q
//       o----------o
//       |<--- l -->|
//
func UniformTransverse(q, l float64) (fyL, mL, fyR, mR float64) {
	fyL = q * l / 2.0
	mL = q * l * l / 12.0
	fyR = q * l / 2.0
	mR = q * l * l / 12.0
	return
}

// LinearTransverse returns the equivalent nodal loads of a transverse load
// density varying linearly from qL at the left node to qR at the right node
func LinearTransverse(qL, qR, l float64) (fyL, mL, fyR, mR float64) {
	ll := l * l
	fyL = l * (7.0*qL + 3.0*qR) / 20.0
	mL = ll * (3.0*qL + 2.0*qR) / 60.0
	fyR = l * (3.0*qL + 7.0*qR) / 20.0
	mR = ll * (2.0*qL + 3.0*qR) / 60.0
	return
}

// UniformAxial returns the equivalent nodal loads of a constant axial load
// density p over a member of length l
func UniformAxial(p, l float64) (fxL, fxR float64) {
	fxL = p * l / 2.0
	fxR = p * l / 2.0
	return
}

// LinearAxial returns the equivalent nodal loads of an axial load density
// varying linearly from pL at the left node to pR at the right node
func LinearAxial(pL, pR, l float64) (fxL, fxR float64) {
	fxL = l * (2.0*pL + pR) / 6.0
	fxR = l * (pL + 2.0*pR) / 6.0
	return
}

// UniformMomentField returns the bending moment at position τ ∈ [0, l] of a
// member with both ends fixed under a constant transverse load density q
func UniformMomentField(q, l, τ float64) float64 {
	return q * (l*l - 6.0*τ*l + 6.0*τ*τ) / 12.0
}

// UniformShearField returns the shear force at position τ ∈ [0, l] of a
// member with both ends fixed under a constant transverse load density q
func UniformShearField(q, l, τ float64) float64 {
	return q * (τ - l/2.0)
}
