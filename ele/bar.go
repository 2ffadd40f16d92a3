// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ele implements a 2D frame/truss member (Euler-Bernoulli, linear
// elastic) for small-displacement analysis with the direct stiffness method,
// plus a driver to subdivide long members into chains of elements.
package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/num/qpck"

	"github.com/lucas-ayub/FEM-implemmentation/geo"
	"github.com/lucas-ayub/FEM-implemmentation/node"
)

// Bar represents a structural bar element with combined axial and bending
// stiffness (3 dofs per node: ux, uy, rz)
//
//   y ^        qy(x)
//     |     ↓↓↓↓↓↓↓↓↓↓
//     |    o----------o --> qx(x)     Props:    Nodes:
//     |  (0)          (1)             E, A, I   left and right
//     +-----------------> x
//
// The stiffness matrix and the equivalent nodal load vector are computed
// once, at construction, from the reference geometry; only the current
// length, the normal force and the axial stress change after the global
// solver updates the node positions.
type Bar struct {

	// nodes (shared with adjacent elements; never mutated here)
	Left  *node.Node
	Right *node.Node

	// parameters and properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	I float64 // second moment of area

	// geometry
	L0    float64 // reference length, captured at construction
	L     float64 // current length
	Alpha float64 // orientation angle

	// distributed load densities, functions of the local coordinate x ∈ [0,L]
	Qxg geo.LoadFunc // along global x
	Qyg geo.LoadFunc // along global y
	Qxl geo.LoadFunc // along the member axis
	Qyl geo.LoadFunc // transverse to the member axis

	// matrices and vectors, eager at construction
	R3 *la.Matrix // [3][3] local-to-global rotation of a (fx, fy, m) triplet
	R6 *la.Matrix // [6][6] local-to-global rotation of the element vector
	K  *la.Matrix // [6][6] stiffness matrix in the global frame
	Fl la.Vector  // [6] integrated equivalent loads in the local frame
	F  la.Vector  // [6] equivalent nodal load vector in the global frame

	// post-solve recovery; zero until SetBarNormalAndStress is called
	N   float64 // normal force
	Sig float64 // axial stress
}

// NewBar returns a fully initialised element: length, angle, rotation
// matrices, stiffness matrix and equivalent nodal load vector are all
// computed here. Load functions may be nil (no load). E, A and I must be
// positive and the nodes must be at distinct positions.
func NewBar(left, right *node.Node, E, A, I float64, globalQx, localQx, globalQy, localQy geo.LoadFunc) (o *Bar, err error) {

	// check properties
	if E <= 0 || A <= 0 || I <= 0 {
		return nil, chk.Err("E, A and I must be all positive. E=%g, A=%g, I=%g is invalid", E, A, I)
	}

	// basic data
	o = &Bar{Left: left, Right: right, E: E, A: A, I: I}
	o.Qxg = orZero(globalQx)
	o.Qxl = orZero(localQx)
	o.Qyg = orZero(globalQy)
	o.Qyl = orZero(localQy)

	// geometry
	o.L = geo.Dist(left, right)
	if o.L <= 0 {
		return nil, chk.Err("left and right nodes must be at distinct positions; zero-length bar at (%g,%g)", left.Pos[0], left.Pos[1])
	}
	o.L0 = o.L
	o.Alpha = o.angle()

	// matrices and load vector
	o.calcStiffness()
	o.calcRotations()
	err = o.calcLoadVector()
	if err != nil {
		return nil, err
	}
	return
}

// accessors ////////////////////////////////////////////////////////////////////////////////////////

// GetBarLength returns the current length
func (o *Bar) GetBarLength() float64 { return o.L }

// GetStiffnessMatrix returns the global stiffness matrix
func (o *Bar) GetStiffnessMatrix() *la.Matrix { return o.K }

// GetBarNormal returns the normal force recovered by SetBarNormalAndStress
func (o *Bar) GetBarNormal() float64 { return o.N }

// GetBarStress returns the axial stress recovered by SetBarNormalAndStress
func (o *Bar) GetBarStress() float64 { return o.Sig }

// post-solve recovery //////////////////////////////////////////////////////////////////////////////

// SetBarNormalAndStress refreshes the current length from the node positions
// and recovers the axial stress and normal force. Must be called after the
// global solver updates the positions; idempotent for fixed positions.
func (o *Bar) SetBarNormalAndStress() {
	o.L = geo.Dist(o.Left, o.Right)
	strain := (o.L - o.L0) / o.L0
	o.Sig = o.E * strain
	o.N = o.Sig * o.A
}

// CalcMoment returns the bending moment at the natural coordinate ξ ∈ [0, 1]
// due to the distributed loads, with both member ends held fixed. The
// displacement-dependent part of the moment belongs to the global solver and
// is not included.
func (o *Bar) CalcMoment(ξ float64) (M float64, err error) {
	τ := ξ * o.L0
	M = o.Fl[2] - o.Fl[1]*τ
	if τ == 0 {
		return
	}
	res, err := integrate(func(x float64) float64 { return (τ - x) * o.qyLocal(x) }, 0, τ)
	if err != nil {
		return 0, err
	}
	return M + res, nil
}

// CalcShear returns the shear force at the natural coordinate ξ ∈ [0, 1] due
// to the distributed loads, with both member ends held fixed
func (o *Bar) CalcShear(ξ float64) (V float64, err error) {
	τ := ξ * o.L0
	V = -o.Fl[1]
	if τ == 0 {
		return
	}
	res, err := integrate(o.qyLocal, 0, τ)
	if err != nil {
		return 0, err
	}
	return V + res, nil
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// angle computes the member orientation. Vertical members get an explicit
// branch so that Δx = 0 never reaches the general formula.
func (o *Bar) angle() float64 {
	dx := o.Right.Pos[0] - o.Left.Pos[0]
	dy := o.Right.Pos[1] - o.Left.Pos[1]
	if dx == 0 {
		if dy > 0 {
			return math.Pi / 2.0
		}
		return -math.Pi / 2.0
	}
	return math.Atan2(dy, dx)
}

// calcStiffness computes the global stiffness matrix, with the rotation
// already embedded in the closed form through c and s
func (o *Bar) calcStiffness() {
	c := math.Cos(o.Alpha)
	s := math.Sin(o.Alpha)
	l := o.L
	ll := l * l
	μ := o.A * ll / (2.0 * o.I)
	k := 2.0 * o.E * o.I / (ll * l)
	kvals := [][]float64{
		{μ*c*c + 6*s*s, (μ - 6) * c * s, -3 * l * s, -μ*c*c - 6*s*s, -(μ - 6) * c * s, -3 * l * s},
		{(μ - 6) * c * s, μ*s*s + 6*c*c, 3 * l * c, -(μ - 6) * c * s, -μ*s*s - 6*c*c, 3 * l * c},
		{-3 * l * s, 3 * l * c, 2 * ll, 3 * l * s, -3 * l * c, ll},
		{-μ*c*c - 6*s*s, -(μ - 6) * c * s, 3 * l * s, μ*c*c + 6*s*s, (μ - 6) * c * s, 3 * l * s},
		{-(μ - 6) * c * s, -μ*s*s - 6*c*c, -3 * l * c, (μ - 6) * c * s, μ*s*s + 6*c*c, -3 * l * c},
		{-3 * l * s, 3 * l * c, ll, 3 * l * s, -3 * l * c, 2 * ll},
	}
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			kvals[i][j] *= k
		}
	}
	o.K = la.NewMatrixDeep2(kvals)
}

// calcRotations builds the local-to-global rotation matrices. Moments are
// out-of-plane and unaffected; the 6×6 matrix is block diagonal, one 3×3
// block per node.
func (o *Bar) calcRotations() {
	c := math.Cos(o.Alpha)
	s := math.Sin(o.Alpha)
	o.R3 = la.NewMatrixDeep2([][]float64{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, 1},
	})
	o.R6 = la.NewMatrixDeep2([][]float64{
		{c, -s, 0, 0, 0, 0},
		{s, c, 0, 0, 0, 0},
		{0, 0, 1, 0, 0, 0},
		{0, 0, 0, c, -s, 0},
		{0, 0, 0, s, c, 0},
		{0, 0, 0, 0, 0, 1},
	})
}

// qxLocal and qyLocal return the total load densities in the local frame:
// the local load plus the global load decomposed with the transpose rotation
func (o *Bar) qxLocal(x float64) float64 {
	c := math.Cos(o.Alpha)
	s := math.Sin(o.Alpha)
	return o.Qxl(x) + c*o.Qxg(x) + s*o.Qyg(x)
}

func (o *Bar) qyLocal(x float64) float64 {
	c := math.Cos(o.Alpha)
	s := math.Sin(o.Alpha)
	return o.Qyl(x) - s*o.Qxg(x) + c*o.Qyg(x)
}

// calcLoadVector integrates the total local load densities against the shape
// functions, rotates the result to the global frame and adds the forces and
// moments applied directly to the two nodes
func (o *Bar) calcLoadVector() (err error) {

	// shape functions: linear for the axial dofs, Hermite cubics for the
	// transverse and rotation dofs
	l := o.L
	ll := l * l
	lll := ll * l
	φ1 := func(x float64) float64 { return 2*x*x*x/lll - 3*x*x/ll + 1 }
	φ2 := func(x float64) float64 { return x - 2*x*x/l + x*x*x/ll }
	φ3 := func(x float64) float64 { return -2*x*x*x/lll + 3*x*x/ll }
	φ4 := func(x float64) float64 { return -x*x*x/ll + x*x/l }
	φ5 := func(x float64) float64 { return 1 - x/l }
	φ6 := func(x float64) float64 { return x / l }

	// integrate load densities against the shape functions
	o.Fl = la.NewVector(6)
	integrands := []struct {
		q, φ geo.LoadFunc
	}{
		{o.qxLocal, φ5},
		{o.qyLocal, φ1},
		{o.qyLocal, φ2},
		{o.qxLocal, φ6},
		{o.qyLocal, φ3},
		{o.qyLocal, φ4},
	}
	for i, ig := range integrands {
		q, φ := ig.q, ig.φ
		o.Fl[i], err = integrate(func(x float64) float64 { return q(x) * φ(x) }, 0, l)
		if err != nil {
			return chk.Err("equivalent load integration failed for entry %d: %v", i, err)
		}
	}

	// rotate to the global frame
	fg, err := geo.RotateTensor(o.R6, o.Fl)
	if err != nil {
		return err
	}

	// add direct nodal contributions
	fnl, err := o.nodeForces(o.Left)
	if err != nil {
		return err
	}
	fnr, err := o.nodeForces(o.Right)
	if err != nil {
		return err
	}
	o.F = la.NewVector(6)
	for i := 0; i < 3; i++ {
		o.F[i] = fg[i] + fnl[i]
		o.F[3+i] = fg[3+i] + fnr[i]
	}
	return
}

// nodeForces returns the total global (fx, fy, m) triplet applied directly
// to a node: its local force pair and moment rotated to the global frame,
// plus its global force pair
func (o *Bar) nodeForces(nod *node.Node) (la.Vector, error) {
	res, err := geo.RotateTensor(o.R3, la.Vector{nod.Floc[0], nod.Floc[1], nod.M})
	if err != nil {
		return nil, err
	}
	res[0] += nod.Fglob[0]
	res[1] += nod.Fglob[1]
	return res, nil
}

// integrate computes the definite integral of f over [a, b] with the
// adaptive QUADPACK routine AGSE; exact to machine precision for the
// polynomial integrands arising from constant and linear loads. The QUADPACK
// wrapper reacts to non-convergence by panicking; the panic is converted
// here into an error for the caller. AGSE keeps the integrand in a
// package-level slot selected by fid, fixed to 0 here, so bars must not be
// constructed concurrently.
func integrate(f func(x float64) float64, a, b float64) (res float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("quadrature over [%g,%g] failed: %v", a, b, r)
		}
	}()
	res, _, _, _ = qpck.Agse(0, f, a, b, 0, 0, nil, nil, nil, nil, nil)
	return
}

func orZero(f geo.LoadFunc) geo.LoadFunc {
	if f == nil {
		return geo.Zero
	}
	return f
}
