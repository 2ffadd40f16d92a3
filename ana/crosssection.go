// Copyright 2026 Lucas Ayub. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CrossSection computes the area and the in-plane second moment of area of
// typical cross-sections, to be used as the A and I inputs of a bar element
//
//   typ : rectangle
//         circle                             tw
//         I-beam                         -->| |<--
//                                    ___    | |     ___
//   ^         +-------+            tf |   ########   |
//   |         |       |              ---  ########   |
//   |         |       |                      ##      |
//   +---->    |       | h = hei              ##      | h = hei
//             |       |                      ##      |
//             |       |              ---  ########   |
//             +-------+            tf_|_  ########  ---
//              b = wid                    b = wid
//
type CrossSection struct {

	// input
	Type string  // "rectangle", "I-beam" or "circle"
	Wid  float64 // width (b) if not circular
	Hei  float64 // height (h) if not circular
	Tf   float64 // flange thickness if I-beam
	Tw   float64 // web thickness if I-beam
	R    float64 // radius if circular

	// derived
	A float64 // cross-sectional area
	I float64 // second moment of area about the bending axis
}

// Init initialises the structure and computes A and I
func (o *CrossSection) Init(typ string, wid, hei, tf, tw, rad float64) error {

	// input data
	o.Type, o.Wid, o.Hei, o.Tf, o.Tw, o.R = typ, wid, hei, tf, tw, rad

	// derived
	switch typ {

	case "rectangle":
		b, h := wid, hei
		o.A = b * h
		o.I = b * h * h * h / 12.0

	case "I-beam":
		b, h := wid, hei
		l := h - 2.0*tf
		o.A = b*h - l*(b-tw)
		o.I = b*h*h*h/12.0 - (b-tw)*l*l*l/12.0

	case "circle":
		r2 := rad * rad
		o.A = math.Pi * r2
		o.I = math.Pi * r2 * r2 / 4.0

	default:
		return chk.Err("cross-section type %q is unavailable", typ)
	}
	return nil
}

// String returns a one-line representation of the section properties
func (o *CrossSection) String() string {
	return io.Sf("%s: A=%g I=%g", o.Type, o.A, o.I)
}
