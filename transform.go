package rowan

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Skew -> Rotate -> Translate(X, Y)
func computeLocalTransform(n *Node) [6]float64 {
	sx := n.ScaleX
	sy := n.ScaleY

	sin, cos := math.Sincos(n.Rotation)

	var tanSkewX, tanSkewY float64
	if n.SkewX != 0 {
		tanSkewX = math.Tan(n.SkewX)
	}
	if n.SkewY != 0 {
		tanSkewY = math.Tan(n.SkewY)
	}

	// After Skew * Scale * Translate(-pivot):
	a := sx
	b := tanSkewY * sx
	c := tanSkewX * sy
	d := sy

	px := n.PivotX
	py := n.PivotY
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	// After Rotate:
	ra := cos*a - sin*b
	rb := sin*a + cos*b
	rc := cos*c - sin*d
	rd := sin*c + cos*d
	rtx := cos*preTx - sin*preTy
	rty := sin*preTx + cos*preTy

	// After Translate(X, Y):
	return [6]float64{ra, rb, rc, rd, rtx + n.X, rty + n.Y}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// refreshTransform recomputes the draw matrix and its inverse if the node or
// any ancestor changed since the last read.
func (n *Node) refreshTransform() {
	if !n.transformDirty {
		return
	}
	parent := identityTransform
	if p := n.Parent(); p != nil {
		p.refreshTransform()
		parent = p.drawMatrix
	}
	n.drawMatrix = multiplyAffine(parent, computeLocalTransform(n))
	n.inverseMatrix = invertAffine(n.drawMatrix)
	n.transformDirty = false
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	markSubtreeDirty(n)
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	markSubtreeDirty(n)
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	markSubtreeDirty(n)
}

// SetSkew sets the node's SkewX and SkewY and marks it dirty.
func (n *Node) SetSkew(sx, sy float64) {
	n.SkewX = sx
	n.SkewY = sy
	markSubtreeDirty(n)
}

// SetPivot sets the node's PivotX and PivotY and marks it dirty.
func (n *Node) SetPivot(px, py float64) {
	n.PivotX = px
	n.PivotY = py
	markSubtreeDirty(n)
}

// SetSize sets the node's local draw rectangle size.
func (n *Node) SetSize(w, h float64) {
	n.Width = w
	n.Height = h
}

// MarkDirty marks the node's transform as dirty, forcing recomputation on the
// next read. Required after setting transform fields directly.
func (n *Node) MarkDirty() {
	markSubtreeDirty(n)
}

// --- Coordinate conversion ---

// DrawMatrix returns the matrix mapping this node's local space to screen
// space.
func (n *Node) DrawMatrix() [6]float64 {
	n.refreshTransform()
	return n.drawMatrix
}

// InverseDrawMatrix returns the matrix mapping screen space to this node's
// local space.
func (n *Node) InverseDrawMatrix() [6]float64 {
	n.refreshTransform()
	return n.inverseMatrix
}

// LocalPosition converts a screen-space position into this node's local
// space. This is not the space of the node's own X/Y (those live in the
// parent's space).
func (n *Node) LocalPosition(screen Vec2) Vec2 {
	n.refreshTransform()
	x, y := transformPoint(n.inverseMatrix, screen.X, screen.Y)
	return Vec2{x, y}
}

// LocalToScreen converts a local-space position to screen space.
func (n *Node) LocalToScreen(local Vec2) Vec2 {
	n.refreshTransform()
	x, y := transformPoint(n.drawMatrix, local.X, local.Y)
	return Vec2{x, y}
}

// DrawRectangle returns the node's local-space draw rectangle.
func (n *Node) DrawRectangle() Rect {
	return Rect{0, 0, n.Width, n.Height}
}

// Contains reports whether a screen-space position falls inside the node.
// The position is localized first, then tested against HitShape if set, or
// else the draw rectangle. Boundaries are inclusive.
func (n *Node) Contains(screen Vec2) bool {
	l := n.LocalPosition(screen)
	if n.HitShape != nil {
		return n.HitShape.Contains(l.X, l.Y)
	}
	return n.DrawRectangle().Contains(l.X, l.Y)
}
