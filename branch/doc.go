// Package branch generates the candidate segments that follow an
// accepted segment: a forward continuation (straight, or a randomly
// nudged alternative when the predecessor is a highway), and up to one
// left/right side branch per kind (highway, normal), gated on the
// population field.
//
// Every emitted candidate funnels through one shared constructor,
// parameterized per call site by angle, length, t-delay and metadata.
package branch
