// Package orient labels the ends of every branch as inlet or outlet.
//
// Given a per-cell unit tangent field on the whole network, Resolve
// extracts each colored branch, localizes the tangent onto the branch
// cells and compares it with the outward normal at every boundary vertex:
//
//	dot(tangent, normal) >  0  → Outlet (1)
//	dot(tangent, normal) <= 0  → Inlet  (2)
//
// The labels depend only on the tangent field, never on the direction in
// which a branch happens to be walked. CellTangents and WalkTangents build
// tangent fields for callers that have none.
package orient
