// Package graphmesh turns a tubular network (a vessel tree, a neuron arbor
// or a synthetic test graph) into a one-dimensional mesh embedded in 3-D
// and derives its branch structure.
//
// What is in the box:
//
//	core/      thread-safe keyed graph: nodes with positions, edges with radius and type
//	dfs/       traversal, components, cycle and tree checks on core graphs
//	swc/       SWC morphology parser
//	builder/   synthetic graphs: path, cycle, star, bifurcating vascular tree
//	gridgraph/ background lattices and random subnetworks of the unit square
//	geom/      go_gens vector bridge, rotation and distances
//	mesh/      interval mesh, cell fields, tagged submeshes
//	branch/    branch extraction and the path/loop walker
//	coloring/  greedy reduction of branch colors
//	orient/    inlet/outlet labels from a tangent field
//	refine/    uniform bisection and exact field prolongation
//	config/    YAML run configuration
//	pipeline/  all stages end to end
//	meshstore/ badger-backed checkpoints of meshes, fields and parent maps
//
// Quick ASCII example:
//
//	    0 ── 1 ── 2
//	         │
//	         3 ── 4
//
// meshes to five vertices and four cells, splits into three branches
// (0-1, 1-2 and 1-3-4) and needs three colors, since all of them meet at 1.
package graphmesh
