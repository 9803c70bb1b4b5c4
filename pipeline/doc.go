// Package pipeline runs the meshing stages end to end from a config.Config:
//
//	source → topology report → mesh → refine → branches → coloring → orientation → store
//
// Each stage either completes or the run fails; a Result is returned only
// for complete runs. Stages log through klog at verbosity 1 (one line per
// stage) and 2 (details).
package pipeline
