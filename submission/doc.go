// Package submission loads the roster manifest that declares, per student,
// the problem instances to grade and the search methods to grade them with.
//
// Manifests are YAML (.yaml, .yml) or HCL (.hcl) and decode into the same
// Manifest structure:
//
//	names = ["Aardvark, Aaron"]
//
//	student "Aardvark, Aaron" {
//	  methods = ["breadth_first_search", "astar_search"]
//
//	  problem "tile" {
//	    label   = "2x2 Tiles"
//	    initial = ["ca", "_b"]
//	    goal    = ["ab", "c_"]
//	  }
//	}
//
// Build turns a Manifest into a Roster of ready problems and resolved
// methods. Defects are recorded on the affected Student (ProblemsErr,
// MethodsErr) so that one broken submission never aborts the run.
package submission
