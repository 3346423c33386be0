// Package scenario loads resort setups from YAML and builds sim.Worlds from
// them.
//
// A library file lists scenarios:
//
//	scenarios:
//	  - name: Cone World
//	    terrain:
//	      kind: cone
//	      width: 20
//	      height: 20
//	      center: [10, 10]
//	      center_height: 10
//	      slope: -1
//	    lifts:
//	      - start: [0, 0]
//	        end: [3, 3]
//	    spawns:
//	      areas:
//	        - min: [0, 0]
//	          max: [10, 10]
//
// PGM terrain (kind: pgm) names a file relative to the library. Spawn area
// maxima are exclusive. Unknown fields are rejected.
//
// Builtin returns the library compiled into the binary.
package scenario
