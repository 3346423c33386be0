// Package terrain stores the height map of a resort and derives the grid
// layer skiers plan over.
//
// Tiles are stored x-major: tile (x, y) is at index x*Height + y. A grid node
// (x, y) sits at world position (x, height, y).
//
// Edge weights (Costs) depend on the height drop from source to destination:
//
//   - downhill (drop >= 0 after truncation toward zero): drop × Downhill
//   - uphill: |drop| × Uphill
//   - either endpoint outside the map: core.Infinity
//
// Terrain can be generated (NewCone), built from tiles (FromTiles) or read
// from an ASCII PGM ("P2") height map with '#' comments (FromPGM).
package terrain
