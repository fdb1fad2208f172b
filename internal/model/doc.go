// Package model defines the core data structures used throughout
// starfetch.
//
// # Constellation
//
// Constellation is one loaded record: the map title, the stars and the
// metadata shown next to the map:
//
//	c, err := catalog.Fetch("orion")
//	fmt.Println(c.Name)     // "Orion"
//	fmt.Println(c.Quadrant) // "NQ1"
//
// # Star
//
// Star is a single glyph at a grid position. The grid is always
// GridWidth columns by GridHeight rows:
//
//	s := model.Star{X: 4, Y: 2, Glyph: '✦'}
//	s.InBounds() // true
//
// # Grid
//
// Constellation.Grid lays the stars onto the fixed canvas, later stars
// overwriting earlier ones at the same cell:
//
//	grid := c.Grid()
//	fmt.Println(string(grid[2][:]))
package model
