// Package catalog loads constellation records from a directory of JSON
// files, one file per constellation.
//
// The package handles three use cases:
//
//  1. Fetching a single record by name
//  2. Enumerating the records in the directory (all, by glob, or at random)
//  3. Loading one-line summaries for listings
//
// # Fetching
//
//	cat := catalog.New(dir, logger)
//	c, err := cat.Fetch("orion")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%s (%s)\n", c.Name, c.Quadrant)
//
// # Errors
//
// Failures are *catalog.Error values whose Kind tells a missing record
// (KindNotFound) from a broken one (KindMalformed, KindInvalid). Each kind
// matches a sentinel with errors.Is:
//
//	if errors.Is(err, catalog.ErrMalformed) {
//	    fmt.Println("fix the record file")
//	}
//
// # Record Format
//
// A record holds the map title, a graph of [x, y, "glyph"] tuples and the
// metadata strings. See the dto package for the wire shape.
package catalog
