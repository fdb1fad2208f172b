// Package app provides the orchestration behind the starfetch commands.
//
// # App
//
// App coordinates a single invocation:
//
//  1. Resolve the base directory from the settings
//  2. Open the catalog over its constellations directory
//  3. Fetch the requested record(s)
//  4. Render the star map or the listing to the output
//
// # Basic Usage
//
//	a, err := app.New(settings, os.Stdout, logger)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = a.Show("orion")
//	err = a.ShowRandom()
//	err = a.List(ctx, "ursa*")
//
// # Validation
//
// Validate loads every record in parallel (bounded by
// settings.Concurrency) and reports all failures at once:
//
//	report, err := a.Validate(ctx)
//	for _, p := range report.Problems {
//	    fmt.Println(p.Name, p.Err)
//	}
//
// # Installing Records
//
// Install copies the bundled records into the asset path or the user
// data directory, without touching files that already exist unless asked.
package app
