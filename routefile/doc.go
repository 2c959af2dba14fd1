// Package routefile loads route networks from YAML files and assembles the
// sphere values the core packages consume.
//
// A network file names a celestial body and lists the navigable connections:
//
//	body: Earth
//	connections:
//	  - start:  {lat: 54.35,   lng: 18.6667}
//	    finish: {lat: 54.4167, lng: 13.4333}
//	  - start:  {lat: 54.4167, lng: 13.4333}
//	    finish: {lat: 52.25,   lng: 21.0}
//
// Loading only assembles data; it does not validate graph-level rules. A file
// that omits a required field — the body, a connection endpoint, or a
// coordinate — fails with ErrDataItemIncomplete. Graph-level rules (non-empty
// set, no self-loops) are enforced later by vertexgraph.Build, which reports
// its own ErrDataItemIncorrect.
package routefile
