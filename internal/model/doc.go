// Package model defines the data the chooser renders and dispatches: stream
// samples, section headers, the tagged list entry that holds either, and the
// display list built from them. All values are immutable after construction.
package model
