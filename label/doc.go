// Package label renders display names for scale nodes: numeric degree
// labels, letter names with accidentals in the bright-generator
// convention, and pitch labels annotated with cent deviations.
//
// A Calculator owns a diatonic reference shape so that scales close
// enough to the familiar 5L2s pattern can borrow letter names (C, D,
// E...) through a brightness-path basis change; everything else falls
// back to degree digits.
package label
