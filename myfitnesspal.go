// Package myfitnesspal extracts structured food diary records from rendered
// diary pages. A diary page is a single flat table in which meal headers,
// logged items, a totals row and a goals row are sibling rows; their meaning
// comes from row classes and position rather than nesting.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, etree/, fs/).
package myfitnesspal
