// Package justext removes boilerplate from HTML documents.
// It splits a page into text blocks, classifies each block as content or
// boilerplate using length, link density and stopword density, then
// revises those classes using the classes of neighbouring blocks.
//
// This package contains domain types, interfaces and the classification
// algorithm following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, etree/, sqlite/).
package justext
