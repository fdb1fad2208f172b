// Package render turns constellation records into terminal text.
//
// Renderer draws the framed 22x10 star map with the metadata column;
// SummaryWriter formats listings. Both take an Emphasizer, which is the
// only place terminal styling happens, so output written to a pipe or a
// buffer stays free of escape sequences.
package render
