// Package textutil provides the text-shaping primitives shared by venue
// matching: canonical normalization for exact comparison, slug derivation,
// and tokenization into a de-duplicated token list.
//
// Known limitation: no Unicode diacritic folding is performed, so "café"
// and "cafe" remain distinct tokens. The venue catalogs this serves are
// ASCII-centric; folding is deliberately left out rather than half-done.
package textutil
