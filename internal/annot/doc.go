// Package annot reads tab-delimited annotation tables (one per species and
// source) into a protein → GO-term mapping.
//
// Tables come from two different upstream tools with different column
// layouts, so every column after the protein identifier is scanned for GO
// identifiers.
package annot
