// Package writers serializes comparison results.
//
// Design:
//   • The comparative report is a TAB-separated table written through gocsv;
//     the column set is ReportColumns and floats use four fixed decimals.
//   • Re-running into an existing report appends rows and never repeats the
//     header (OpenReport).
//   • Venn sizes are dispatched by format through a small registry.
package writers
