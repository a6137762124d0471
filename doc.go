// Package rendafixa projects the future value of Brazilian fixed-income
// instruments (CDB, LCI/LCA, Tesouro-style) under the regressive
// holding-period income-tax table, and compares instruments against each
// other.
//
// The core of the package is a stateless projection engine:
//   - Tax table: maps a holding period in days to the applicable IR rate
//     (22.5% up to 180 days, down to 15% past 720 days).
//   - Return calculator: converts a rate specification ("110% CDI",
//     "IPCA+6", a fixed 12% a.a.) plus the current reference indices into an
//     effective annual rate, and compounds it over elapsed days, gross and
//     net of tax.
//   - Series generator and sampler: day-indexed gross/net return series for
//     charting, down-sampled without ever smoothing away the net-return jump
//     at a tax bracket boundary.
//   - Comparative analyzer: equivalent rates at standard horizons and the
//     break-even day between a taxed and a tax-exempt instrument.
//
// Every engine operation is a pure function of its arguments: no caching,
// no I/O, no shared state. Persistence of the instrument wallet (JSONL) and
// fetching of reference indices live at the edges, in this package's wallet
// encoding and in the bcb subpackage, and only ever hand already-validated
// values to the engine.
//
// This package is the foundation of the `rfx` command-line tool.
package rendafixa
