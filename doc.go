// Package bisttakip provides the domain types and accounting engine for
// tracking a Borsa Istanbul (BIST) equity portfolio. It is designed to be
// local-first and auditable: the single source of truth is a human-readable
// JSONL ledger of transactions, and every figure is derived by replaying it.
//
// The core functionalities include:
//   - Ledger Management: Recording buys, sells, dividend and bonus-issue
//     announcements, deposits and withdrawals in a chronological record.
//   - Cost Basis: FIFO lot accounting, with bonus capital increases scaling
//     lot quantities while the invested cost stays unchanged, and dividends
//     credited as a percentage of par value per held share.
//   - Valuation: Point-in-time and day-by-day portfolio values against a
//     pluggable price source, degrading gracefully when a price is missing.
//   - Data Persistence: Encoding and decoding the ledger to and from a
//     canonical, version-controllable JSONL form.
//
// This package serves as the foundational logic for the `btt` command-line
// tool; broker message recognition lives in the message subpackage and price
// feeds in the feed subpackage.
package bisttakip
