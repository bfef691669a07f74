// Package core implements the antique inventory conversion engine.
//
// Given one uploaded inventory table it produces three fixed-schema
// import tables in a single pass:
//
//   - NetSuite Item Import
//   - Shopify Product Import
//   - NetSuite Inventory Adjustment
//
// The pipeline is Normalize -> (per row) Derive -> three mappers ->
// Bundle. Row i of every output table corresponds to row i of the
// input; no rows are dropped, duplicated or reordered.
//
// This package has no UI or I/O dependencies and can be driven by any
// frontend.
package core
