// SPDX-License-Identifier: MIT

// Package dataset is the file-facing side of mstbench.
//
// It owns three formats:
//
//   - the JSON input document ({"graphs": [...]}) read by ReadInput or,
//     one lazily decoded record per batch item, by ReadItems, and written
//     by WriteInput, with GraphRecord.ToGraph as the only gate between
//     file contents and core.Graph;
//   - the JSON report document ({"results": [...]}) built by NewReport from
//     analyzer outcomes and written by WriteReport;
//   - HCL benchmark plans (LoadPlan) that select preset or custom Suites.
//
// Writes go to a temporary sibling file that is then renamed over the
// target, so a reader never observes a half-written document. File errors
// are annotated with github.com/pingcap/errors; record validation errors
// wrap ErrMalformedInput and the underlying core sentinel.
package dataset
