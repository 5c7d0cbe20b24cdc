// Package reactionio reads the gzip-compressed, newline-delimited JSON
// reaction archive format this system persists and loads reaction inputs
// from (spec.md §1 calls this "an external deserializer" the core does not
// define). A malformed individual record, including a JSON line cut off
// mid-way, is logged and skipped rather than aborting the whole archive;
// input that is not gzip, or a gzip stream that ends mid-way, is reported
// as an error.
package reactionio
