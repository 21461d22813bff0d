// Package ingest turns the raw bytes of a credit acquisition export into
// transcript records.
//
// Parsing is a single synchronous pass: detect the text encoding, decode to
// UTF-8, split into lines, find the last header signature line, and map every
// following line onto a transcript.Record. The header search is the only
// structural check. Numeric fields that fail to parse are recorded as zero and
// reported through Result.Warnings instead of failing the import.
package ingest
