// Package transcript defines the transcript record model shared by every
// gradecheck component.
//
// A Record mirrors one data row of the credit acquisition export. The package
// also owns the academic calendar ordering (SemesterRank), the pass/fail
// vocabulary, and the grade scale that maps letter grades to grade points.
// Everything here is pure: no function reads or mutates shared state, so the
// filter and aggregation packages can call them freely.
package transcript
