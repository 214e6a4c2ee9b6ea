// Package conformance holds the kind/sample-value table used to exercise
// every parameter kind uniformly, plus subtest runners over it.
//
// The table is a fixed list of structured records: one Case per kind, each
// carrying representative sample values (explicit nil, empty string, zero
// and NaN, false, a callable, ...). Kinds whose cases are disabled stay in
// the table with a Skip reason, so the gaps remain visible instead of being
// silently dropped.
//
// The runners (Each, EachSample) register one subtest per row — or per
// (row, sample) pair — with t.Run, skipping disabled rows with their
// reasons. Subtests are independent: execution order never matters.
//
// Equal is the value comparison used by conformance tests; unlike plain
// reflect.DeepEqual it equates NaNs and compares funcs by identity, both of
// which appear among the samples.
package conformance
