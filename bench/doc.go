// Package bench measures how a document fares in ADF against JSON and
// YAML: encoded sizes, rough LLM token estimates and codec timings,
// plus a round-trip stability check.
//
// The numbers exist to answer one question: how much prompt budget
// does a payload cost in each serialization. Token counts are a
// heuristic, not a tokenizer; treat them as comparative, not absolute.
package bench
