// Package scoring aggregates the per-step component scores a finished
// Scenario accumulated (distance, cosine, curve, length, turn, misc) into
// a single weighted final score, and optionally renders a per-row debug
// line for each matched letter.
package scoring
