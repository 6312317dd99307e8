// Package divisor implements the Sainte-Laguë (Webster) divisor method.
//
// Every tier of the seat calculation reduces to the same question: given vote
// counts per entity and a seat target T, find a divisor d such that
//
//	Σ round_half_up(votes_i / d) == T
//
// and award each entity round_half_up(votes_i / d) seats. Entities are states
// (weighted by population) or parties (weighted by second votes).
//
// # Search
//
// The rounded sum S(d) is a non-increasing step function of d. The search seeds
// d with Σvotes / T, then brackets the target by doubling or halving d and
// bisects the bracket. When the bracket collapses to adjacent floating-point
// values without reaching T, the entities whose seats differ across the bracket
// are tied at the breakpoint. The missing seats go to the tied entities in
// lexical ID order and the tied IDs are reported in Result.Ties.
//
// # Floors
//
// ApportionWithFloors runs the same search on S_f(d) = Σ max(round_half_up(v_i/d), f_i),
// guaranteeing that no entity ends below its floor.
//
// All functions are pure and safe for concurrent use.
package divisor
