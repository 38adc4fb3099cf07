// Package floyd answers all-pairs shortest-path queries over a weather-aware
// road network.
//
// Overview:
//
//   - Solve projects the store onto one weather regime, copies the adjacency
//     matrix, and closes it with the Floyd–Warshall kernel from package matrix,
//     tracking a successor matrix for path reconstruction.
//   - The resulting *Solution is an immutable snapshot: later mutations of the
//     store never change it. Solution.Stale(rev) tells callers when the store
//     has moved on and a new Solve is due.
//
// Queries:
//
//   - Distance(from, to): shortest travel time, +Inf when unknown or unreachable.
//   - Path(from, to): the witnessing sequence of locations, nil when there is none.
//   - Intermediates(from, to): the interior of Path (no endpoints).
//   - Reachable(from, to), DistancesFrom(origin).
//   - Center() and Eccentricity(name) under the configured CenterPolicy.
//
// Center policy:
//
//   - CenterStrict (default): a location is eligible only if it reaches every
//     other location. Eccentricity is the largest distance to a peer; the
//     smallest eccentricity wins and ties go to the lowest index. When no
//     location is eligible Center reports ("", false).
//   - CenterReachableOnly: unreachable peers are ignored when computing the
//     eccentricity. A sink with no outgoing roads then scores 0 and wins; kept
//     for compatibility with older reports.
//
// Complexity:
//
//   - Solve: Time O(N³), Space O(N²).
//   - Path: O(N). Distance and Reachable: O(1). DistancesFrom: O(N).
//
// Errors (sentinel):
//
//   - ErrNilSource      if Solve receives a nil Source.
//   - network.ErrInvalidRegime (wrapped) for a regime outside Normal..Storm.
//
// Example usage:
//
//	sol, err := floyd.Solve(g, network.Rain)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sol.Distance("Lima", "Caracas"), sol.Path("Lima", "Caracas"))
package floyd
