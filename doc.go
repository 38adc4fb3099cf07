// Package weatherpath answers shortest-route questions over a directed road
// network whose travel costs depend on the weather.
//
// Every road carries four non-negative weights, one per weather regime
// (normal, rain, snow, storm). For a chosen regime the all-pairs shortest
// distances are computed with Floyd–Warshall together with a successor
// table, so any route can be reconstructed city by city.
//
// Layout:
//
//	network/          city index and per-regime weight tensor (the store)
//	matrix/           dense matrices and the Floyd–Warshall kernel
//	floyd/            Solve a regime into an immutable Solution (paths, center)
//	textio/           the six-column road file: load, save, bundled sample
//	planner/          active regime, solution cache, mutation logging
//	internal/config   flags, environment, .env and config file
//	internal/console  line-oriented command interpreter
//	internal/httpapi  JSON API over gin
//	cmd/weatherpath   the binary
//
// Quick example:
//
//	g := network.New()
//	_ = g.AddEdge("Lima", "Quito", network.Weights{Normal: 10, Rain: 12, Snow: 15, Storm: 20})
//	_ = g.AddEdge("Quito", "Bogota", network.Weights{Normal: 5, Rain: 8, Snow: 10, Storm: 15})
//	sol, _ := floyd.Solve(g, network.Rain)
//	d, _ := sol.Distance("Lima", "Bogota") // 20
//	p, _ := sol.Path("Lima", "Bogota")     // [Lima Quito Bogota]
//
// Unreachable pairs report +Inf and an empty path; the center of a regime
// is the city whose worst-case distance to every other city is smallest.
package weatherpath
