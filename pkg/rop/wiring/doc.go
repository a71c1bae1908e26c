// Package wiring links chain nodes from a YAML layout instead of code:
//
//	routes:
//	  - [chain 1, chain 2, chain 3]
//	  - [chain 3, chain 1]
//
// Routes are applied in order, so a later route can relink a node an earlier
// one already linked.
package wiring
