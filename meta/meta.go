// meta/meta.go
package meta

// MAX_MOVES caps a game loop. Kalah games end far sooner, the cap only guards
// against misbehaving agents.
const MAX_MOVES = 1000

// DEFAULT_SEED seeds random agents when no seed is given.
const DEFAULT_SEED = 1
