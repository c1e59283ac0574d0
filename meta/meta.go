// meta/meta.go
package meta

// MAX_CHOICES is how many times each pairing may be chosen in one game.
const MAX_CHOICES = 4

// PRIMARY_MIN and PRIMARY_MAX bound the primary (red) die.
const PRIMARY_MIN = 1
const PRIMARY_MAX = 6

// SECONDARY_MIN and SECONDARY_MAX bound the secondary (yellow) die.
const SECONDARY_MIN = 0
const SECONDARY_MAX = 5

// PLAYOUTS defines the number of games a simulation plays by default.
const PLAYOUTS = 100

// MAX_LINKS caps the links a random player adds in one turn.
const MAX_LINKS = 2
