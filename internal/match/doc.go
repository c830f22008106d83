// Package match finds near misses among names: an unknown subcommand, a
// control whose id the runtime header spells differently.
package match
