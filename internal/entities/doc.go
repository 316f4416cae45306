// Package entities provides the core data structures of the game-master API:
// encounters, campaigns, sessions and the derived statistics views.
package entities
