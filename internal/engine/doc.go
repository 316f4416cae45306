// Package engine holds the pure Pathfinder 2e encounter math: creature and
// hazard XP, difficulty bands, treasure valuation and level progress.
//
// Nothing here touches storage. Callers resolve library ids to levels and
// prices first and hand the engine plain values.
package engine
