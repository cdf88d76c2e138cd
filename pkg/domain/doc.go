// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (planets, the
// scientists who study them and the missions that connect both) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
//
// Entities are built through validate-then-construct functions (NewScientist,
// NewMission, ...) and changed through patches (Scientist.Apply, ...), so an
// invalid value never reaches the storage layer.
package domain
