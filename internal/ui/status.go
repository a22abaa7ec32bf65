// Package ui holds the desktop viewer's side panel and debug overlays.
package ui

import (
	"fmt"
	"time"

	"aztec/internal/aztec"
	"aztec/internal/core"
)

// Line is one label/value row of the status panel.
type Line struct {
	Label string
	Value string
}

// Source exposes the shuffle state shown in the panel.
type Source interface {
	Order() int
	MaxOrder() int
	Phase() aztec.Phase
	Generation() int
	LastMigrate() aztec.MigrateStats
	LastFill() aztec.FillStats
}

// Controls exposes the session state shown in the panel.
type Controls interface {
	Paused() bool
	Mode() core.Mode
	Interval() time.Duration
	Steps() int
}

// StatusLines renders the current state as panel rows.
func StatusLines(src Source, ctl Controls) []Line {
	state := "running"
	if ctl.Paused() {
		state = "paused"
	}
	mig, fill := src.LastMigrate(), src.LastFill()
	return []Line{
		{"Order", fmt.Sprintf("%d / %d", src.Order(), src.MaxOrder())},
		{"Next", src.Phase().String()},
		{"Mode", ctl.Mode().String()},
		{"State", state},
		{"Interval", ctl.Interval().Round(time.Millisecond).String()},
		{"Steps", fmt.Sprint(ctl.Steps())},
		{"Restarts", fmt.Sprint(src.Generation())},
		{"Moved", fmt.Sprint(mig.Moved)},
		{"Annihilated", fmt.Sprint(mig.Annihilated)},
		{"Blocks filled", fmt.Sprint(fill.Tiles)},
		{"Fill rounds", fmt.Sprint(fill.Rounds)},
	}
}
