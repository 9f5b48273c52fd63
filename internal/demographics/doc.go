// Package demographics shapes raw Census counts and percentages into the
// records the dashboard charts consume: the age/sex pyramid and the race
// composition pie.
package demographics
