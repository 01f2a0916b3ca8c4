package component

// Food tags the single edible item on the arena.
type Food struct{}
