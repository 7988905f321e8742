package module

// Clock is the time oracle of the custody engine.
type Clock interface {
	// Now returns the current unix time in seconds. Successive calls never
	// return a smaller value.
	Now() int64
}
