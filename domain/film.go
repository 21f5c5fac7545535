package domain

// Film is immutable after catalog seeding.
type Film struct {
	ID          int32
	Name        string
	DurationSec int32
}
