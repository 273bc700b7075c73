package stats

// StatsError is a custom error type for stats-related errors
type StatsError string

// Error implements the error interface
func (e StatsError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNoResults        StatsError = "match has no results"
	ErrNilConfig        StatsError = "config cannot be nil"
	ErrNilHistoryRepo   StatsError = "history repository cannot be nil"
	ErrNilClock         StatsError = "clock cannot be nil"
	ErrNilUUIDGenerator StatsError = "UUID generator cannot be nil"
)
