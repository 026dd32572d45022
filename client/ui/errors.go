package ui

// ActionableError carries a message meant for the player rather than the log.
type ActionableError struct {
	Message string
}

func (e *ActionableError) Error() string {
	return e.Message
}
