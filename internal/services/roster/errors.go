package roster

// ServiceError is a custom error type for roster service construction errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig     ServiceError = "config cannot be nil"
	ErrNilGroupRepo  ServiceError = "group repository cannot be nil"
	ErrNilPlayerRepo ServiceError = "player repository cannot be nil"
)

// MessageGroupMissing is shown when a player is added to a group nobody created
const MessageGroupMissing = "that group does not exist"
