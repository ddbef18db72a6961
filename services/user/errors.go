package user

// ValidationError signals missing or malformed registration or update input.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError signals that a user ID did not resolve.
type NotFoundError struct {
	ID string
}

func (e NotFoundError) Error() string {
	return "User not found"
}

// DuplicateEmailError signals an email collision at registration.
type DuplicateEmailError struct {
	Email string
}

func (e DuplicateEmailError) Error() string {
	return "An account with this email already exists"
}

// InvalidCredentialsError signals a failed email/password check.
type InvalidCredentialsError struct{}

func (e InvalidCredentialsError) Error() string {
	return "Invalid email or password"
}

// InactiveAccountError signals a login against a deactivated account.
type InactiveAccountError struct {
	Email string
}

func (e InactiveAccountError) Error() string {
	return "Account is deactivated. Please contact administrator."
}
