package superstaq

import "fmt"

// ApiErr is the base error type returned by the SuperstaQ API client.
type ApiErr struct {
	usrMsg, devMsg string
}

func (e ApiErr) Error() string { return fmt.Sprintf("usr_msg: %s\ndev_msg: %s", e.usrMsg, e.devMsg) }

// CredentialsErr represents missing or rejected API credentials.
type CredentialsErr struct {
	ApiErr
}

// NewCredentialsErr returns a CredentialsErr with the given messages.
func NewCredentialsErr(usrMsg, devMsg string) error {
	return CredentialsErr{ApiErr{usrMsg, devMsg}}
}

// NotFoundErr is returned when a job id is unknown to the server.
type NotFoundErr struct {
	JobID string
}

func (e NotFoundErr) Error() string {
	return fmt.Sprintf("job %q was not found on the server", e.JobID)
}

// BadTargetErr is returned when a target name cannot be resolved.
type BadTargetErr struct {
	target string
}

func (e BadTargetErr) Error() string {
	return fmt.Sprintf("could not resolve target %q; use Service.Targets to list options", e.target)
}

// HTTPErr carries a non-2xx response straight back to the caller.
type HTTPErr struct {
	StatusCode int
	Body       string
}

func (e HTTPErr) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Body)
}
