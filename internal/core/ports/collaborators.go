package ports

import "context"

// Recognizer turns a label photo into text.
// Implementations must honour ctx deadlines and return errs.ErrRecognitionFailed
// (wrapped) for unreadable images rather than blocking.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

// Caller places an automated phone call to a recipient.
// delivered is false when the call system accepted the request but did not reach the phone;
// err is a wrapped errs.ErrCollaboratorUnavailable on timeout or transport failure.
type Caller interface {
	Call(ctx context.Context, phone string) (delivered bool, err error)
}
