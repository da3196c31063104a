package rfid

import "context"

// Status enumerates the four terminal states of a scan request. Every
// Scan call ends in exactly one of these; there is no error path out.
type Status string

const (
	StatusOK        Status = "ok"
	StatusRejected  Status = "rejected"
	StatusTimeout   Status = "timeout"
	StatusCancelled Status = "cancelled"
)

// Outcome is the resolved result of one scan request.
type Outcome struct {
	Status Status `json:"status"`
	UID    string `json:"uid,omitempty"`
	Reason string `json:"reason,omitempty"`
}

func OK(uid string) Outcome {
	return Outcome{Status: StatusOK, UID: uid}
}

func Rejected(uid, reason string) Outcome {
	return Outcome{Status: StatusRejected, UID: uid, Reason: reason}
}

func Timeout() Outcome {
	return Outcome{Status: StatusTimeout}
}

func Cancelled() Outcome {
	return Outcome{Status: StatusCancelled}
}

// Decision is a policy's verdict on a scanned card.
type Decision struct {
	OK     bool
	Reason string
}

func Accept() Decision {
	return Decision{OK: true}
}

func Reject(reason string) Decision {
	return Decision{Reason: reason}
}

// Policy is the caller-supplied acceptance check evaluated against the
// scanned uid and the matching card, or nil when the uid is not yet
// registered. Whether an unknown uid is acceptable is entirely the
// policy's call.
type Policy func(ctx context.Context, uid string, card *Card) Decision

// AcceptAll is the plain-scan policy: any readable card passes.
func AcceptAll(_ context.Context, _ string, _ *Card) Decision {
	return Accept()
}
