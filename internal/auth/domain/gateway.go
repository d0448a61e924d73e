package domain

// ValidationRequest is the payload sent to the auth service.
type ValidationRequest struct {
	AccessToken string   `json:"accessToken"`
	Roles       []string `json:"roles"`
}

// AuthorizationDecision is the auth service's answer for a valid credential.
// It only lives long enough to fill the request's identity slot.
type AuthorizationDecision struct {
	UserID string `json:"userId"`
}

// RateLimitOutcome classifies how the rate-limit gate resolved a request.
type RateLimitOutcome string

const (
	// RateLimitSkipped means no identity was present, so no call was made.
	RateLimitSkipped RateLimitOutcome = "skipped"

	// RateLimitAllowed means the rate-limit service accepted the request.
	RateLimitAllowed RateLimitOutcome = "allowed"

	// RateLimitFailOpen means the rate-limit service faulted and the request was let through.
	RateLimitFailOpen RateLimitOutcome = "fail_open"

	// RateLimitBlocked means the failure was propagated and the request rejected.
	RateLimitBlocked RateLimitOutcome = "blocked"
)
