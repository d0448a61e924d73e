// Package domain defines the authorization and rate-limiting models exchanged with the
// external auth and rate-limit services.
package domain

import "strings"

// Capability is a token the auth service checks against the caller's grants.
type Capability string

const (
	// MembersReadCapability allows listing and reading members.
	MembersReadCapability Capability = "MEMBERS:READ"

	// MembersWriteCapability allows creating and updating members.
	MembersWriteCapability Capability = "MEMBERS:WRITE"

	// MembersDeleteCapability allows removing members.
	MembersDeleteCapability Capability = "MEMBERS:DELETE"
)

// Capabilities is the ordered set of capabilities a protected operation requires.
// It is declared once per route and never mutated at runtime.
type Capabilities []Capability

// Require builds a Capabilities set, dropping duplicates while keeping order.
func Require(capabilities ...Capability) Capabilities {
	seen := make(map[Capability]struct{}, len(capabilities))
	required := make(Capabilities, 0, len(capabilities))
	for _, c := range capabilities {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		required = append(required, c)
	}
	return required
}

// Strings returns the capabilities as plain strings, in order.
func (c Capabilities) Strings() []string {
	out := make([]string, len(c))
	for i, capability := range c {
		out[i] = string(capability)
	}
	return out
}

// String joins the capabilities with commas, for logging.
func (c Capabilities) String() string {
	return strings.Join(c.Strings(), ",")
}
