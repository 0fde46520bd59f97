// Stored record shapes. These are the jsoniter wire format of every value the
// store keeps, so field names are part of the data layout.
package schemas

// Profile is the user record, keyed by username.
type Profile struct {
	Username string `json:"username"`
	Passhash string `json:"passhash,omitempty"`
	Extra    string `json:"extra,omitempty"`
}

// Redacted returns the profile without the password hash.
func (p Profile) Redacted() Profile {
	p.Passhash = ""
	return p
}

// Relationship is the directional per-(owner,counterpart) chat record. The
// owner is implied by the hash it lives in; Username is the counterpart.
type Relationship struct {
	Username string `json:"username"`
	Blocked  bool   `json:"blocked"`
}

// Message is one immutable entry of a pair chat log.
type Message struct {
	ID      string `json:"id"`
	From    string `json:"from"`
	To      string `json:"to"`
	Content string `json:"content"`
}

// Signin attempt results.
const (
	AttemptSucceeded = "Succeeded"
	AttemptFailed    = "Failed"
)

// Attempt is one signin activity entry, newest-first in the activity log.
type Attempt struct {
	At     string `json:"at"`
	Result string `json:"result"`
}
