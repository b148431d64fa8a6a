package guard

// Decision is the guard's navigation outcome: either allow or a redirect to a
// concrete path. The zero value is not a valid decision.
type Decision struct {
	action action
	target string
}

type action uint8

const (
	actionAllow action = iota + 1
	actionRedirect
)

// Allow permits the navigation.
func Allow() Decision {
	return Decision{action: actionAllow}
}

// RedirectTo rejects the navigation and names the path to send the user to.
func RedirectTo(path string) Decision {
	return Decision{action: actionRedirect, target: path}
}

// Allowed reports whether the navigation may proceed.
func (d Decision) Allowed() bool {
	return d.action == actionAllow
}

// Redirect returns the redirect target and whether the decision is a redirect.
func (d Decision) Redirect() (string, bool) {
	if d.action != actionRedirect {
		return "", false
	}
	return d.target, true
}

// Outcome returns a short label for logs and metrics.
func (d Decision) Outcome() string {
	switch d.action {
	case actionAllow:
		return "allow"
	case actionRedirect:
		return "redirect"
	default:
		return "unknown"
	}
}
