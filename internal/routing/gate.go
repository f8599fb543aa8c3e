package routing

import (
	"strings"

	"github.com/dcebotari/vatra/internal/platform/constants"
)

// GateAction is the access-gate outcome for one request.
type GateAction int

const (
	// GateAllow lets the request through unchanged.
	GateAllow GateAction = iota

	// GateRedirectLogin sends an anonymous visitor away from the admin area.
	GateRedirectLogin

	// GateRedirectDashboard sends an authenticated admin away from the login page.
	GateRedirectDashboard
)

// Decision is a gate outcome plus the redirect target when one applies.
type Decision struct {
	Action GateAction
	Target string
}

// EvaluateGate decides whether a page request may proceed.
//
// The gate is locale-agnostic: any supported locale prefix is stripped
// before the protected-area patterns are matched. Redirect targets reuse the
// path's own locale when it has one; otherwise resolve is invoked once to
// pick the visitor's locale. resolve is never called for allowed requests.
//
// The decision is a pure function of (path, authenticated, resolve), so
// evaluating the same inputs twice always yields the same outcome.
func EvaluateGate(path string, authenticated bool, resolve func() Locale) Decision {
	pathLocale, withoutLocale, hasLocale := SplitLocale(path)

	isDashboard := strings.HasPrefix(withoutLocale, constants.PathDashboard)
	isLogin := withoutLocale == constants.PathLogin ||
		strings.HasPrefix(withoutLocale, constants.PathLogin+"/")

	targetLocale := func() Locale {
		if hasLocale {
			return pathLocale
		}
		return resolve()
	}

	if isDashboard && !authenticated {
		return Decision{
			Action: GateRedirectLogin,
			Target: "/" + string(targetLocale()) + constants.PathLogin,
		}
	}

	if isLogin && authenticated {
		return Decision{
			Action: GateRedirectDashboard,
			Target: "/" + string(targetLocale()) + constants.PathDashboard,
		}
	}

	return Decision{Action: GateAllow}
}
