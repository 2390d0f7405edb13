package route

import "github.com/hmse-unipi/portal/internal/model"

type Decision struct {
	// Location is empty when the navigation is allowed.
	Location string
}

var Allow = Decision{}

func RedirectTo(path string) Decision {
	return Decision{Location: path}
}

func (d Decision) Allowed() bool {
	return d.Location == ""
}

// HomeFor is the landing page for an authenticated user.
func (t *Table) HomeFor(u *model.User) string {
	if u.IsAdmin() {
		return t.AdminHome
	}
	return t.Home
}

// Decide classifies path and applies the navigation decision table.
func (t *Table) Decide(path string, s *model.Session) Decision {
	return t.DecideFor(t.Classify(path), s)
}

// DecideFor applies the decision table to an already known
// classification. A session that is not Valid is treated as absent.
func (t *Table) DecideFor(c Classification, s *model.Session) Decision {
	authenticated := s.Valid()

	switch c {
	case Protected:
		if !authenticated {
			return RedirectTo(t.Login)
		}
	case ProtectedAdmin:
		if !authenticated {
			return RedirectTo(t.Login)
		}
		if !s.User.IsAdmin() {
			return RedirectTo(t.Home)
		}
	case AuthEntry:
		if authenticated {
			return RedirectTo(t.HomeFor(s.User))
		}
	}

	return Allow
}
