package services

import (
	"strings"

	"roomservice/internal/core/domain/model/user"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RolePolicy maps a display name to a role using a configured allow-list of
// administrator names. Names are compared after collapsing whitespace and
// lower-casing with the rules of the configured language, so "İPEK" and
// "ipek" match under Turkish rules but not under English ones.
//
// Example:
//
//	policy := services.NewRolePolicy([]string{"Ayşe Yılmaz"}, language.Turkish)
//	policy.RoleFor("AYŞE   YILMAZ") // user.Admin
//	policy.RoleFor("Ali Veli")      // user.Regular
type RolePolicy struct {
	tag    language.Tag
	admins map[string]struct{}
}

// NewRolePolicy creates a policy for the given administrator names. Blank
// entries are ignored; an empty list makes every user Regular.
func NewRolePolicy(adminNames []string, tag language.Tag) RolePolicy {
	p := RolePolicy{
		tag:    tag,
		admins: make(map[string]struct{}, len(adminNames)),
	}
	for _, name := range adminNames {
		if key := p.normalize(name); key != "" {
			p.admins[key] = struct{}{}
		}
	}
	return p
}

// RoleFor returns Admin when the name matches a configured administrator.
func (p RolePolicy) RoleFor(fullName string) user.Role {
	if _, ok := p.admins[p.normalize(fullName)]; ok {
		return user.Admin
	}
	return user.Regular
}

// AdminCount returns the number of distinct configured administrators.
func (p RolePolicy) AdminCount() int {
	return len(p.admins)
}

// normalize builds a fresh Caser per call: a Caser keeps state and must not be
// shared between goroutines.
func (p RolePolicy) normalize(name string) string {
	collapsed := strings.Join(strings.Fields(name), " ")
	return cases.Lower(p.tag).String(collapsed)
}
