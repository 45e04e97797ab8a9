// Package operation
package operation

type Permission int64

// at most 64 permission nodes fit in one Permission
const (
	AdminEntry Permission = 1 << iota
	TriggerEntry
)

var PermissionMap = map[string]Permission{
	"AdminEntry":   AdminEntry,
	"TriggerEntry": TriggerEntry,
}

func (p *Permission) IsValid() bool {
	maxPerm := TriggerEntry<<1 - 1
	return *p >= 0 && *p <= maxPerm
}

func (p *Permission) HasPermission(perm Permission) bool {
	return *p&perm != 0
}

func (p *Permission) Grant(perm Permission) {
	*p |= perm
}

func (p *Permission) Revoke(perm Permission) {
	*p &^= perm
}
