package user

type Role string

const (
	RoleCandidate  Role = "candidate"
	RoleAmbassador Role = "ambassador"
	RoleRecruiter  Role = "recruiter"
	RoleAdmin      Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCandidate, RoleAmbassador, RoleRecruiter, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
