package models

type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleEmployer UserRole = "employer"
)

var roleHumanName = map[UserRole]string{
	UserRoleEmployee: "Job seeker",
	UserRoleEmployer: "Employer",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, ok := roleHumanName[r]
	return ok
}

const (
	DemoEmployeeID    = "user-demo-employee"
	DemoEmployeeEmail = "employee@demo.com"
	DemoEmployerID    = "user-demo-employer"
	DemoEmployerEmail = "employer@demo.com"
)
