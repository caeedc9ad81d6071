package model

const (
	RoleAdmin   = "Admin"
	RoleTrainer = "Trainer"
	RoleAthlete = "Athlete"
)

// AllRoles is the fixed role set; new accounts get RoleAthlete by default.
var AllRoles = []string{RoleAdmin, RoleTrainer, RoleAthlete}

type Role struct {
	ID   uint   `json:"id" gorm:"primarykey"`
	Name string `json:"name" gorm:"type:varchar(64);uniqueIndex"`
}
