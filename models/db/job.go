package dbmodels

type Job struct {
	BaseModel
	Title       string `gorm:"type:varchar(255)"`
	Company     string `gorm:"type:varchar(255);index"`
	Location    string `gorm:"type:varchar(255)"`
	Description string
	EmployerID  string `gorm:"type:varchar(64);index"`
	Views       int64
	Clicks      int64
}
