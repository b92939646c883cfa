package models

type Master struct {
	ID             int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64   `gorm:"not null;uniqueIndex" json:"userId"`
	Specialization string  `gorm:"not null" json:"specialization"`
	Description    string  `gorm:"not null" json:"description"`
	Experience     string  `gorm:"not null" json:"experience"`
	HourlyRate     float64 `gorm:"type:decimal(10,2);not null" json:"hourlyRate"`
	Rating         float64 `gorm:"type:decimal(3,2);default:0" json:"rating"`
	ReviewCount    int     `gorm:"default:0" json:"reviewCount"`
	IsVerified     bool    `gorm:"default:false" json:"isVerified"`
	Avatar         string  `json:"avatar,omitempty"`
	CompletedJobs  int     `gorm:"default:0" json:"completedJobs"`
	ResponseTime   string  `gorm:"default:'< 30 min'" json:"responseTime"`
	RepeatClients  int     `gorm:"default:0" json:"repeatClients"`

	// Associations
	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Services []Service `gorm:"foreignKey:MasterID" json:"services,omitempty"`
}

func (Master) TableName() string {
	return "masters"
}
