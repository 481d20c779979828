package models

import "time"

type OrganizationModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:200;not null"`
	Timezone  string `gorm:"size:64;not null;default:UTC"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (OrganizationModel) TableName() string {
	return "organizations"
}

type ClassificationModel struct {
	ID           uint   `gorm:"primaryKey"`
	OrgID        uint   `gorm:"not null;index"`
	Name         string `gorm:"size:100;not null"`
	Abbreviation string `gorm:"size:10;not null"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (ClassificationModel) TableName() string {
	return "classifications"
}

type TeamModel struct {
	ID        uint   `gorm:"primaryKey"`
	OrgID     uint   `gorm:"not null;index"`
	Name      string `gorm:"size:100;not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

func (TeamModel) TableName() string {
	return "teams"
}

type OTReasonModel struct {
	ID       uint   `gorm:"primaryKey"`
	OrgID    uint   `gorm:"not null;index"`
	Code     string `gorm:"size:50;not null"`
	Label    string `gorm:"size:200;not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

func (OTReasonModel) TableName() string {
	return "ot_reasons"
}
