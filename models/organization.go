package models

import "time"

// OrgOfficer is an officer or adviser record kept by an organization.
// Officer rows are hard-deletable; everything else in the system soft-deletes.
type OrgOfficer struct {
	OfficerID int        `gorm:"primaryKey;column:officer_id" json:"officer_id"`
	OrgID     int        `gorm:"column:org_id" json:"org_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Position  string     `gorm:"column:position" json:"position"`
	IsAdviser bool       `gorm:"column:is_adviser" json:"is_adviser"`
	Email     *string    `gorm:"column:email" json:"email,omitempty"`
	PhotoID   *int       `gorm:"column:photo_id" json:"photo_id,omitempty"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  *time.Time `gorm:"column:update_at" json:"update_at,omitempty"`
}

func (OrgOfficer) TableName() string {
	return "org_officers"
}

type OrgSocialContact struct {
	ContactID int       `gorm:"primaryKey;column:contact_id" json:"contact_id"`
	OrgID     int       `gorm:"column:org_id" json:"org_id"`
	Platform  string    `gorm:"column:platform" json:"platform"`
	Handle    string    `gorm:"column:handle" json:"handle"`
	URL       *string   `gorm:"column:url" json:"url,omitempty"`
	CreateAt  time.Time `gorm:"column:create_at" json:"create_at"`
}

func (OrgSocialContact) TableName() string {
	return "org_social_contacts"
}

// OrgDocument is an organization's filed document (constitution, resolutions,
// permits) kept outside the submission workflow.
type OrgDocument struct {
	DocumentID int        `gorm:"primaryKey;column:document_id" json:"document_id"`
	OrgID      int        `gorm:"column:org_id" json:"org_id"`
	Title      string     `gorm:"column:title" json:"title"`
	FileID     int        `gorm:"column:file_id" json:"file_id"`
	CreateAt   time.Time  `gorm:"column:create_at" json:"create_at"`
	DeleteAt   *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	File *FileUpload `gorm:"foreignKey:FileID" json:"file,omitempty"`
}

func (OrgDocument) TableName() string {
	return "org_documents"
}
