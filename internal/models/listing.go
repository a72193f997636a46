package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing is one recorded snapshot of a directory's regular files.
type Listing struct {
	gorm.Model
	Directory string `gorm:"index; not null"`
	FileCount int
	Files     datatypes.JSON
}
