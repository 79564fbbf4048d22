package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxFolderNameLength = 100

// Folder groups a user's analyses under a name
type Folder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FolderSummary is a folder together with the number of analyses filed in it
type FolderSummary struct {
	Folder        *Folder
	AnalysisCount int
}

// NormalizeFolderName trims surrounding whitespace from a folder name
func NormalizeFolderName(name string) string {
	return strings.TrimSpace(name)
}

// Validate ensures the folder adheres to domain rules
func (f *Folder) Validate() error {
	if f.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	if f.Name == "" {
		return MissingField("name")
	}
	if utf8.RuneCountInString(f.Name) > MaxFolderNameLength {
		return InvalidValue("name")
	}
	return nil
}
