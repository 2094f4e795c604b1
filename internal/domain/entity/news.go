// Package entity contains the core business objects of the project.
package entity

import "time"

// News represents a single published or draft news entry.
// The author relationship is a plain foreign-key field; joins are performed
// explicitly by the repository layer when needed.
type News struct {
	ID        int64     // Opaque integer handle, generated by the database.
	Title     string    // Headline of the entry.
	Content   string    // Body of the entry.
	AuthorID  int64     // Foreign key to the User who wrote the entry.
	IsPublic  bool      // Non-public entries are only visible to authenticated users.
	CreatedAt time.Time // Timestamp of when the entry was created.
	UpdatedAt time.Time // Timestamp of the last modification.
}

// IsOwnedBy reports whether the given user authored this entry.
func (n *News) IsOwnedBy(userID int64) bool {
	return n.AuthorID == userID
}
