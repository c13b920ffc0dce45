// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// User represents an account in the social-scheduling system. IDs are
// assigned by the remote data service.
type User struct {
	ID         int    // Server-assigned identifier.
	Name       string // Display name.
	Email      string // Primary contact email.
	LocationID *int   // Optional home location reference.
	ProfilePic string // Optional profile image reference.
}
