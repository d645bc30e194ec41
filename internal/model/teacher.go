// Package model holds the domain row types shared between the
// repository, service, and handler layers.
package model

// Teacher is a teachers table row.
//
// Courses is a pointer so the JSON encoder can distinguish "relation not
// loaded" (nil, field omitted) from "relation loaded but empty"
// (non-nil, serialized as []). Get-by-id always loads the relation;
// listing loads it only when requested.
type Teacher struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	Courses    *[]Course `json:"courses,omitempty"`
}

// Course is a courses table row, always owned by exactly one teacher.
type Course struct {
	ID        int64  `json:"id"`
	TeacherID int64  `json:"teacherId"`
	Title     string `json:"title"`
	Code      string `json:"code"`
}
