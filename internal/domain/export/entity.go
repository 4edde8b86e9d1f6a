package export

import "time"

// ExportRecord is an immutable audit entry written once per completed
// export. It is never updated.
type ExportRecord struct {
	ID             string
	ExportedAt     time.Time
	Format         string
	ShiftCount     int
	DateRangeLabel string
	FileName       string
	Encrypted      bool
}
