package domain

// RosterEntry is a participant's registration against a Program.
// ProgramID is a logical reference only; nothing enforces that the program exists.
// Paid is fixed at creation: Register stores false, Pay stores true.
type RosterEntry struct {
	ID           int64  `json:"id"`
	ProgramID    int64  `json:"program_id" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
	Age          int    `json:"age" validate:"required"`
	SpecialNotes string `json:"special_notes"`
	Paid         bool   `json:"paid"`
}

// RosterRow is a roster entry joined to the name of its program.
// Entries whose program does not exist never produce a RosterRow.
type RosterRow struct {
	ID           int64  `json:"id"`
	ProgramID    int64  `json:"program_id"`
	ProgramName  string `json:"program_name"`
	FullName     string `json:"full_name"`
	Age          int    `json:"age"`
	SpecialNotes string `json:"special_notes"`
	Paid         bool   `json:"paid"`
}

// Payment carries the mock card details submitted with a paid registration.
// Only the shape of CardNumber is checked; nothing here is ever persisted.
type Payment struct {
	CardNumber string `json:"card_number" validate:"required,len=16,number"`
	Expiration string `json:"expiration" validate:"required"`
	CVV        string `json:"cvv" validate:"required"`
}
