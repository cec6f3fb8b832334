package handler

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/pkordes/rec-registration/internal/domain"
)

// rosterCSVHeaders defines the column names written as the first row of a roster export.
var rosterCSVHeaders = []string{
	"id", "program_id", "program_name", "full_name", "age", "special_notes", "paid",
}

// writeRosterCSV encodes rows as a CSV attachment named after the program.
func writeRosterCSV(w http.ResponseWriter, programID int64, rows []domain.RosterRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	//nolint:errcheck // bytes.Buffer.Write never returns an error.
	cw.Write(rosterCSVHeaders)
	for _, r := range rows {
		//nolint:errcheck
		cw.Write(rosterRowToCSVRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="roster-%d.csv"`, programID))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	//nolint:errcheck
	w.Write(buf.Bytes())
}

// rosterRowToCSVRecord encodes a domain.RosterRow as a flat string slice.
func rosterRowToCSVRecord(r domain.RosterRow) []string {
	return []string{
		strconv.FormatInt(r.ID, 10),
		strconv.FormatInt(r.ProgramID, 10),
		r.ProgramName,
		r.FullName,
		strconv.Itoa(r.Age),
		r.SpecialNotes,
		strconv.FormatBool(r.Paid),
	}
}
