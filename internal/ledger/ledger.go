// Package ledger encodes and decodes the wagon-status list stored on a rake.
//
// The persisted representation is flat delimited text, "W001:PENDING;W002:UNLOADED",
// as it arrives from the FOIS feed. Everything else in the system works with
// []Wagon; this package is the sole translation boundary.
package ledger

import (
	"fmt"
	"strings"
)

// Status is the unloading state of a single wagon.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusUnloaded Status = "UNLOADED"
)

// ParseStatus validates a wagon status string, case-insensitively.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusUnloaded:
		return st, nil
	default:
		return "", fmt.Errorf("ledger: invalid wagon status %q", s)
	}
}

// Wagon is one rail car within a rake.
type Wagon struct {
	WagonNo string
	Status  Status
}

// Encode joins wagons as "<wagon_no>:<status>" entries separated by ";".
// An empty list encodes to the empty string.
func Encode(wagons []Wagon) string {
	if len(wagons) == 0 {
		return ""
	}
	parts := make([]string, len(wagons))
	for i, w := range wagons {
		parts[i] = w.WagonNo + ":" + string(w.Status)
	}
	return strings.Join(parts, ";")
}

// Decode splits ledger text back into wagons. Segments without a ":" are
// dropped rather than reported; wagon numbers and statuses are trimmed of
// surrounding whitespace. Status text is preserved as stored — matching
// elsewhere is case-insensitive.
func Decode(text string) []Wagon {
	var wagons []Wagon
	if text == "" {
		return wagons
	}
	for _, part := range strings.Split(text, ";") {
		wagonNo, status, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		wagons = append(wagons, Wagon{
			WagonNo: strings.TrimSpace(wagonNo),
			Status:  Status(strings.TrimSpace(status)),
		})
	}
	return wagons
}

// CountUnloaded returns the number of wagons marked UNLOADED.
func CountUnloaded(wagons []Wagon) int {
	n := 0
	for _, w := range wagons {
		if strings.EqualFold(string(w.Status), string(StatusUnloaded)) {
			n++
		}
	}
	return n
}

// CountPending returns the number of wagons not yet unloaded. Any status
// other than UNLOADED counts as pending.
func CountPending(wagons []Wagon) int {
	return len(wagons) - CountUnloaded(wagons)
}
