package domain

import (
	"fmt"
	"strings"
)

// The event description is the durable, human-readable encoding of a
// reservation: one "Label: value" line per field, with the reservation
// marker as the last line. Rewrites must touch only the lines they own
// and preserve everything else verbatim.

// FormatPrice renders a price the way it is annotated in descriptions
func FormatPrice(price float64) string {
	return fmt.Sprintf("R$ %.2f", price)
}

// MarkerLine returns the literal marker line for a reservation id
func MarkerLine(reservationID string) string {
	return ReservationMarkerPrefix + reservationID
}

// BuildDescription encodes a reservation as an event description
func BuildDescription(r *Reservation) string {
	libras := "não"
	if r.Libras {
		libras = "sim"
	}

	lines := []string{
		fmt.Sprintf("%s: %s", LabelPatient, r.PatientName),
		fmt.Sprintf("%s: %s", LabelPhone, r.Phone),
		fmt.Sprintf("%s: %s", LabelEmail, r.Email),
		fmt.Sprintf("%s: %s", LabelChannel, r.Channel),
		fmt.Sprintf("%s: %s", LabelPayment, r.PaymentMethod),
		fmt.Sprintf("%s: %s", LabelLibras, libras),
		fmt.Sprintf("%s: %s", LabelPrice, FormatPrice(r.Price)),
	}

	if r.Notes != nil && *r.Notes != "" {
		lines = append(lines, fmt.Sprintf("%s: %s", LabelNotes, *r.Notes))
	}

	lines = append(lines, MarkerLine(r.ReservationID))

	return strings.Join(lines, "\n")
}

// HasMarker reports whether the description carries the marker for the
// given reservation id. The match is line-exact so that "res-1" never
// matches an event belonging to "res-10".
func HasMarker(description, reservationID string) bool {
	marker := MarkerLine(reservationID)
	for _, line := range strings.Split(description, "\n") {
		if strings.TrimSpace(line) == marker {
			return true
		}
	}
	return false
}

// ExtractReservationID returns the reservation id embedded in the
// description, if any
func ExtractReservationID(description string) (string, bool) {
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, ReservationMarkerPrefix) {
			id := strings.TrimSpace(strings.TrimPrefix(line, ReservationMarkerPrefix))
			if id != "" {
				return id, true
			}
		}
	}
	return "", false
}

// ChannelFromDescription recovers the appointment channel recorded in the
// description. Returns false when the line is missing or unrecognized.
func ChannelFromDescription(description string) (Channel, bool) {
	prefix := LabelChannel + ": "
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return ParseChannel(strings.TrimSpace(strings.TrimPrefix(line, prefix)))
		}
	}
	return "", false
}

// RewritePrice replaces the price annotation line, leaving every other
// line (including the reservation marker) untouched. If the description
// has no price line, one is inserted before the marker.
func RewritePrice(description string, price float64) string {
	return rewriteLine(description, LabelPrice, FormatPrice(price))
}

// RewriteChannel replaces the channel line after a reschedule changed the
// appointment channel
func RewriteChannel(description string, channel Channel) string {
	return rewriteLine(description, LabelChannel, string(channel))
}

func rewriteLine(description, label, value string) string {
	prefix := label + ": "
	replacement := prefix + value

	lines := strings.Split(description, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), prefix) {
			lines[i] = replacement
			return strings.Join(lines, "\n")
		}
	}

	// No existing line: insert before the marker so the marker stays last.
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ReservationMarkerPrefix) {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i]...)
			out = append(out, replacement)
			out = append(out, lines[i:]...)
			return strings.Join(out, "\n")
		}
	}

	return description + "\n" + replacement
}
