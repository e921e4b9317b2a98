package models

// ColorNeutral is the fallback for any unrecognized severity or status value
const ColorNeutral = "#6c757d"

// SeverityColor maps a severity to its fixed display color. Matching is
// case-insensitive; unrecognized values map to the neutral color.
func SeverityColor(s Severity) string {
	switch ParseSeverity(string(s)) {
	case SeverityCritical:
		return "#dc3545"
	case SeverityHigh:
		return "#fd7e14"
	case SeverityMedium:
		return "#ffc107"
	case SeverityLow:
		return "#28a745"
	default:
		return ColorNeutral
	}
}

// StatusColor maps a control state to its fixed display color. Matching is
// case-insensitive; unrecognized values map to the neutral color.
func StatusColor(s ControlState) string {
	switch ParseControlState(string(s)) {
	case ControlStatePass:
		return "#28a745"
	case ControlStateFail:
		return "#dc3545"
	case ControlStateUnknown:
		return ColorNeutral
	default:
		return ColorNeutral
	}
}
