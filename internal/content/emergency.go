package content

// EmergencyContact is a 24/7 crisis line.
type EmergencyContact struct {
	Name   string
	Number string
}

// EmergencyContacts returns the crisis lines shown whenever urgent support
// is requested.
func EmergencyContacts() []EmergencyContact {
	return []EmergencyContact{
		{Name: "National Crisis Hotline", Number: "988"},
		{Name: "AA 24/7 Hotline", Number: "1-800-839-1686"},
		{Name: "SAMHSA Helpline", Number: "1-800-662-4357"},
	}
}

// EmergencyFooter is appended after the contact list.
const EmergencyFooter = "If you're experiencing an immediate emergency, please call 911."
