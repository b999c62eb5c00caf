package settings

// Settings is the clinic-wide configuration singleton.
type Settings struct {
	ClinicName         string  `json:"clinicName" validate:"required"`
	Logo               *string `json:"logo"`
	SupportEmail       string  `json:"supportEmail" validate:"omitempty,email"`
	WhatsappEnabled    bool    `json:"whatsappEnabled"`
	EmailAlertsEnabled bool    `json:"emailAlertsEnabled"`
	WeeklyDigest       bool    `json:"weeklyDigest"`
	BackupInterval     string  `json:"backupInterval" validate:"required"`
	AccessControlLevel string  `json:"accessControlLevel" validate:"required"`
}

// Seed returns the settings written on first start.
func Seed() Settings {
	return Settings{
		ClinicName:         "MedCore Pro Health Center",
		SupportEmail:       "care@medcorepro.eg",
		WhatsappEnabled:    true,
		EmailAlertsEnabled: true,
		WeeklyDigest:       false,
		BackupInterval:     "Daily",
		AccessControlLevel: "Advanced",
	}
}
