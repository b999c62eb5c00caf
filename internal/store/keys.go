package store

// Slot keys. The names match snapshots written by earlier desktop installs so
// an exported slot can be loaded as-is.
const (
	KeyPatients     = "medcore_patients"
	KeyDoctors      = "medcore_doctors"
	KeyAppointments = "medcore_appointments"
	KeyLabs         = "medcore_labs"
	KeyInvoices     = "medcore_invoices"
	KeyMasterTests  = "medcore_master_lab_tests"
	KeyUsers        = "medcore_local_users"
	KeySettings     = "medcore_clinical_settings"
	KeySession      = "medcore_user"
)

// AllKeys lists every slot in backup order.
var AllKeys = []string{
	KeyPatients,
	KeyDoctors,
	KeyAppointments,
	KeyLabs,
	KeyInvoices,
	KeyMasterTests,
	KeyUsers,
	KeySettings,
	KeySession,
}
