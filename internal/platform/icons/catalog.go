package icons

import (
	"strings"
)

// ID is a stable icon identifier referenced from page content.
type ID string

const (
	Generic       ID = "generic"
	ClaimDenied   ID = "claim-denied"
	Clock         ID = "clock"
	Dollar        ID = "dollar"
	Shield        ID = "shield"
	TrendingUp    ID = "trending-up"
	Users         ID = "users"
	Stethoscope   ID = "stethoscope"
	Clipboard     ID = "clipboard"
	FileText      ID = "file-text"
	Refresh       ID = "refresh"
	Brain         ID = "brain"
	Activity      ID = "activity"
	Package       ID = "package"
	Pill          ID = "pill"
	HeartPulse    ID = "heart-pulse"
	Calendar      ID = "calendar"
	Phone         ID = "phone"
	Award         ID = "award"
	Lock          ID = "lock"
	Zap           ID = "zap"
	AlertTriangle ID = "alert-triangle"
	Check         ID = "check"
	ArrowRight    ID = "arrow-right"
)

// Definition describes a core icon entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Generic, Name: "Generic", Description: "Default icon for uncategorized entries."},
	{ID: ClaimDenied, Name: "Claim Denied", Description: "Denied, rejected, or unpaid claims."},
	{ID: Clock, Name: "Clock", Description: "Turnaround time and aging receivables."},
	{ID: Dollar, Name: "Dollar", Description: "Revenue, collections, and reimbursement."},
	{ID: Shield, Name: "Shield", Description: "Compliance and audit protection."},
	{ID: TrendingUp, Name: "Trending Up", Description: "Growth metrics and improved outcomes."},
	{ID: Users, Name: "Users", Description: "Staff, teams, and patient volume."},
	{ID: Stethoscope, Name: "Stethoscope", Description: "Clinical services and providers."},
	{ID: Clipboard, Name: "Clipboard", Description: "Documentation, checklists, and prior authorizations."},
	{ID: FileText, Name: "File Text", Description: "Coding, statements, and paperwork."},
	{ID: Refresh, Name: "Refresh", Description: "Resubmissions, appeals, and recurring billing."},
	{ID: Brain, Name: "Brain", Description: "Behavioral and mental health services."},
	{ID: Activity, Name: "Activity", Description: "Monitoring, therapy visits, and vitals."},
	{ID: Package, Name: "Package", Description: "Durable equipment and supplies."},
	{ID: Pill, Name: "Pill", Description: "Medications and infusions."},
	{ID: HeartPulse, Name: "Heart Pulse", Description: "Patient care and clinical outcomes."},
	{ID: Calendar, Name: "Calendar", Description: "Scheduling, visit limits, and deadlines."},
	{ID: Phone, Name: "Phone", Description: "Calls and patient communication."},
	{ID: Award, Name: "Award", Description: "Quality programs and certifications."},
	{ID: Lock, Name: "Lock", Description: "Security and HIPAA safeguards."},
	{ID: Zap, Name: "Zap", Description: "Speed and automation."},
	{ID: AlertTriangle, Name: "Alert Triangle", Description: "Risks and warnings."},
	{ID: Check, Name: "Check", Description: "Included features and confirmations."},
	{ID: ArrowRight, Name: "Arrow Right", Description: "Navigation to related pages."},
}

var known = func() map[ID]struct{} {
	out := make(map[ID]struct{}, len(catalog))
	for _, def := range catalog {
		out[def.ID] = struct{}{}
	}
	return out
}()

// Catalog returns a copy of the icon catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// Known reports whether id is defined in the catalog.
func Known(id ID) bool {
	_, ok := known[ID(strings.TrimSpace(string(id)))]
	return ok
}

// CatalogMarkdown renders the icon catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Icon ids that specialty content may reference.\n\n")
	builder.WriteString("| Icon ID | Name | Lucide | Description |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(LucideNameOrDefault(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
