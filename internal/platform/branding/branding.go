// Package branding holds the company identity shared by every page.
package branding

const (
	// AppName is the public company name used in titles and structured data.
	AppName = "Claimwise Billing"
	// Tagline is the short positioning line shown in the footer.
	Tagline = "Specialty medical billing and revenue cycle management"
	// PhoneDisplay is the human-readable sales phone number.
	PhoneDisplay = "(888) 555-0142"
	// PhoneURI is the dialable sales phone number.
	PhoneURI = "tel:+18885550142"
	// Email is the public sales inbox.
	Email = "hello@claimwisebilling.com"
	// AreaServed is the structured-data service area.
	AreaServed = "United States"
)
