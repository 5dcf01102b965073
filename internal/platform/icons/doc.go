// Package icons defines the icon identifiers content may reference.
//
// The catalog maps stable icon identifiers to human-readable labels so that
// page content can communicate intent without dictating presentation. The
// site renders each id through a Lucide SVG sprite.
package icons
