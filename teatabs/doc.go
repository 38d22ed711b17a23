// Package teatabs is the Bubble Tea binding of the tab widget.
//
// Slots use the "tab." and "panel." prefixes. A Model can run as a program
// root or be embedded in a larger model; when embedded, pass the parent's
// bubblezone manager with WithZoneManager so clicks resolve against the
// full screen.
package teatabs
