// Package property implements the value-source conventions and single/all
// key dispatch spec §4.G describes as the property façade: literal-vs-@file
// resolution for both read and write endpoints, sitting on top of the
// registry-selected datamodel.Model.
package property
