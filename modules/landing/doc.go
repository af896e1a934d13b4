// Package landing serves the embedded signup landing pages.
package landing
