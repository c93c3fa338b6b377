// Package redact masks credential material before configuration is printed.
//
// Masking keeps the last four characters of long values, the way the AWS
// CLI reports configured credentials, so an operator can confirm which key
// is in use without exposing it. Shorter values are hidden entirely.
package redact
