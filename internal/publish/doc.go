// Package publish uploads a rendered HTML page to its configured
// destination.
//
// Destinations are a closed set of providers selected by name: "scp" copies
// the file onto a remote host over ssh, "s3" uploads it to an S3 bucket.
// Both implement [Publisher]; [New] performs the lookup and validates the
// provider's configuration before anything touches the network.
//
// Failures are classified as configuration, dependency, transport, or
// upload errors, distinguishable via the IsConfigError, IsDependencyError,
// IsTransportError, and IsUploadError predicates.
package publish
